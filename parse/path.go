package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rastler3D/query-lang/ast"
)

// ParsePath parses the base-identifier-plus-steps grammar from spec §4.4's
// Paths production: a base identifier (characters other than '.', '[',
// ']') followed by zero or more ".name" member steps or "[index]" index
// steps. text is the path's raw text with any leading sigil ('$' or '$$')
// already stripped by the caller.
//
// This runs directly over the extracted string, rather than as a
// combinator.Parser over a combinator.State, because a path only ever
// appears fully formed inside one already-delimited string token (spec:
// "inside a string token, ... a path is ..."); there is no other grammar
// production that can appear interleaved with it, so a small manual
// scanner is simpler than threading a second State through the string's
// body. Matches the original's `field_path`/`inner_field` combinators
// (`is_not(".[]" )` + `fold_many0`), just expressed without nom.
func ParsePath(text string) (ast.Path, error) {
	if text == "" {
		return nil, fmt.Errorf("parse: empty path")
	}
	end := strings.IndexAny(text, ".[]")
	var base string
	var rest string
	if end < 0 {
		base, rest = text, ""
	} else {
		base, rest = text[:end], text[end:]
	}
	if base == "" {
		return nil, fmt.Errorf("parse: path %q has no base identifier", text)
	}
	var path ast.Path = &ast.BasePath{Name: base}
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[]")
			var name string
			if end < 0 {
				name, rest = rest, ""
			} else {
				name, rest = rest[:end], rest[end:]
			}
			if name == "" {
				return nil, fmt.Errorf("parse: empty member step in path %q", text)
			}
			path = &ast.MemberStep{Base: path, Name: name}
		case '[':
			closeIdx := strings.IndexByte(rest, ']')
			if closeIdx < 0 {
				return nil, fmt.Errorf("parse: unterminated index step in path %q", text)
			}
			idxText := strings.TrimSpace(rest[1:closeIdx])
			idx, err := strconv.ParseUint(idxText, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse: invalid array index %q in path %q: %w", idxText, text, err)
			}
			path = &ast.IndexStep{Base: path, Index: idx}
			rest = rest[closeIdx+1:]
		default:
			return nil, fmt.Errorf("parse: unexpected character %q in path %q", rest[0], text)
		}
	}
	return path, nil
}
