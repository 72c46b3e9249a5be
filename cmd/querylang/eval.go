package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rastler3D/query-lang/dynamic"
	"github.com/Rastler3D/query-lang/dynamic/fromyaml"
	"github.com/Rastler3D/query-lang/eval"
	"github.com/Rastler3D/query-lang/parse"
)

// newEvalCmd creates the "eval" subcommand: parse a script, evaluate it
// against a document loaded from --document (JSON or YAML, picked by file
// extension unless --format overrides it), and print the result as JSON.
func newEvalCmd() *cobra.Command {
	var documentPath string
	var format string

	cmd := &cobra.Command{
		Use:   "eval <script>",
		Short: "evaluate a script against a document",
		Long: `eval parses the given script and evaluates it with ROOT bound to the
document read from --document, printing the resulting value as JSON.

Examples:

  $ querylang eval -d user.json '"$user.name"'
  $ querylang eval -d user.yaml '{"$match": {"age": {"$gte": 18}}}'
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], documentPath, format)
		},
	}

	addEvalFlags(cmd.Flags(), &documentPath, &format)

	return cmd
}

func runEval(cmd *cobra.Command, scriptText, documentPath, format string) error {
	script, err := parse.Script(scriptText)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	root := dynamic.Null
	if documentPath != "" {
		root, err = loadDocument(documentPath, format)
		if err != nil {
			return err
		}
	}

	result, err := eval.WrapScript(script).EvalWithRoot(root)
	if err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}

	out, err := dynamic.ToJSON(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func loadDocument(path, format string) (dynamic.Dynamic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dynamic.Null, fmt.Errorf("reading document: %w", err)
	}

	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		v, err := fromyaml.FromBytes(data)
		if err != nil {
			return dynamic.Null, fmt.Errorf("parsing yaml document: %w", err)
		}
		return v, nil
	case "json", "":
		v, err := dynamic.FromJSONBytes(data)
		if err != nil {
			return dynamic.Null, fmt.Errorf("parsing json document: %w", err)
		}
		return v, nil
	default:
		return dynamic.Null, fmt.Errorf("unrecognized document format %q", format)
	}
}
