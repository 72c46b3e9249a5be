package main

import "github.com/spf13/pflag"

// addEvalFlags registers the eval subcommand's flags on f, mirroring the
// teacher's addOutFlags/addGlobalFlags style of a standalone function
// taking a *pflag.FlagSet rather than inlining flag registration in the
// command constructor.
func addEvalFlags(f *pflag.FlagSet, documentPath, format *string) {
	f.StringVarP(documentPath, "document", "d", "", "path to the JSON or YAML document bound to ROOT")
	f.StringVarP(format, "format", "f", "", `document format: "json" or "yaml" (default: inferred from the document's extension)`)
}
