package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "query the session with a JSONPath expression" }
func (*getCmd) Usage() string {
	return `frs get <jsonpath>

  Evaluates a JSONPath expression over the session file and prints the result
  as JSON. For instance:

    frs get '$.dataset.periods'
    frs get '$.dataset.data["31.12.2023"].revenue'
`
}

func (*getCmd) SetFlags(f *flag.FlagSet) {}

func (*getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: get expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	s, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	v, err := s.Query(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
