package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finreport/renderer"
	"github.com/google/subcommands"
)

// exportCmd writes the last report as plain text.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the last report as plain text" }
func (*exportCmd) Usage() string {
	return `frs export [-o <file>]

  Writes the last displayed report as plain text, to the standard output or
  to a .txt file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "file to write, the standard output by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	if s.LastReport == "" {
		fmt.Fprintln(os.Stderr, "❌ Нет отчета для экспорта, сначала выполните анализ: frs analyze")
		return subcommands.ExitFailure
	}
	txt := renderer.PlainText(s.LastReport)

	if c.output == "" {
		fmt.Fprint(stdout, txt)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(txt), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "📄 Отчет сохранен в %s\n", c.output)
	return subcommands.ExitSuccess
}
