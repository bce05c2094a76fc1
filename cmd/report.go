package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finreport"
	"github.com/etnz/finreport/renderer"
	"github.com/google/subcommands"
)

// renderFunc renders a report of the session data.
type renderFunc func(d *finreport.Dataset, dict *finreport.Dictionary) (string, error)

// runReport renders a report of the loaded statement, prints it and keeps it
// in the session for export.
func runReport(render renderFunc) subcommands.ExitStatus {
	s, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := s.Data()
	if errors.Is(err, finreport.ErrNoData) {
		fmt.Fprintln(os.Stderr, "❌ Сначала загрузите файл с данными: frs load <file>")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading session data: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := render(d, s.Extractor.Dictionary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(report)

	s.Remember(report)
	if err := SaveSession(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// reportCmd is a report without options.
type reportCmd struct {
	name     string
	synopsis string
	usage    string
	render   renderFunc
}

func (c *reportCmd) Name() string     { return c.name }
func (c *reportCmd) Synopsis() string { return c.synopsis }
func (c *reportCmd) Usage() string    { return c.usage }

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: %s takes no argument\n", c.name)
		return subcommands.ExitUsageError
	}
	return runReport(c.render)
}

func analyzeCmd() *reportCmd {
	return &reportCmd{
		name:     "analyze",
		synopsis: "display the full analysis of the loaded statement",
		usage: `frs analyze

  Displays the evolution of revenue, net profit, total assets and equity
  across periods, and the financial ratios of every period.
`,
		render: func(d *finreport.Dataset, dict *finreport.Dictionary) (string, error) {
			return renderer.Analysis(d, dict), nil
		},
	}
}

func liquidityCmd() *reportCmd {
	return &reportCmd{
		name:     "liquidity",
		synopsis: "display the liquidity of every period",
		usage: `frs liquidity

  Displays the current and cash ratios of every period and rates the current
  ratio: excellent from 2.0, normal from 1.5, reduced from 1.0, critical below.
`,
		render: func(d *finreport.Dataset, _ *finreport.Dictionary) (string, error) {
			return renderer.Liquidity(d), nil
		},
	}
}

func profitabilityCmd() *reportCmd {
	return &reportCmd{
		name:     "profitability",
		synopsis: "display the return ratios of every period",
		usage: `frs profitability

  Displays revenue, net profit, ROA, ROE and ROS of every period.
`,
		render: func(d *finreport.Dataset, dict *finreport.Dictionary) (string, error) {
			return renderer.Profitability(d, dict), nil
		},
	}
}

func stabilityCmd() *reportCmd {
	return &reportCmd{
		name:     "stability",
		synopsis: "display the financial stability of every period",
		usage: `frs stability

  Displays equity, total liabilities, the autonomy ratio and the debt to
  equity ratio of every period.
`,
		render: func(d *finreport.Dataset, dict *finreport.Dictionary) (string, error) {
			return renderer.Stability(d, dict), nil
		},
	}
}

func forecastCmd() *reportCmd {
	return &reportCmd{
		name:     "forecast",
		synopsis: "project the headline indicators on the next period",
		usage: `frs forecast

  Projects revenue, net profit, total assets and equity on the next period
  from their average growth across the loaded periods.
`,
		render: func(d *finreport.Dataset, dict *finreport.Dictionary) (string, error) {
			return renderer.Forecast(d, dict), nil
		},
	}
}
