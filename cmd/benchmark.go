package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/finreport"
	"github.com/etnz/finreport/renderer"
	"github.com/google/subcommands"
)

type benchmarkCmd struct {
	industry string
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "compare the latest ratios with industry standards" }
func (*benchmarkCmd) Usage() string {
	return `frs benchmark -industry <industry>

  Compares the ratios of the latest period with the standard ranges of an
  industry: ` + strings.Join(industryIDs(), ", ") + `.
`
}

func industryIDs() []string {
	ids := make([]string, 0, len(finreport.Industries))
	for _, ind := range finreport.Industries {
		ids = append(ids, ind.ID)
	}
	return ids
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.industry, "industry", "retail", "industry to compare with: "+strings.Join(industryIDs(), ", "))
}

func (c *benchmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(func(d *finreport.Dataset, _ *finreport.Dictionary) (string, error) {
		ind, err := finreport.LookupIndustry(c.industry)
		if err != nil {
			return "", fmt.Errorf("%w, use one of %s", err, strings.Join(industryIDs(), ", "))
		}
		return renderer.Benchmark(d, ind), nil
	})
}
