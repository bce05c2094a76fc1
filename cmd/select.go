package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finreport"
	"github.com/etnz/finreport/renderer"
	"github.com/google/subcommands"
)

// selectCmd is the selective analysis of a group of indicators.
type selectCmd struct {
	group string
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "display a group of indicators across periods" }
func (*selectCmd) Usage() string {
	return `frs select [-group <name>]

  Displays the values of a group of indicators in every period. Without
  -group, lists the available groups.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "group", "", "name of the group of indicators")
}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.group == "" {
		dict, err := loadDictionary()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(groupList(dict))
		return subcommands.ExitSuccess
	}
	return runReport(func(d *finreport.Dataset, dict *finreport.Dictionary) (string, error) {
		g, err := dict.Group(c.group)
		if err != nil {
			return "", err
		}
		return renderer.Group(d, dict, g), nil
	})
}

// groupList is the markdown list of the groups of dict.
func groupList(dict *finreport.Dictionary) string {
	var b strings.Builder
	b.WriteString("# 🎯 Группы показателей\n\n")
	for _, g := range dict.Groups {
		titles := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			titles = append(titles, dict.Title(item))
		}
		fmt.Fprintf(&b, "- %s: %s\n", g.Name, strings.Join(titles, ", "))
	}
	return b.String()
}
