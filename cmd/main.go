package cmd

import "github.com/google/subcommands"

// Commands are the subcommands of frs, by group.
var Commands = map[string][]subcommands.Command{
	"statement": {
		&loadCmd{},
		&getCmd{},
	},
	"reports": {
		analyzeCmd(),
		liquidityCmd(),
		profitabilityCmd(),
		stabilityCmd(),
		forecastCmd(),
		&benchmarkCmd{},
		&selectCmd{},
		&exportCmd{},
	},
	"help": {
		&topicCmd{},
		&AssistCmd{},
	},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range []string{"statement", "reports", "help"} {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}
