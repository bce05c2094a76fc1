// Command frs analyses spreadsheets of financial statements.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finreport/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional: it may set FRS_* variables and GEMINI_API_KEY.
	_ = godotenv.Load()

	// Answers shell completion requests, and exits, when COMP_LINE is set.
	cmd.Completion().Complete("frs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !cmd.Lookup(sub) && !isBuiltin(sub) {
		if ran, code := cmd.RunExtension(sub, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(name string) bool {
	return name == "help" || name == "flags" || name == "commands"
}
