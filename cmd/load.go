package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/finreport"
	"github.com/etnz/finreport/renderer"
	"github.com/google/subcommands"
)

// loadCmd loads a statement into the session.
type loadCmd struct {
	analyze bool
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "load a spreadsheet of financial statements" }
func (*loadCmd) Usage() string {
	return `frs load [-analyze] <file>

  Reads the first sheet of an .xlsx, .xls or .csv file, detects the reporting
  periods in its column headers and extracts the line items of every period.
  The extracted data replaces the one of the session.

  See 'frs topic file-format' for the expected layout.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.analyze, "analyze", false, "print the full analysis once loaded")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: load expects exactly one file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	s, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := s.Ingest(data, filepath.Base(path))
	var decodeErr *finreport.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		fmt.Fprintf(os.Stderr, "❌ Не удалось прочитать файл. Пожалуйста, отправьте корректный Excel файл (.xlsx или .xls).\n%v\n", err)
		return subcommands.ExitFailure
	case errors.Is(err, finreport.ErrNoPeriods):
		fmt.Fprintln(os.Stderr, "❌ Не удалось определить периоды в файле. Проверьте структуру файла: заголовки столбцов должны содержать даты, например 31.12.2023.")
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "✅ Файл %s успешно обработан!\n📊 Извлечено показателей: %d\n📅 Периодов: %d\n", s.File, res.Items, res.Periods)
	if !res.LabelColumn {
		fmt.Fprintln(stdout, "⚠️ Не найден столбец с наименованиями показателей, данные не извлечены.")
	}

	if c.analyze {
		report := renderer.Analysis(s.Dataset, s.Extractor.Dictionary)
		s.Remember(report)
		printMarkdown(report)
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
