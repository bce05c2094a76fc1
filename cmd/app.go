// Package cmd implements the CLI application to analyse financial statements.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finreport"
	"github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sessionFile = flag.String("session", "", "Path to the session file holding the loaded statement. Defaults to $"+EnvSessionFile+" or .frs/session.json")
var dictionaryFile = flag.String("dictionary", "", "Path to a YAML line item dictionary replacing the embedded one. Defaults to $"+EnvDictionary)
var Verbose = flag.Bool("v", false, "Print debug logs. Defaults to $"+EnvVerbose)
var raw = flag.Bool("raw", false, "Print reports as raw markdown, without terminal styling")

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// DefaultSessionFile is used when neither the flag nor the environment name one.
var DefaultSessionFile = filepath.Join(".frs", "session.json")

// SessionFile returns the path of the session file.
func SessionFile() string {
	if *sessionFile != "" {
		return *sessionFile
	}
	if env := os.Getenv(EnvSessionFile); env != "" {
		return env
	}
	return DefaultSessionFile
}

// DictionaryFile returns the path of the custom dictionary, empty for the embedded one.
func DictionaryFile() string {
	if *dictionaryFile != "" {
		return *dictionaryFile
	}
	return os.Getenv(EnvDictionary)
}

// IsVerbose reports whether debug logs are enabled.
func IsVerbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

var logger = logrus.New()

// setupLog configures the logger from the global flags.
func setupLog() *logrus.Logger {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if IsVerbose() {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// loadDictionary reads the dictionary selected by the global flags.
func loadDictionary() (*finreport.Dictionary, error) {
	path := DictionaryFile()
	if path == "" {
		return finreport.DefaultDictionary, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := finreport.LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// OpenSession is the central function to open the session. An empty session
// is created when the file does not exist yet.
func OpenSession() (*finreport.Session, error) {
	log := setupLog()
	dict, err := loadDictionary()
	if err != nil {
		return nil, fmt.Errorf("cannot load dictionary: %w", err)
	}

	path := SessionFile()
	s, err := finreport.LoadSession(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("file", path).Debug("session does not exist, creating an empty one instead")
		s, err = finreport.NewSession(), nil
	}
	if err != nil {
		return nil, err
	}
	s.Log = log
	s.Extractor = &finreport.Extractor{Dictionary: dict}
	return s, nil
}

// SaveSession writes the session back.
func SaveSession(s *finreport.Session) error {
	return finreport.SaveSession(SessionFile(), s)
}

// printMarkdown prints md styled for the terminal, or raw with -raw.
func printMarkdown(md string) {
	if !*raw {
		out, err := glamour.Render(md, "auto")
		if err == nil {
			fmt.Fprint(stdout, out)
			return
		}
		logger.WithError(err).Debug("cannot style markdown")
	}
	fmt.Fprint(stdout, md)
}
