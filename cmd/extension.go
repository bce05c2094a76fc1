package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvSessionFile = "FRS_SESSION_FILE"
	EnvDictionary  = "FRS_DICTIONARY"
	EnvVerbose     = "FRS_VERBOSE"
)

// RunExtension attempts to find and execute an external frs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "frs-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		setupLog().WithError(err).Debugf("external command %q not found in PATH", externalCmdName)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvSessionFile+"="+SessionFile())
	cmd.Env = append(cmd.Env, EnvDictionary+"="+DictionaryFile())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(IsVerbose()))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
