package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardforge",
	Short: "Render printable cards from tabular data",
	Long: `Cardforge renders printable playing cards by drawing a title and wrapped
text blocks onto a background frame image, one card per row of a CSV file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// exitError carries a process exit code alongside the underlying error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// ExitCode maps an Execute error to a process exit code. Setup failures
// exit 1; a batch that ran but dropped rows exits 2.
func ExitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
