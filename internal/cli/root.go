package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag    string
	noColorFlag   bool
	ephemeralFlag bool
	logFileFlag   string
)

// rootCmd is the base command. Running tally with no subcommand opens the board.
var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "A 28-day habit tracker for the terminal",
	Long: `tally tracks a handful of habits over a 28-day window.

Run it with no arguments to open the interactive board, or use the
subcommands to toggle days, rename habits and print statistics from scripts.

Examples:
  tally                      # open the board
  tally toggle 1 3           # check habit 1 on day 3
  tally rename 2 "Read"      # name habit 2
  tally stats --json         # machine-readable statistics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColorFlag {
			ui.DisableColors()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return boardCommand(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .tally.yaml, then ~/.config/tally/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "keep habit data in memory only")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append log output to this file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			err = unknownCommandError(err)
		}
		if MachineMode() {
			_ = WriteJSONFromError(os.Stdout, err)
			os.Exit(1)
		}
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w in the error color.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.ErrorStyle().Render(strings.TrimRight(err.Error(), "\n")))
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown command") || strings.Contains(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's message,
// e.g. `unknown command "foo" for "tally"` gives "foo".
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// unknownCommandError turns cobra's rejection into a structured error with a
// "did you mean" suggestion when one exists.
func unknownCommandError(err error) *errors.Error {
	name := extractUnknownCommand(err)
	if name == "" || strings.Contains(err.Error(), "unknown flag") {
		return errors.New(errors.ErrInput, err.Error(), "Run 'tally --help' to see the available flags.")
	}

	suggestion := "Run 'tally --help' to see the available commands."
	if s := rootCmd.SuggestionsFor(name); len(s) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'?", s[0])
	}
	return errors.New(errors.ErrInput, fmt.Sprintf("Unknown command '%s'", name), suggestion)
}
