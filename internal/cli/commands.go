package cli

import (
	"context"
	"strings"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	showTableFlag    bool
	statsDaysFlag    bool
	resetYesFlag     bool
	chartOutFlag     string
	exportFormatFlag string
	initForceFlag    bool
	initGlobalFlag   bool
	initBackendFlag  string
	initHabitsFlag   int
	initStartFlag    string
)

// boardCmd opens the interactive board
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive habit board",
	Long: `Open the full-screen habit board.

Keyboard shortcuts:
  arrows / hjkl   Move between cells
  space / x       Toggle the focused cell
  e / Enter       Rename the focused habit
  d               Edit the start date
  R               Reset everything (asks first)
  ?               Show help
  q / Ctrl+C      Quit

Running tally with no subcommand does the same thing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return boardCommand(cmd.Context())
	},
}

// showCmd prints the grid
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the habit grid",
	Long: `Print the 28-day grid with day labels, per-habit counts and the
daily completion sparkline, followed by the statistics summary.

Examples:
  tally show
  tally show --table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCommand(cmd.Context(), cmd.OutOrStdout(), showTableFlag)
	},
}

// statsCmd prints statistics
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print completion statistics",
	Long: `Print per-habit completion, best and worst habit, day buckets and the
overall completion rate.

Examples:
  tally stats
  tally stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsCommand(cmd.Context(), cmd.OutOrStdout(), statsDaysFlag)
	},
}

// toggleCmd flips one cell
var toggleCmd = &cobra.Command{
	Use:   "toggle <habit> <day>",
	Short: "Check or uncheck a habit on a day",
	Long: `Flip one cell of the grid.

<habit> is a habit number (1-based) or a habit name.
<day> is a day number from 1 to 28, or a date inside the tracked window.

Examples:
  tally toggle 1 1
  tally toggle Run 2026-01-05`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleCommand(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
	},
}

// renameCmd names a habit
var renameCmd = &cobra.Command{
	Use:   "rename <habit> <name...>",
	Short: "Rename a habit",
	Long: `Set a habit's name. Surrounding whitespace is trimmed and blank names
are rejected.

Examples:
  tally rename 1 Run
  tally rename 2 "Read 20 pages"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renameCommand(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:])
	},
}

// startCmd sets the start date
var startCmd = &cobra.Command{
	Use:   "start <date>",
	Short: "Set the first day of the tracked window",
	Long: `Set the start date (YYYY-MM-DD). Day labels are computed from it.

Text that isn't a date is stored as typed and the labels show "-".

Examples:
  tally start 2026-02-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startCommand(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

// resetCmd clears everything
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all habits and checks",
	Long: `Delete the stored record and start over with empty habits and the
default start date. Asks for confirmation unless --yes is given.

Examples:
  tally reset
  tally reset --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resetCommand(cmd.Context(), cmd.OutOrStdout(), resetYesFlag)
	},
}

// chartCmd writes a PNG chart
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Save the daily completion chart as a PNG",
	Long: `Render daily completion (0-100%) over the 28 days as a line chart.

Examples:
  tally chart
  tally chart -o ~/progress.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartCommand(cmd.Context(), cmd.OutOrStdout(), chartOutFlag)
	},
}

// exportCmd dumps the state
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print all habit data as JSON or YAML",
	Long: `Print habits, the completion grid and the start date.

Examples:
  tally export > backup.json
  tally export --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportCommand(cmd.Context(), cmd.OutOrStdout(), exportFormatFlag)
	},
}

// initCmd creates a new .tally.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .tally.yaml configuration",
	Long: `Create a .tally.yaml file in the current directory with sensible
defaults, or the global config with --global.

Examples:
  tally init
  tally init --backend sqlite --habits 5
  tally init --global --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), InitOptions{
			Force:   initForceFlag,
			Global:  initGlobalFlag,
			Backend: initBackendFlag,
			Habits:  initHabitsFlag,
			Start:   initStartFlag,
		})
	},
}

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configPathCommand(cmd.OutOrStdout())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config value",
	Long: `Set a dotted key in the config file, keeping comments and order.

Examples:
  tally config set storage.backend sqlite
  tally config set tracker.start 2026-02-01
  tally config set ui.celebrate false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetCommand(cmd.OutOrStdout(), args[0], args[1])
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for tally.

Examples:
  # Bash
  tally completion bash > /etc/bash_completion.d/tally

  # Zsh
  tally completion zsh > "${fpath[1]}/_tally"

  # Fish
  tally completion fish > ~/.config/fish/completions/tally.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(w)
		case "zsh":
			return rootCmd.GenZshCompletion(w)
		case "fish":
			return rootCmd.GenFishCompletion(w, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(w)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// show command flags
	showCmd.Flags().BoolVar(&showTableFlag, "table", false, "print a per-habit table instead of the grid")

	// stats command flags
	statsCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")
	statsCmd.Flags().BoolVar(&statsDaysFlag, "days", false, "also print a per-day table")

	// reset command flags
	resetCmd.Flags().BoolVarP(&resetYesFlag, "yes", "y", false, "skip the confirmation prompt")

	// chart command flags
	chartCmd.Flags().StringVarP(&chartOutFlag, "output", "o", "tally-progress.png", "PNG file to write")

	// export command flags
	exportCmd.Flags().StringVarP(&exportFormatFlag, "format", "f", FormatJSON, "output format: json or yaml")

	// init command flags
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initGlobalFlag, "global", false, "write ~/.config/tally/config.yaml")
	initCmd.Flags().StringVar(&initBackendFlag, "backend", "", "storage backend: file, sqlite or memory")
	initCmd.Flags().IntVar(&initHabitsFlag, "habits", -1, "number of habits in a fresh grid")
	initCmd.Flags().StringVar(&initStartFlag, "start", "", "default start date (YYYY-MM-DD)")

	toggleCmd.ValidArgsFunction = completeHabits

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeHabits offers habit names for the first toggle argument.
func completeHabits(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, appOptions{quiet: true})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer a.Close()

	var names []string
	for i := 0; i < a.tracker.HabitCount(); i++ {
		name := a.tracker.Habit(i)
		if name != "" && strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
