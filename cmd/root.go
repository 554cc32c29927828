package cmd

import (
	"errors"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"devprep/internal/bank"
	"devprep/internal/config"
	"devprep/internal/progress"
	"devprep/internal/session"
	"devprep/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "devprep",
	Short: "Terminal DevOps interview trainer",
	Long: "Devprep — practice AWS, Kubernetes, Docker, Linux, Git, Networking and more\n" +
		"with multiple-choice interview questions, progress tracking, and analytics.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to the question catalog (overrides DEVPREP_QUESTIONS)")
	rootCmd.PersistentFlags().String("progress", "", "Path to the progress history file (overrides DEVPREP_PROGRESS)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(weakAreasCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(versionCmd)
}

// Styles for plain (non-TUI) command output.
var (
	headStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
	warnStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	failStyle = lipgloss.NewStyle().Foreground(theme.Error)
	goodStyle = lipgloss.NewStyle().Foreground(theme.Success)
)

// loadConfig builds the effective config with persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		cfg.Questions = p
	}
	if p, _ := cmd.Flags().GetString("progress"); p != "" {
		cfg.Progress = p
	}
	return cfg, nil
}

// openBank loads the catalog. Load failures are reported as a warning and
// yield an empty bank; callers must check Len before starting a session.
func openBank(cfg config.Config) *bank.Bank {
	b, err := bank.Load(cfg.Questions)
	if err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Warning: could not load questions: "+err.Error()))
	}
	return b
}

func openStore(cfg config.Config) *progress.Store {
	return progress.Open(cfg.Progress, progress.Config{
		MinAttempts:  cfg.MinAttempts,
		MaxWeakAreas: cfg.MaxWeakAreas,
		RecentWindow: cfg.RecentWindow,
	})
}

func thresholds(cfg config.Config) session.Thresholds {
	return session.Thresholds{
		Excellent: cfg.Excellent,
		Good:      cfg.Good,
		Fair:      cfg.Fair,
	}
}

// exportSession writes session results if the flag was given, reporting the
// empty-session case as a message rather than a failure.
func exportSession(sess *session.Session, path string) {
	if path == "" {
		return
	}
	switch err := sess.Export(path); {
	case errors.Is(err, session.ErrNoResults):
		fmt.Println(dimStyle.Render("No results to export"))
	case err != nil:
		fmt.Fprintln(os.Stderr, failStyle.Render("Error exporting results: "+err.Error()))
	default:
		fmt.Println(goodStyle.Render("Results exported to " + path))
	}
}
