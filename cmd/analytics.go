package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"devprep/internal/progress"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show detailed performance analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store := openStore(cfg)
		if store.Len() == 0 {
			fmt.Println(dimStyle.Render("No performance data available yet."))
			fmt.Println(dimStyle.Render("Practice some questions first to see your analytics."))
			return nil
		}

		if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
			if _, ok := store.TopicStats()[topic]; !ok {
				fmt.Println(failStyle.Render("No data found for topic: " + topic))
				return nil
			}
		}

		overall := store.OverallStats()
		fmt.Println(headStyle.Render("PERFORMANCE ANALYTICS"))
		fmt.Printf("Total questions attempted: %d\n", overall.TotalAttempted)
		fmt.Printf("Overall success rate: %.1f%%\n", overall.SuccessRate*100)
		fmt.Printf("Recent performance (last %d): %.1f%%\n", cfg.RecentWindow, overall.RecentSuccessRate*100)

		printTallies("Performance by topic", store.TopicStats())
		printTallies("Performance by difficulty", store.DifficultyStats())

		if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
			if err := exportAnalytics(store, exportPath); err != nil {
				fmt.Fprintln(os.Stderr, failStyle.Render("Error exporting analytics: "+err.Error()))
				return nil
			}
			fmt.Println(goodStyle.Render("\nAnalytics exported to " + exportPath))
		}
		return nil
	},
}

func init() {
	analyticsCmd.Flags().String("topic", "", "Show analytics for a specific topic")
	analyticsCmd.Flags().String("export", "", "Export analytics to a JSON file")
}

func printTallies(title string, stats map[string]progress.Tally) {
	if len(stats) == 0 {
		return
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println(headStyle.Render("\n" + title))
	for _, k := range keys {
		t := stats[k]
		line := fmt.Sprintf("  %s: %d/%d (%.1f%%)", k, t.Correct, t.Total, t.Rate()*100)
		switch {
		case t.Rate() >= 0.7:
			fmt.Println(goodStyle.Render(line))
		case t.Rate() >= 0.5:
			fmt.Println(warnStyle.Render(line))
		default:
			fmt.Println(failStyle.Render(line))
		}
	}
}

type rateEntry struct {
	SuccessRate float64 `json:"success_rate"`
	Total       int     `json:"total"`
}

type analyticsDoc struct {
	Summary struct {
		TotalAttempted    int     `json:"total_attempted"`
		TotalCorrect      int     `json:"total_correct"`
		SuccessRate       float64 `json:"success_rate"`
		RecentSuccessRate float64 `json:"recent_success_rate"`
	} `json:"summary"`
	ByTopic      map[string]rateEntry `json:"by_topic"`
	ByDifficulty map[string]rateEntry `json:"by_difficulty"`
}

// exportAnalytics writes the summary/by_topic/by_difficulty document.
func exportAnalytics(store *progress.Store, path string) error {
	var doc analyticsDoc
	overall := store.OverallStats()
	doc.Summary.TotalAttempted = overall.TotalAttempted
	doc.Summary.TotalCorrect = overall.TotalCorrect
	doc.Summary.SuccessRate = overall.SuccessRate
	doc.Summary.RecentSuccessRate = overall.RecentSuccessRate

	doc.ByTopic = make(map[string]rateEntry)
	for topic, t := range store.TopicStats() {
		doc.ByTopic[topic] = rateEntry{SuccessRate: t.Rate(), Total: t.Total}
	}
	doc.ByDifficulty = make(map[string]rateEntry)
	for diff, t := range store.DifficultyStats() {
		doc.ByDifficulty[diff] = rateEntry{SuccessRate: t.Rate(), Total: t.Total}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analytics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write analytics: %w", err)
	}
	return nil
}
