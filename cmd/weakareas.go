package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weakAreasCmd = &cobra.Command{
	Use:   "weak-areas",
	Short: "Show topics where you need more practice",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store := openStore(cfg)
		weak := store.WeakAreas()
		if len(weak) == 0 {
			fmt.Println(dimStyle.Render("No performance data available yet."))
			fmt.Println(dimStyle.Render(fmt.Sprintf(
				"Weak areas appear once a topic has at least %d recorded attempts.", cfg.MinAttempts)))
			return nil
		}

		fmt.Println(headStyle.Render("Areas needing improvement (lowest success rates):"))
		for i, w := range weak {
			line := fmt.Sprintf("%d. %s: %.1f%% success rate (%d attempts)", i+1, w.Topic, w.Rate*100, w.Attempts)
			switch {
			case w.Rate < 0.5:
				fmt.Println(failStyle.Render(line))
			case w.Rate < 0.7:
				fmt.Println(warnStyle.Render(line))
			default:
				fmt.Println(goodStyle.Render(line))
			}
		}

		fmt.Println(dimStyle.Render(fmt.Sprintf(
			"\nRecommendation: devprep practice %s", weak[0].Topic)))
		return nil
	},
}
