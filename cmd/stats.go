package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b := openBank(cfg)
		if b.Len() == 0 {
			fmt.Println(failStyle.Render("No questions available"))
			return nil
		}

		fmt.Println(headStyle.Render("QUESTION CATALOG"))
		fmt.Printf("Total questions: %d\n", b.Len())

		fmt.Println(headStyle.Render("\nBy topic"))
		for _, t := range b.Topics() {
			fmt.Printf("  %s: %d\n", t, b.TopicCount(t))
		}

		dist := b.DifficultyDistribution()
		diffs := make([]string, 0, len(dist))
		for d := range dist {
			diffs = append(diffs, d)
		}
		sort.Strings(diffs)

		fmt.Println(headStyle.Render("\nBy difficulty"))
		for _, d := range diffs {
			fmt.Printf("  %s: %d\n", d, dist[d])
		}

		if tags := b.CompanyTags(); len(tags) > 0 {
			fmt.Println(headStyle.Render("\nCompany tags"))
			for _, t := range tags {
				fmt.Printf("  %s\n", t)
			}
		}
		return nil
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b := openBank(cfg)
		if b.Len() == 0 {
			fmt.Println(failStyle.Render("No questions available"))
			return nil
		}

		for _, t := range b.Topics() {
			fmt.Printf("%s %s\n", t, dimStyle.Render(fmt.Sprintf("(%d questions)", b.TopicCount(t))))
		}
		return nil
	},
}
