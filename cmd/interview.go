package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"devprep/internal/app"
	"devprep/internal/bank"
	"devprep/internal/screens/quiz"
	"devprep/internal/session"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Full interview simulation with mixed topics",
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

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = cfg.InterviewCount
		}
		company, _ := cmd.Flags().GetString("company-type")

		questions := b.Sample(bank.Filter{Company: company}, count)
		if len(questions) == 0 {
			fmt.Println(failStyle.Render("No questions found for the specified criteria"))
			return nil
		}
		if len(questions) < count {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Adjusted to %d questions (all available)", len(questions))))
		}

		fmt.Println(headStyle.Render("INTERVIEW SIMULATION"))
		fmt.Printf("Questions: %d\n", len(questions))
		if company != "" {
			fmt.Printf("Company type: %s\n", company)
		}

		fmt.Println(dimStyle.Render("\nQuestion distribution:"))
		for _, line := range topicDistribution(questions) {
			fmt.Println("  " + line)
		}

		if !confirm("\nReady to begin your interview?") {
			return nil
		}

		sess := session.New(openStore(cfg), thresholds(cfg))
		if err := app.Run(quiz.New(sess, questions, "Interview Simulation", true)); err != nil {
			return err
		}

		exportPath, _ := cmd.Flags().GetString("export")
		exportSession(sess, exportPath)
		return nil
	},
}

func init() {
	interviewCmd.Flags().IntP("count", "c", 0, "Number of questions")
	interviewCmd.Flags().String("company-type", "", "Focus on a specific company type")
	interviewCmd.Flags().String("export", "", "Export interview results to a JSON file")
}

func topicDistribution(questions []bank.Question) []string {
	dist := make(map[string]int)
	for i := range questions {
		dist[questions[i].Topic]++
	}
	topics := make([]string, 0, len(dist))
	for t := range dist {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	lines := make([]string, 0, len(topics))
	for _, t := range topics {
		lines = append(lines, fmt.Sprintf("• %s: %d", t, dist[t]))
	}
	return lines
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N] ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
