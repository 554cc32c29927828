package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devprep/internal/app"
	"devprep/internal/bank"
	"devprep/internal/progress"
	"devprep/internal/screens/quiz"
	"devprep/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [topic]",
	Short: "Practice interview questions by topic",
	Args:  cobra.MaximumNArgs(1),
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

		topic := ""
		if len(args) > 0 {
			topic = args[0]
		} else {
			topic, err = promptTopic(b)
			if err != nil {
				return err
			}
		}

		difficulty, _ := cmd.Flags().GetString("difficulty")
		company, _ := cmd.Flags().GetString("company-type")
		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = cfg.PracticeCount
		}

		questions := b.Sample(bank.Filter{
			Topic:      topic,
			Difficulty: difficulty,
			Company:    company,
		}, count)
		if len(questions) == 0 {
			fmt.Println(failStyle.Render("No questions found for the specified criteria"))
			return nil
		}

		var store *progress.Store
		if noTrack, _ := cmd.Flags().GetBool("no-track"); !noTrack {
			store = openStore(cfg)
		}
		sess := session.New(store, thresholds(cfg))

		interviewMode, _ := cmd.Flags().GetBool("interview-mode")
		label := "Practice: " + strings.ToUpper(topic)
		if err := app.Run(quiz.New(sess, questions, label, interviewMode)); err != nil {
			return err
		}

		exportPath, _ := cmd.Flags().GetString("export")
		exportSession(sess, exportPath)
		return nil
	},
}

func init() {
	practiceCmd.Flags().StringP("difficulty", "d", "", "Difficulty level (easy, medium, hard)")
	practiceCmd.Flags().IntP("count", "c", 0, "Number of questions")
	practiceCmd.Flags().String("company-type", "", "Company type (faang, startup, enterprise)")
	practiceCmd.Flags().BoolP("interview-mode", "i", false, "Confirm before each next question")
	practiceCmd.Flags().String("export", "", "Export session results to a JSON file")
	practiceCmd.Flags().Bool("no-track", false, "Do not record results in the progress history")
}

// promptTopic lists the available topics and reads a selection from stdin.
func promptTopic(b *bank.Bank) (string, error) {
	fmt.Println(headStyle.Render("Available topics:"))
	for _, t := range b.Topics() {
		fmt.Printf("  • %s %s\n", t, dimStyle.Render(fmt.Sprintf("(%d questions)", b.TopicCount(t))))
	}
	fmt.Print("\nSelect a topic: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("read topic: %w", scanner.Err())
	}
	topic := strings.TrimSpace(scanner.Text())
	if b.TopicCount(topic) == 0 {
		return "", fmt.Errorf("unknown topic %q", topic)
	}
	return topic, nil
}
