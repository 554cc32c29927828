package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devprep/internal/app"
	"devprep/internal/bank"
	"devprep/internal/screens/quiz"
	"devprep/internal/session"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review questions you got wrong",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store := openStore(cfg)
		failed := store.FailedQuestions()
		if len(failed) == 0 {
			fmt.Println(goodStyle.Render("No incorrect answers found. Great job!"))
			fmt.Println(dimStyle.Render("Keep practicing to maintain your performance."))
			return nil
		}

		b := openBank(cfg)
		if b.Len() == 0 {
			fmt.Println(failStyle.Render("No questions available"))
			return nil
		}

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = cfg.ReviewCount
		}
		if count > len(failed) {
			count = len(failed)
		}

		fmt.Printf("Found %d questions to review\n", len(failed))

		questions := b.Sample(bank.Filter{IDs: failed}, count)
		if len(questions) == 0 {
			fmt.Println(failStyle.Render("Could not find the failed questions in the catalog"))
			return nil
		}

		sess := session.New(store, thresholds(cfg))
		return app.Run(quiz.New(sess, questions, "Review Mistakes", false))
	},
}

func init() {
	reviewCmd.Flags().IntP("count", "c", 0, "Maximum number of questions to review")
}
