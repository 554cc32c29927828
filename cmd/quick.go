package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devprep/internal/app"
	"devprep/internal/bank"
	"devprep/internal/screens/quiz"
	"devprep/internal/session"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Answer one random question",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b := openBank(cfg)
		q, ok := b.Random()
		if !ok {
			fmt.Println(failStyle.Render("No questions available"))
			return nil
		}

		sess := session.New(openStore(cfg), thresholds(cfg))
		return app.Run(quiz.New(sess, []bank.Question{q}, "Quick Question", false))
	},
}
