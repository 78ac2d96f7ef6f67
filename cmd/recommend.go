package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/recommend"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest what to study next",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		state, _, err := loadState(cmd.Context(), st, settings.Exam)
		if err != nil {
			return err
		}
		rec := recommend.Recommend(state, time.Now().UTC())

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, rec)
		}

		prio := theme.Subtitle
		switch rec.Priority {
		case recommend.PriorityHigh:
			prio = theme.Incorrect
		case recommend.PriorityMedium:
			prio = theme.Warning
		}

		body := theme.Title.Render(string(rec.Action))
		if rec.Domain != "" {
			body += " " + theme.Label.Render(rec.Domain)
		}
		body += "  " + prio.Render(string(rec.Priority)) + "\n" + theme.Body.Render(rec.Reason)
		fmt.Fprintln(out, theme.Card.Render(body))
		return nil
	},
}

func init() {
	recommendCmd.Flags().Bool("json", false, "Print the recommendation as JSON")
}
