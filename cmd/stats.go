package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/performance"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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
		now := time.Now().UTC()
		bp := state.Blueprint()

		var rows [][]string
		for _, d := range state.SortedDomains() {
			p := state.DomainPerformance[d]
			acc, recent, flag := "-", "-", ""
			if p.Attempted > 0 {
				acc = theme.Score(p.Accuracy(), performance.NeedsWorkThreshold).
					Render(strconv.Itoa(p.Accuracy()) + "%")
				recent = strconv.Itoa(p.RecentAccuracy) + "%"
			}
			if p.NeedsWork() {
				flag = theme.Incorrect.Render("needs work")
			}
			rows = append(rows, []string{
				d, bp.DisplayName(d), strconv.Itoa(bp.Weight(d)) + "%",
				strconv.Itoa(p.Attempted), acc, recent, flag,
			})
		}

		out := cmd.OutOrStdout()
		title := settings.Exam
		if bp.Name != "" {
			title = bp.Name
		}
		fmt.Fprintln(out, theme.Title.Render(title))
		fmt.Fprintln(out, renderTable(
			[]string{"Domain", "Name", "Weight", "Attempted", "Accuracy", "Last 10", ""}, rows))

		fmt.Fprintf(out, "%s %s   %s %.0f%%   %s %d   %s %d\n",
			theme.Label.Render("Difficulty"), state.CurrentDifficulty,
			theme.Label.Render("Rolling accuracy"), state.RollingAccuracy()*100,
			theme.Label.Render("Questions seen"), len(state.QuestionHistory),
			theme.Label.Render("Due for review"), len(state.DueForReview(now)))
		return nil
	},
}
