package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/ui/theme"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Recompute learner state from the answer log",
	Long: "Replay every recorded answer for the selected exam and save a fresh snapshot.\n" +
		"Use this after changing blueprints or if the saved state looks wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		state, seq, n, err := rebuildState(ctx, st, settings.Exam)
		if err != nil {
			return err
		}
		saveState(ctx, st, state, seq, settings.Snapshots.Keep)

		fmt.Fprintf(cmd.OutOrStdout(), "%s replayed %s for %s (level %s)\n",
			theme.Correct.Render("rebuilt"), plural(n, "answer"), settings.Exam, state.CurrentDifficulty)
		return nil
	},
}
