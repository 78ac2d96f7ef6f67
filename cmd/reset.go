package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data for the selected exam",
	Long:  "Delete every recorded answer and snapshot for the selected exam. This cannot be undone.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete %s data without --yes", settings.Exam)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		n, err := st.EventRepo().DeleteAnswerEvents(ctx, settings.Exam)
		if err != nil {
			return err
		}
		if err := st.SnapshotRepo().Delete(ctx, settings.Exam); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %s for %s\n",
			theme.Warning.Render("reset"), plural(int(n), "answer"), settings.Exam)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
