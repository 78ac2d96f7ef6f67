package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Browse exam blueprints",
}

var blueprintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known exams and their domain weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, b := range blueprint.All() {
			rows := make([][]string, len(b.Entries))
			for i, e := range b.Entries {
				rows[i] = []string{e.Domain, b.DisplayName(e.Domain), strconv.Itoa(e.Weight) + "%"}
			}
			header := theme.Title.Render(b.Exam)
			if b.Name != "" {
				header += " " + theme.Subtitle.Render(b.Name)
			}
			if b.Exam == settings.Exam {
				header += " " + theme.Label.Render("(selected)")
			}
			fmt.Fprintln(out, header)
			fmt.Fprintln(out, renderTable([]string{"Domain", "Name", "Weight"}, rows))
		}
		return nil
	},
}

func init() {
	blueprintCmd.AddCommand(blueprintListCmd)
}
