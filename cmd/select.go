package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/pool"
	"github.com/abhisek/examprep/internal/selector"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick the next batch of practice questions from a pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		poolPath, _ := flags.GetString("pool")
		questions, err := pool.LoadFile(poolPath)
		if err != nil {
			return err
		}

		criteria := selector.DefaultCriteria(settings.Select.Count)
		if n, _ := flags.GetInt("count"); n != 0 {
			criteria.Count = n
		}
		if lvl, _ := flags.GetString("difficulty"); lvl != "" {
			l, err := difficulty.Parse(lvl)
			if err != nil {
				return err
			}
			criteria.Difficulty = l
		}
		criteria.Domains, _ = flags.GetStringSlice("domain")
		if v, _ := flags.GetBool("no-review"); v {
			criteria.IncludeReviewDue = false
		}
		if v, _ := flags.GetBool("no-weak"); v {
			criteria.PrioritizeWeakAreas = false
		}
		if v, _ := flags.GetBool("no-weighted"); v {
			criteria.ExamWeighted = false
		}
		if v, _ := flags.GetBool("include-recent"); v {
			criteria.ExcludeRecent = false
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		state, _, err := loadState(ctx, st, settings.Exam)
		if err != nil {
			return err
		}

		opts := []selector.Option{selector.WithLogger(slog.Default())}
		seed := settings.Select.Seed
		if flags.Changed("seed") {
			seed, _ = flags.GetUint64("seed")
		}
		if seed != 0 {
			opts = append(opts, selector.WithSeed(seed))
		}

		picked, err := selector.New(opts...).Select(questions, state, criteria, time.Now().UTC())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := flags.GetBool("json"); asJSON {
			return writeJSON(out, picked)
		}

		rows := make([][]string, len(picked))
		for i, q := range picked {
			rows[i] = []string{strconv.Itoa(i + 1), q.ID, q.Domain, string(q.Difficulty), string(q.Reason)}
		}
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s practice batch", settings.Exam)))
		fmt.Fprintln(out, renderTable([]string{"#", "Question", "Domain", "Difficulty", "Reason"}, rows))
		if len(picked) < criteria.Count {
			fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf(
				"only %d of %d requested questions matched (level %s)",
				len(picked), criteria.Count, state.CurrentDifficulty)))
		}
		return nil
	},
}

func init() {
	selectCmd.Flags().String("pool", "", "Question pool JSON file")
	selectCmd.Flags().Int("count", 0, "Number of questions (default from config)")
	selectCmd.Flags().String("difficulty", "", "easy, medium, hard or adaptive (default adaptive)")
	selectCmd.Flags().StringSlice("domain", nil, "Restrict to these domains (repeatable)")
	selectCmd.Flags().Bool("no-review", false, "Skip the review-due pass")
	selectCmd.Flags().Bool("no-weak", false, "Skip the weak-domain pass")
	selectCmd.Flags().Bool("no-weighted", false, "Skip the exam-weighted pass")
	selectCmd.Flags().Bool("include-recent", false, "Allow questions served in recent sessions")
	selectCmd.Flags().Uint64("seed", 0, "Seed for reproducible selection")
	selectCmd.Flags().Bool("json", false, "Print the selection as JSON")
	_ = selectCmd.MarkFlagRequired("pool")
}
