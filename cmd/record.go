package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/engine"
	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var recordCmd = &cobra.Command{
	Use:   "record QUESTION_ID DOMAIN RESULT",
	Short: "Record a graded answer",
	Long: "Record a graded answer. RESULT is correct or wrong.\n" +
		"With --file, record a JSON array of {question_id, domain, correct} objects instead.",
	Args: func(cmd *cobra.Command, args []string) error {
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		answers, err := answersFromInput(cmd, args)
		if err != nil {
			return err
		}
		level, _ := cmd.Flags().GetString("difficulty")
		if level != "" {
			if l, err := difficulty.Parse(level); err != nil || !l.Valid() {
				return fmt.Errorf("--difficulty must be easy, medium or hard")
			}
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		state, seq, err := loadState(ctx, st, settings.Exam)
		if err != nil {
			return err
		}
		before := state.CurrentDifficulty
		events := st.EventRepo()
		session := uuid.NewString()

		for _, a := range answers {
			now := time.Now().UTC()
			next, err := engine.RecordResult(state, a, now)
			if err != nil {
				return err
			}
			seq, err = events.AppendAnswerEvent(ctx, store.AnswerEventData{
				Exam:       settings.Exam,
				SessionID:  session,
				QuestionID: a.QuestionID,
				Domain:     a.Domain,
				Difficulty: level,
				Correct:    a.Correct,
				Timestamp:  now,
			})
			if err != nil {
				return err
			}
			state = next

			h, _ := state.History(a.QuestionID)
			mark := theme.Correct.Render("✓")
			if !a.Correct {
				mark = theme.Incorrect.Render("✗")
			}
			fmt.Fprintf(out, "%s %s %s  next review in %s\n",
				mark, a.QuestionID, theme.Subtitle.Render("("+a.Domain+")"),
				plural(h.DaysUntilReview(now), "day"))
		}

		saveState(ctx, st, state, seq, settings.Snapshots.Keep)

		if state.CurrentDifficulty != before {
			fmt.Fprintf(out, "%s difficulty %s → %s\n",
				theme.Label.Render("»"), before, theme.Warning.Render(string(state.CurrentDifficulty)))
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().String("file", "", "JSON file of answers to record (- for stdin)")
	recordCmd.Flags().String("difficulty", "", "Difficulty tag of the answered question(s), kept in the answer log")
}

func answersFromInput(cmd *cobra.Command, args []string) ([]engine.Answer, error) {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		correct, err := parseResult(args[2])
		if err != nil {
			return nil, err
		}
		return []engine.Answer{{QuestionID: args[0], Domain: args[1], Correct: correct}}, nil
	}

	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var answers []engine.Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

func parseResult(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "correct", "right", "true", "yes", "1":
		return true, nil
	case "wrong", "incorrect", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("result must be correct or wrong, got %q", s)
}
