package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/engine"
	"github.com/abhisek/examprep/internal/store"
)

// loadState restores an exam's engine state: the latest snapshot, plus
// any answers logged after it was taken. It returns the sequence of the
// last answer folded in.
func loadState(ctx context.Context, st *store.Store, exam string) (engine.State, int64, error) {
	snap, err := st.SnapshotRepo().Latest(ctx, exam)
	if err != nil {
		return engine.State{}, 0, err
	}

	var (
		data []byte
		seq  int64
	)
	if snap != nil {
		data, seq = snap.Data, snap.Sequence
	}
	state, restored := engine.Load(data, exam, slog.Default())
	if !restored {
		// Nothing usable on disk; fold in the whole log.
		seq = 0
	}

	events, err := st.EventRepo().QueryAnswerEvents(ctx, exam, store.QueryOpts{After: seq})
	if err != nil {
		return engine.State{}, 0, err
	}
	if len(events) > 0 {
		slog.Debug("applying answers newer than snapshot", "exam", exam, "count", len(events), "after", seq)
	}
	for _, e := range events {
		next, err := engine.RecordResult(state, answerOf(e), e.Timestamp)
		if err != nil {
			slog.Warn("skipping unreadable answer event", "sequence", e.Sequence, "error", err)
			continue
		}
		state, seq = next, e.Sequence
	}
	return state, seq, nil
}

// saveState writes a snapshot and prunes old ones. Snapshots are a cache
// over the answer log, so a failure is logged rather than returned.
func saveState(ctx context.Context, st *store.Store, state engine.State, seq int64, keep int) {
	data, err := engine.Marshal(state)
	if err != nil {
		slog.Warn("encode snapshot", "error", err)
		return
	}
	repo := st.SnapshotRepo()
	if err := repo.Save(ctx, &store.Snapshot{Stream: state.Exam, Sequence: seq, Data: data}); err != nil {
		slog.Warn("save snapshot", "exam", state.Exam, "error", err)
		return
	}
	if err := repo.Prune(ctx, state.Exam, keep); err != nil {
		slog.Warn("prune snapshots", "exam", state.Exam, "error", err)
	}
}

// rebuildState replays an exam's full answer log.
func rebuildState(ctx context.Context, st *store.Store, exam string) (engine.State, int64, int, error) {
	events, err := st.EventRepo().QueryAnswerEvents(ctx, exam, store.QueryOpts{})
	if err != nil {
		return engine.State{}, 0, 0, err
	}

	answers := make([]engine.RecordedAnswer, 0, len(events))
	var seq int64
	for _, e := range events {
		answers = append(answers, engine.RecordedAnswer{Answer: answerOf(e), At: e.Timestamp})
		seq = e.Sequence
	}
	state, err := engine.Replay(blueprint.For(exam), answers)
	if err != nil {
		return engine.State{}, 0, 0, fmt.Errorf("rebuild %s: %w", exam, err)
	}
	return state, seq, len(events), nil
}

func answerOf(e store.AnswerEvent) engine.Answer {
	return engine.Answer{QuestionID: e.QuestionID, Domain: e.Domain, Correct: e.Correct}
}
