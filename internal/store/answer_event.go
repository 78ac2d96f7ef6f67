package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo using ent's SQL builders.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(answerEventsTable).
		Columns("sequence", "timestamp", "exam", "session_id", "question_id", "domain", "difficulty", "correct").
		Values(seqNum, ts.UTC(), data.Exam, data.SessionID, data.QuestionID, data.Domain, data.Difficulty, data.Correct).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return 0, fmt.Errorf("save answer event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, exam string, opts QueryOpts) ([]AnswerEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "timestamp", "exam", "session_id", "question_id", "domain", "difficulty", "correct").
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ("exam", exam)).
		OrderBy(entsql.Asc("sequence"))

	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var (
			e          AnswerEvent
			difficulty sql.NullString
		)
		err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.Exam, &e.SessionID,
			&e.QuestionID, &e.Domain, &difficulty, &e.Correct)
		if err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Difficulty = difficulty.String
		e.Timestamp = e.Timestamp.UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) DeleteAnswerEvents(ctx context.Context, exam string) (int64, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(answerEventsTable).
		Where(entsql.EQ("exam", exam)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("delete answer events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete answer events: %w", err)
	}
	return n, nil
}
