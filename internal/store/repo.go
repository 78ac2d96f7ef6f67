package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time copy of a learner's encoded engine state.
// Sequence is the last answer event folded into Data.
type Snapshot struct {
	ID        int
	Stream    string
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo manages engine state snapshots, one stream per exam.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recently saved snapshot of a stream, or
	// nil if none exist.
	Latest(ctx context.Context, stream string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots of a stream.
	Prune(ctx context.Context, stream string, keep int) error

	// Delete removes every snapshot of a stream.
	Delete(ctx context.Context, stream string) error
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	Exam       string
	SessionID  string
	QuestionID string
	Domain     string
	Difficulty string
	Correct    bool
	Timestamp  time.Time
}

// AnswerEvent is a stored answer with its global sequence number.
type AnswerEvent struct {
	ID       int
	Sequence int64
	AnswerEventData
}

// EventRepo provides append and query access to the answer log.
type EventRepo interface {
	// AppendAnswerEvent records an answer and returns its sequence number.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) (int64, error)

	// QueryAnswerEvents returns an exam's answers in sequence order.
	QueryAnswerEvents(ctx context.Context, exam string, opts QueryOpts) ([]AnswerEvent, error)

	// DeleteAnswerEvents removes an exam's answers and reports how many
	// were removed.
	DeleteAnswerEvents(ctx context.Context, exam string) (int64, error)
}
