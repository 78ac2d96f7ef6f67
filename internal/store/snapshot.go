package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo using ent's SQL builders.
type snapshotRepo struct {
	drv *entsql.Driver
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(snapshotsTable).
		Columns("stream", "sequence", "timestamp", "data").
		Values(snap.Stream, snap.Sequence, ts.UTC(), snap.Data).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, stream string) (*Snapshot, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "stream", "sequence", "timestamp", "data").
		From(entsql.Table(snapshotsTable)).
		Where(entsql.EQ("stream", stream)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query latest snapshot: %w", err)
		}
		return nil, nil
	}

	var s Snapshot
	if err := rows.Scan(&s.ID, &s.Stream, &s.Sequence, &s.Timestamp, &s.Data); err != nil {
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	s.Timestamp = s.Timestamp.UTC()
	return &s, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, stream string, keep int) error {
	// Find the ID threshold: the newest snapshot past the keep window.
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id").
		From(entsql.Table(snapshotsTable)).
		Where(entsql.EQ("stream", stream)).
		OrderBy(entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var threshold int
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete(snapshotsTable).
		Where(entsql.And(entsql.EQ("stream", stream), entsql.LTE("id", threshold))).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Delete(ctx context.Context, stream string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(snapshotsTable).
		Where(entsql.EQ("stream", stream)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
