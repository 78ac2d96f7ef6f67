package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/examprep/ent/schema"
)

const (
	snapshotsTable    = "snapshots"
	answerEventsTable = "answer_events"
)

// migrate creates or updates the tables described by the ent schemas.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	defs := []struct {
		name   string
		schema ent.Interface
	}{
		{snapshotsTable, entschema.Snapshot{}},
		{answerEventsTable, entschema.AnswerEvent{}},
	}

	var tables []*schema.Table
	for _, d := range defs {
		t, err := tableFor(d.name, d.schema)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return m.Create(ctx, tables...)
}

// tableFor builds the SQL table for an ent schema, including the fields
// and indexes of its mixins. Every table gets an auto-increment id.
func tableFor(name string, s ent.Interface) (*schema.Table, error) {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	columns := make(map[string]*schema.Column)
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("table %s field %s: %w", name, d.Name, d.Err)
		}
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
		}
		t.Columns = append(t.Columns, c)
		columns[d.Name] = c
	}

	for _, i := range indexes {
		d := i.Descriptor()
		idx := &schema.Index{
			Name:   name + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			c, ok := columns[f]
			if !ok {
				return nil, fmt.Errorf("table %s index on unknown field %q", name, f)
			}
			idx.Columns = append(idx.Columns, c)
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t, nil
}
