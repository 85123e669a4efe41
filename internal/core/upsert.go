package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultBatchSize is how many rows go into one INSERT statement. Batching
// only bounds statement size; it never changes merge semantics.
const DefaultBatchSize = 5000

// maxBindParams is PostgreSQL's per-statement bind parameter limit. Wide
// entities are batched below DefaultBatchSize to stay under it.
const maxBindParams = 65535

// Writer merges accepted records into an entity's target relation with a
// single logical upsert per entity: new ids are inserted, existing ids are
// overwritten only when the incoming updated_at is strictly newer (entities
// without updated_at always overwrite). Replaying the same accepted set is a
// no-op.
type Writer struct {
	batchSize int
	logger    *slog.Logger
}

// NewWriter returns a writer using the given batch size, or DefaultBatchSize
// when batchSize is not positive.
func NewWriter(batchSize int, logger *slog.Logger) *Writer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{batchSize: batchSize, logger: logger}
}

// Upsert merges records into def's relation through db, which is expected to
// be a transaction so the caller controls the per-entity durability point.
// It returns the number of rows inserted or updated.
func (w *Writer) Upsert(ctx context.Context, db DBTX, def *EntityDefinition, records []ParsedRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	// Collapse duplicate ids before batching. Without this, a stale row in a
	// later batch could win against a fresher row from an earlier batch, and
	// Postgres rejects statements that touch the same conflict row twice.
	records = dedupeByID(def, records)

	cols := def.Columns()
	perBatch := w.batchSize
	if limit := maxBindParams / len(cols); perBatch > limit {
		perBatch = limit
	}

	var affected int64
	for start := 0; start < len(records); start += perBatch {
		end := start + perBatch
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		sql := buildUpsertSQL(def, cols, len(batch))
		args := make([]any, 0, len(batch)*len(cols))
		for _, rec := range batch {
			for _, col := range cols {
				args = append(args, rec.Values[col].Arg())
			}
		}

		tag, err := db.Exec(ctx, sql, args...)
		if err != nil {
			return affected, fmt.Errorf("upsert %s rows %d-%d: %w", def.Table(), start, end-1, err)
		}
		affected += tag.RowsAffected()

		w.logger.Debug("batch merged",
			"entity", def.Name, "rows", len(batch), "offset", start)
	}

	w.logger.Info("upsert complete",
		"entity", def.Name,
		"submitted", len(records),
		"affected", affected,
	)
	return affected, nil
}

// dedupeByID keeps one record per id. When the entity carries updated_at the
// freshest timestamp wins and ties keep the earlier record, matching the
// strictly-greater conflict gate; without updated_at the last occurrence
// wins, matching sequential overwrite semantics.
func dedupeByID(def *EntityDefinition, records []ParsedRecord) []ParsedRecord {
	index := make(map[string]int, len(records))
	out := make([]ParsedRecord, 0, len(records))
	gated := def.HasUpdatedAt()

	for _, rec := range records {
		i, seen := index[rec.ID]
		if !seen {
			index[rec.ID] = len(out)
			out = append(out, rec)
			continue
		}
		if !gated || newerThan(rec, out[i]) {
			out[i] = rec
		}
	}
	return out
}

// newerThan reports whether a's updated_at is strictly greater than b's.
// An absent timestamp never beats a present one.
func newerThan(a, b ParsedRecord) bool {
	at, bt := a.Values["updated_at"], b.Values["updated_at"]
	if !at.Valid {
		return false
	}
	if !bt.Valid {
		return true
	}
	return at.Time.After(bt.Time)
}

// buildUpsertSQL renders one multi-row insert-or-update statement. The
// conflict target is always id; the update clause is gated on a strictly
// newer updated_at when the entity has one.
func buildUpsertSQL(def *EntityDefinition, cols []string, rows int) string {
	var b strings.Builder

	b.WriteString("INSERT INTO ")
	b.WriteString(def.Table())
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(")\nVALUES ")

	arg := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for c := range cols {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", arg)
			arg++
		}
		b.WriteString(")")
	}

	assignments := make([]string, 0, len(cols))
	for _, col := range cols {
		if col == IdentityField {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	if len(assignments) == 0 {
		b.WriteString("\nON CONFLICT (id) DO NOTHING")
		return b.String()
	}

	b.WriteString("\nON CONFLICT (id) DO UPDATE SET ")
	b.WriteString(strings.Join(assignments, ", "))
	if def.HasUpdatedAt() {
		fmt.Fprintf(&b, "\nWHERE %s.updated_at < EXCLUDED.updated_at", def.Table())
	}

	return b.String()
}
