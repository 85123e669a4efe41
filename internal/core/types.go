package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// SemanticType is the declared value category of a dump field,
// independent of its raw textual representation.
type SemanticType int

const (
	TypeUnknown SemanticType = iota
	TypeInteger
	TypeText
	TypeTimestamp
	TypeIntegerArray
	TypeFloat
	TypeUUID
	TypeBoolean
)

// String returns the type name as it appears in log entries.
func (t SemanticType) String() string {
	switch t {
	case TypeInteger:
		return "int"
	case TypeText:
		return "text"
	case TypeTimestamp:
		return "timestamp"
	case TypeIntegerArray:
		return "int_array"
	case TypeFloat:
		return "float"
	case TypeUUID:
		return "uuid"
	case TypeBoolean:
		return "bool"
	default:
		return "unknown"
	}
}

// Field declares one schema column: its dump header name and semantic type.
type Field struct {
	Name string
	Type SemanticType
}

// FilterRules maps a field name to the integer values that exclude a record.
// A record whose parsed value for the field intersects the set is rejected.
type FilterRules map[string][]int64

// RawRecord is one dump line keyed by header name, untyped.
type RawRecord map[string]string

// Value is one parsed field value. Valid=false means absent; absent values
// are bound as NULL when the record is written.
type Value struct {
	Type  SemanticType
	Valid bool

	Int   int64
	Float float64
	Text  string
	Time  time.Time
	Ints  []int64
	UUID  uuid.UUID
	Bool  bool
}

// IntSet returns the value viewed as a set of integers: a scalar integer is a
// one-element set, an integer array is its element set. Any other type (or an
// absent value) yields nil. Filter matching is defined over this view.
func (v Value) IntSet() []int64 {
	if !v.Valid {
		return nil
	}
	switch v.Type {
	case TypeInteger:
		return []int64{v.Int}
	case TypeIntegerArray:
		return v.Ints
	default:
		return nil
	}
}

// Arg returns the value as a database bind argument. Absent values map to
// NULL-carrying pgtype values (or a nil slice for arrays).
func (v Value) Arg() any {
	switch v.Type {
	case TypeInteger:
		return pgtype.Int8{Int64: v.Int, Valid: v.Valid}
	case TypeText:
		return pgtype.Text{String: v.Text, Valid: v.Valid}
	case TypeTimestamp:
		return pgtype.Timestamp{Time: v.Time, Valid: v.Valid}
	case TypeIntegerArray:
		if !v.Valid {
			return []int64(nil)
		}
		return v.Ints
	case TypeFloat:
		return pgtype.Float8{Float64: v.Float, Valid: v.Valid}
	case TypeUUID:
		return pgtype.UUID{Bytes: v.UUID, Valid: v.Valid}
	case TypeBoolean:
		return pgtype.Bool{Bool: v.Bool, Valid: v.Valid}
	default:
		return nil
	}
}

// ParsedRecord is one accepted dump record: its identity key plus the typed
// value for every schema field. Built transiently per validation pass.
type ParsedRecord struct {
	ID     string
	Values map[string]Value
}

// ValidationResult partitions one entity's records into accepted records and
// an invalid count. Records without a usable id belong to neither partition.
type ValidationResult struct {
	Entity  string
	Valid   []ParsedRecord
	Invalid int
}

// ValidCount returns the number of accepted records.
func (r ValidationResult) ValidCount() int {
	return len(r.Valid)
}
