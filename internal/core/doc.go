// Package core provides the validation and upsert engine for IGDB dump imports.
//
// The dump provider publishes each entity (games, companies, covers, genres,
// keywords, platforms) as a full CSV extract with no enforced typing. This
// package turns those extracts into typed, filtered, deduplicated rows and
// merges them into PostgreSQL.
//
// # Pipeline
//
// A run processes entities strictly one at a time:
//
//  1. [LoadDump] reads the entity's payload into name-keyed [RawRecord]s.
//  2. [Validator.Validate] parses every declared field against the entity's
//     schema and applies its exclusion filters, partitioning records into
//     accepted and rejected sets.
//  3. [Writer.Upsert] merges the accepted set into the entity's relation in
//     bounded batches, gated on a strictly newer updated_at where the schema
//     has one. The commit after each entity is its durability point.
//
// # Schemas
//
// Entity schemas live in the entities subpackage as ordered field lists; the
// field order is also the target relation's column order. The schema, not a
// dump's header row, decides what gets parsed and persisted.
//
// # Error handling
//
// Per-record problems (a malformed field, a filter match, a missing id) never
// escape the validator; they are counted and logged with entity, id, field,
// and type so filtered rows are distinguishable from bad data. Only a store
// failure aborts a run, and entities already committed stay committed.
package core
