package core

import (
	"fmt"
	"strings"
)

// TablePrefix is prepended to every entity name to form its target relation.
const TablePrefix = "igdb_"

// IdentityField is the column every dump record must carry to be processed.
const IdentityField = "id"

// EntityDefinition describes one dump entity: its ordered field schema and
// the exclusion filters applied during validation. Definitions are built once
// at startup and never mutated during a run.
type EntityDefinition struct {
	Name    string
	Fields  []Field
	Filters FilterRules

	types map[string]SemanticType
}

// TypeOf resolves a field name to its declared semantic type.
// Fields outside the schema resolve to TypeUnknown.
func (d *EntityDefinition) TypeOf(field string) SemanticType {
	return d.types[field]
}

// Columns returns the field names in schema order. This is the target
// relation's column order and the source of truth for what gets persisted,
// regardless of what columns a dump happens to carry.
func (d *EntityDefinition) Columns() []string {
	cols := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Table returns the target relation name for this entity.
func (d *EntityDefinition) Table() string {
	return TablePrefix + d.Name
}

// HasUpdatedAt reports whether the schema carries a recency column. Entities
// with one only overwrite stored rows on a strictly newer timestamp.
func (d *EntityDefinition) HasUpdatedAt() bool {
	return d.types["updated_at"] == TypeTimestamp
}

// Registry holds the entity definitions for a run in processing order.
// It is immutable after construction and passed explicitly to the
// validator and writer rather than living in package state.
type Registry struct {
	order []string
	defs  map[string]*EntityDefinition
}

// NewRegistry builds a registry from definitions, preserving their order.
// It panics on duplicate names, missing id fields, or filters that reference
// fields outside the schema; these are programming errors, not runtime input.
func NewRegistry(defs ...EntityDefinition) *Registry {
	r := &Registry{defs: make(map[string]*EntityDefinition, len(defs))}

	for i := range defs {
		def := defs[i]
		if def.Name == "" {
			panic("entity definition with empty name")
		}
		if _, exists := r.defs[def.Name]; exists {
			panic(fmt.Sprintf("entity already registered: %s", def.Name))
		}

		def.types = make(map[string]SemanticType, len(def.Fields))
		for _, f := range def.Fields {
			if strings.TrimSpace(f.Name) == "" {
				panic(fmt.Sprintf("entity %s: field with empty name", def.Name))
			}
			if _, dup := def.types[f.Name]; dup {
				panic(fmt.Sprintf("entity %s: duplicate field %s", def.Name, f.Name))
			}
			def.types[f.Name] = f.Type
		}

		if def.types[IdentityField] == TypeUnknown {
			panic(fmt.Sprintf("entity %s: schema must declare an %s field", def.Name, IdentityField))
		}
		for field := range def.Filters {
			if _, ok := def.types[field]; !ok {
				panic(fmt.Sprintf("entity %s: filter on undeclared field %s", def.Name, field))
			}
		}

		r.defs[def.Name] = &def
		r.order = append(r.order, def.Name)
	}

	return r
}

// Get returns an entity definition by name.
func (r *Registry) Get(name string) (*EntityDefinition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// All returns the definitions in registration order, which is also the
// processing order of a run.
func (r *Registry) All() []*EntityDefinition {
	result := make([]*EntityDefinition, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.defs[name])
	}
	return result
}

// Names returns the entity names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Count returns the number of registered entities.
func (r *Registry) Count() int {
	return len(r.order)
}
