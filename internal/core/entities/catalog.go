// Package entities declares the dump entity schemas and exclusion filters.
// Each entity's field order here is also its target relation's column order.
package entities

import "github.com/lanelevesque/IGDB-Data-Upsert/internal/core"

// Catalog returns the entity definitions in processing order. The returned
// registry is immutable; build it once at startup and pass it down.
func Catalog() *core.Registry {
	return core.NewRegistry(
		gamesDefinition(),
		companiesDefinition(),
		coversDefinition(),
		genresDefinition(),
		keywordsDefinition(),
		platformsDefinition(),
	)
}
