package entities

import "github.com/lanelevesque/IGDB-Data-Upsert/internal/core"

// genres and keywords share the same small lookup-table shape.

func genresDefinition() core.EntityDefinition {
	return core.EntityDefinition{
		Name:   "genres",
		Fields: lookupFields(),
	}
}

func keywordsDefinition() core.EntityDefinition {
	return core.EntityDefinition{
		Name:   "keywords",
		Fields: lookupFields(),
	}
}

func lookupFields() []core.Field {
	return []core.Field{
		{Name: "id", Type: core.TypeInteger},
		{Name: "name", Type: core.TypeText},
		{Name: "created_at", Type: core.TypeTimestamp},
		{Name: "updated_at", Type: core.TypeTimestamp},
		{Name: "slug", Type: core.TypeText},
		{Name: "url", Type: core.TypeText},
		{Name: "checksum", Type: core.TypeUUID},
	}
}
