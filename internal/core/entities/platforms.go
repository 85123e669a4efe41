package entities

import "github.com/lanelevesque/IGDB-Data-Upsert/internal/core"

func platformsDefinition() core.EntityDefinition {
	return core.EntityDefinition{
		Name: "platforms",
		Fields: []core.Field{
			{Name: "id", Type: core.TypeInteger},
			{Name: "name", Type: core.TypeText},
			{Name: "slug", Type: core.TypeText},
			{Name: "url", Type: core.TypeText},
			{Name: "created_at", Type: core.TypeTimestamp},
			{Name: "updated_at", Type: core.TypeTimestamp},
			{Name: "summary", Type: core.TypeText},
			{Name: "category", Type: core.TypeInteger},
			{Name: "platform_family", Type: core.TypeInteger},
			{Name: "alternative_name", Type: core.TypeText},
			{Name: "generation", Type: core.TypeInteger},
			{Name: "versions", Type: core.TypeIntegerArray},
			{Name: "abbreviation", Type: core.TypeText},
			{Name: "platform_logo", Type: core.TypeInteger},
			{Name: "websites", Type: core.TypeIntegerArray},
			{Name: "checksum", Type: core.TypeUUID},
			{Name: "platform_type", Type: core.TypeInteger},
		},
	}
}
