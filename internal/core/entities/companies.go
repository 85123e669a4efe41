package entities

import "github.com/lanelevesque/IGDB-Data-Upsert/internal/core"

func companiesDefinition() core.EntityDefinition {
	return core.EntityDefinition{
		Name: "companies",
		Fields: []core.Field{
			{Name: "id", Type: core.TypeInteger},
			{Name: "name", Type: core.TypeText},
			{Name: "created_at", Type: core.TypeTimestamp},
			{Name: "updated_at", Type: core.TypeTimestamp},
			{Name: "slug", Type: core.TypeText},
			{Name: "url", Type: core.TypeText},
			{Name: "logo", Type: core.TypeInteger},
			{Name: "description", Type: core.TypeText},
			{Name: "start_date", Type: core.TypeTimestamp},
			{Name: "start_date_category", Type: core.TypeInteger},
			{Name: "country", Type: core.TypeInteger},
			{Name: "parent", Type: core.TypeInteger},
			{Name: "changed_company_id", Type: core.TypeInteger},
			{Name: "change_date", Type: core.TypeTimestamp},
			{Name: "change_date_category", Type: core.TypeInteger},
			{Name: "twitter", Type: core.TypeText},
			{Name: "facebook", Type: core.TypeText},
			{Name: "published", Type: core.TypeIntegerArray},
			{Name: "developed", Type: core.TypeIntegerArray},
			{Name: "website", Type: core.TypeInteger},
			{Name: "websites", Type: core.TypeIntegerArray},
			{Name: "checksum", Type: core.TypeUUID},
			{Name: "status", Type: core.TypeInteger},
			{Name: "start_date_format", Type: core.TypeInteger},
			{Name: "change_date_format", Type: core.TypeInteger},
		},
	}
}
