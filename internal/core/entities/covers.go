package entities

import "github.com/lanelevesque/IGDB-Data-Upsert/internal/core"

// coversDefinition is the only entity with boolean fields; covers also lack
// updated_at, so conflicting rows always overwrite.
func coversDefinition() core.EntityDefinition {
	return core.EntityDefinition{
		Name: "covers",
		Fields: []core.Field{
			{Name: "id", Type: core.TypeInteger},
			{Name: "url", Type: core.TypeText},
			{Name: "image_id", Type: core.TypeText},
			{Name: "width", Type: core.TypeInteger},
			{Name: "height", Type: core.TypeInteger},
			{Name: "alpha_channel", Type: core.TypeBoolean},
			{Name: "animated", Type: core.TypeBoolean},
			{Name: "game", Type: core.TypeInteger},
			{Name: "checksum", Type: core.TypeUUID},
			{Name: "game_localization", Type: core.TypeInteger},
		},
	}
}
