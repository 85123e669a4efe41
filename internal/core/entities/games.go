package entities

import "github.com/lanelevesque/IGDB-Data-Upsert/internal/core"

// gamesDefinition is the widest entity in the catalog. Its filters drop
// erotic titles (theme 42) and mods (game_type 5) before they reach the
// store.
func gamesDefinition() core.EntityDefinition {
	return core.EntityDefinition{
		Name: "games",
		Fields: []core.Field{
			{Name: "id", Type: core.TypeInteger},
			{Name: "name", Type: core.TypeText},
			{Name: "slug", Type: core.TypeText},
			{Name: "url", Type: core.TypeText},
			{Name: "created_at", Type: core.TypeTimestamp},
			{Name: "updated_at", Type: core.TypeTimestamp},
			{Name: "summary", Type: core.TypeText},
			{Name: "storyline", Type: core.TypeText},
			{Name: "collection", Type: core.TypeInteger},
			{Name: "franchise", Type: core.TypeInteger},
			{Name: "franchises", Type: core.TypeIntegerArray},
			{Name: "hypes", Type: core.TypeInteger},
			{Name: "follows", Type: core.TypeInteger},
			{Name: "rating", Type: core.TypeFloat},
			{Name: "aggregated_rating", Type: core.TypeFloat},
			{Name: "aggregated_rating_count", Type: core.TypeInteger},
			{Name: "total_rating", Type: core.TypeFloat},
			{Name: "total_rating_count", Type: core.TypeInteger},
			{Name: "rating_count", Type: core.TypeInteger},
			{Name: "parent_game", Type: core.TypeInteger},
			{Name: "version_parent", Type: core.TypeInteger},
			{Name: "version_title", Type: core.TypeText},
			{Name: "similar_games", Type: core.TypeIntegerArray},
			{Name: "tags", Type: core.TypeIntegerArray},
			{Name: "game_engines", Type: core.TypeIntegerArray},
			{Name: "category", Type: core.TypeInteger},
			{Name: "player_perspectives", Type: core.TypeIntegerArray},
			{Name: "game_modes", Type: core.TypeIntegerArray},
			{Name: "keywords", Type: core.TypeIntegerArray},
			{Name: "themes", Type: core.TypeIntegerArray},
			{Name: "genres", Type: core.TypeIntegerArray},
			{Name: "expansions", Type: core.TypeIntegerArray},
			{Name: "dlcs", Type: core.TypeIntegerArray},
			{Name: "bundles", Type: core.TypeIntegerArray},
			{Name: "standalone_expansions", Type: core.TypeIntegerArray},
			{Name: "first_release_date", Type: core.TypeTimestamp},
			{Name: "status", Type: core.TypeInteger},
			{Name: "platforms", Type: core.TypeIntegerArray},
			{Name: "release_dates", Type: core.TypeIntegerArray},
			{Name: "alternative_names", Type: core.TypeIntegerArray},
			{Name: "screenshots", Type: core.TypeIntegerArray},
			{Name: "videos", Type: core.TypeIntegerArray},
			{Name: "cover", Type: core.TypeInteger},
			{Name: "websites", Type: core.TypeIntegerArray},
			{Name: "external_games", Type: core.TypeIntegerArray},
			{Name: "multiplayer_modes", Type: core.TypeIntegerArray},
			{Name: "involved_companies", Type: core.TypeIntegerArray},
			{Name: "age_ratings", Type: core.TypeIntegerArray},
			{Name: "artworks", Type: core.TypeIntegerArray},
			{Name: "checksum", Type: core.TypeUUID},
			{Name: "remakes", Type: core.TypeIntegerArray},
			{Name: "remasters", Type: core.TypeIntegerArray},
			{Name: "expanded_games", Type: core.TypeIntegerArray},
			{Name: "ports", Type: core.TypeIntegerArray},
			{Name: "forks", Type: core.TypeIntegerArray},
			{Name: "language_supports", Type: core.TypeIntegerArray},
			{Name: "game_localizations", Type: core.TypeIntegerArray},
			{Name: "collections", Type: core.TypeIntegerArray},
			{Name: "game_status", Type: core.TypeInteger},
			{Name: "game_type", Type: core.TypeInteger},
		},
		Filters: core.FilterRules{
			"themes":    {42},
			"game_type": {5},
		},
	}
}
