package fantasy

import "strings"

// FieldKind classifies how a declared field nests inside its entity.
type FieldKind int

const (
	// KindScalar is the implicit kind of every undeclared field.
	KindScalar FieldKind = iota
	// KindEntity marks a field holding exactly one nested entity.
	KindEntity
	// KindEntityList marks a field holding an ordered sequence of entities,
	// usually wrapped by Yahoo as a pseudo-list of single-key dicts.
	KindEntityList
)

// FieldSpec describes one declared field of an entity schema.
type FieldSpec struct {
	Kind FieldKind
	// Elem is the single-key wrapper name each sequence element hides behind,
	// e.g. "team" for the "teams" collection or "position" for
	// "eligible_positions".
	Elem string
	// Entity names the schema used to recurse into nested values. Empty for
	// sequences of bare scalars.
	Entity string
}

func entity(name string) FieldSpec {
	return FieldSpec{Kind: KindEntity, Entity: name}
}

func entityList(elem string) FieldSpec {
	return FieldSpec{Kind: KindEntityList, Elem: elem, Entity: elem}
}

func scalarList(elem string) FieldSpec {
	return FieldSpec{Kind: KindEntityList, Elem: elem}
}

// entitySchemas declares, per entity, every field that nests further
// entities and how its list-vs-object ambiguity resolves. Fields absent from
// an entity's schema are scalars passed through untouched.
var entitySchemas = map[string]map[string]FieldSpec{
	"game": {
		"game_weeks":       entityList("game_week"),
		"stat_categories":  entity("stat_categories"),
		"position_types":   entityList("position_type"),
		"roster_positions": entityList("roster_position"),
		"leagues":          entityList("league"),
		"teams":            entityList("team"),
		"players":          entityList("player"),
	},
	"game_week":       {},
	"position_type":   {},
	"roster_position": {},
	"stat_categories": {
		"stats":  entityList("stat"),
		"groups": entityList("group"),
	},
	"stat": {
		"stat_position_types": entityList("stat_position_type"),
		"position_types":      scalarList("position_type"),
	},
	"stat_position_type": {},
	"user": {
		"games":   entityList("game"),
		"teams":   entityList("team"),
		"leagues": entityList("league"),
	},
	"league": {
		"settings":      entity("settings"),
		"standings":     entity("standings"),
		"scoreboard":    entity("scoreboard"),
		"teams":         entityList("team"),
		"players":       entityList("player"),
		"draft_results": entityList("draft_result"),
		"transactions":  entityList("transaction"),
	},
	"settings": {
		"roster_positions": entityList("roster_position"),
		"stat_categories":  entity("stat_categories"),
		"stat_modifiers":   entity("stat_modifiers"),
		"divisions":        entityList("division"),
	},
	"stat_modifiers": {
		"stats": entityList("stat"),
	},
	"division": {},
	"standings": {
		"teams": entityList("team"),
	},
	"scoreboard": {
		"matchups": entityList("matchup"),
	},
	"matchup": {
		"teams":          entityList("team"),
		"matchup_grades": entityList("matchup_grade"),
	},
	"matchup_grade": {},
	"team": {
		"team_logos":            entityList("team_logo"),
		"managers":              entityList("manager"),
		"roster_adds":           entity("roster_adds"),
		"roster":                entity("roster"),
		"team_points":           entity("team_points"),
		"team_projected_points": entity("team_projected_points"),
		"team_standings":        entity("team_standings"),
		"matchups":              entityList("matchup"),
		"draft_results":         entityList("draft_result"),
	},
	"team_logo":             {},
	"manager":               {},
	"roster_adds":           {},
	"team_points":           {},
	"team_projected_points": {},
	"team_standings": {
		"outcome_totals":            entity("outcome_totals"),
		"divisional_outcome_totals": entity("outcome_totals"),
		"streak":                    entity("streak"),
	},
	"outcome_totals": {},
	"streak":         {},
	"roster": {
		"players": entityList("player"),
	},
	"player": {
		"name":                  entity("name"),
		"bye_weeks":             entity("bye_weeks"),
		"headshot":              entity("headshot"),
		"eligible_positions":    scalarList("position"),
		"selected_position":     entity("selected_position"),
		"player_stats":          entity("player_stats"),
		"player_advanced_stats": entity("player_stats"),
		"player_points":         entity("player_points"),
		"ownership":             entity("ownership"),
		"percent_owned":         entity("percent_owned"),
		"draft_analysis":        entity("draft_analysis"),
		"transaction_data":      entity("transaction_data"),
	},
	"name":              {},
	"bye_weeks":         {},
	"headshot":          {},
	"selected_position": {},
	"player_stats": {
		"stats": entityList("stat"),
	},
	"player_points":    {},
	"ownership":        {},
	"percent_owned":    {},
	"draft_analysis":   {},
	"transaction_data": {},
	"transaction": {
		"players": entityList("player"),
	},
	"draft_result": {},
	"group":        {},
}

// Schema returns the declared field specs for an entity, or nil when the
// entity is unknown (untyped passthrough).
func Schema(entityName string) map[string]FieldSpec {
	return entitySchemas[entityName]
}

// ElementKey reduces a plural collection key to the singular wrapper key its
// elements hide behind ("teams" -> "team", "game_weeks" -> "game_week").
func ElementKey(plural string) string {
	return strings.TrimSuffix(plural, "s")
}
