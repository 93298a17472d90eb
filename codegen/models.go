// Package codegen transforms JSON-shaped Pokémon Showdown data into the
// const tables and enums the domain packages (types, natures, abilities,
// moveset, species, items) hand-author today. It mirrors what a
// go:generate pass over the full data corpus would emit, but is exercised
// here only against small synthetic inputs built in its own tests — the
// domain packages' real tables stay hand-curated.
package codegen

import "encoding/json"

// MoveData is the JSON shape of one entry in Showdown's moves.json.
type MoveData struct {
	Name      string          `json:"name"`
	Num       int             `json:"num"`
	BasePower *uint16         `json:"basePower"`
	Accuracy  json.RawMessage `json:"accuracy"` // bool(true) or number
	PP        *uint8          `json:"pp"`
	Priority  *int8           `json:"priority"`
	Category  *string         `json:"category"`
	Type      *string         `json:"type"`
	Flags     map[string]int  `json:"flags"`
	Terrain   *string         `json:"terrain"`

	Recoil          json.RawMessage `json:"recoil"`
	HasCrashDamage  *bool           `json:"hasCrashDamage"`
	MindBlownRecoil *bool           `json:"mindBlownRecoil"`

	Secondary     json.RawMessage `json:"secondary"`
	Secondaries   json.RawMessage `json:"secondaries"`
	HasSheerForce *bool           `json:"hasSheerForce"`
}

// AbilityData is the JSON shape of one entry in Showdown's abilities.json.
type AbilityData struct {
	Name string `json:"name"`
	Num  int    `json:"num"`
}

// TypeChartEntry is the JSON shape of one entry in Showdown's typechart.json.
type TypeChartEntry struct {
	DamageTaken map[string]uint8 `json:"damageTaken"`
}

// NatureData is the JSON shape of one entry in Showdown's natures.json.
type NatureData struct {
	Name  string  `json:"name"`
	Plus  *string `json:"plus"`
	Minus *string `json:"minus"`
}

// BaseStats is the JSON shape of a pokedex entry's baseStats object.
type BaseStats struct {
	HP  uint8 `json:"hp"`
	Atk uint8 `json:"atk"`
	Def uint8 `json:"def"`
	SpA uint8 `json:"spa"`
	SpD uint8 `json:"spd"`
	Spe uint8 `json:"spe"`
}

// PokedexEntry is the JSON shape of one entry in Showdown's pokedex.json.
type PokedexEntry struct {
	Num        *int16            `json:"num"`
	Name       string            `json:"name"`
	Types      []string          `json:"types"`
	BaseStats  *BaseStats        `json:"baseStats"`
	Abilities  map[string]string `json:"abilities"`
	WeightKG   float64           `json:"weightkg"`
	BaseSpecie *string           `json:"baseSpecies"`
}

// Fling is the JSON shape of an item's fling sub-object.
type Fling struct {
	BasePower uint8 `json:"basePower"`
}

// ItemData is the JSON shape of one entry in Showdown's items.json.
type ItemData struct {
	Name    string  `json:"name"`
	Num     *int16  `json:"num"`
	Fling   *Fling  `json:"fling"`
	OnPlate *string `json:"onPlate"`
}
