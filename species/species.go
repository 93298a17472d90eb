// Package species defines the species identifier enum and the static
// Pokédex table: base stats, types, weight, ability slots, gender ratio,
// and the handful of per-species mechanical flags the battle state and
// builder consult (most notably Shedinja's forced 1 HP).
package species

import (
	"strings"

	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/types"
)

// SpeciesID is a small-integer identifier in this table's declaration
// order (not National Dex order).
type SpeciesID uint16

const (
	Bulbasaur SpeciesID = iota
	Charizard
	Gyarados
	Pikachu
	Gengar
	Alakazam
	Machamp
	Tyranitar
	Garchomp
	Metagross
	Dragonite
	Lucario
	Greninja
	Kangaskhan
	KangaskhanMega
	Diggersby
	Ferrothorn
	Skarmory
	Toxapex
	Corviknight
	Dracovish
	Castform
	Shedinja
	Eevee
	Blissey
	Chansey
	Magnezone
	Rotom
	Landorus
	Heatran
	Cubone
	Marowak
	Clamperl
	Latios
	Latias
	Ditto
	Count
)

var names = [Count]string{
	Bulbasaur: "Bulbasaur", Charizard: "Charizard", Gyarados: "Gyarados", Pikachu: "Pikachu",
	Gengar: "Gengar", Alakazam: "Alakazam", Machamp: "Machamp", Tyranitar: "Tyranitar",
	Garchomp: "Garchomp", Metagross: "Metagross", Dragonite: "Dragonite", Lucario: "Lucario",
	Greninja: "Greninja", Kangaskhan: "Kangaskhan", KangaskhanMega: "Kangaskhan-Mega",
	Diggersby: "Diggersby", Ferrothorn: "Ferrothorn", Skarmory: "Skarmory", Toxapex: "Toxapex",
	Corviknight: "Corviknight", Dracovish: "Dracovish", Castform: "Castform", Shedinja: "Shedinja",
	Eevee: "Eevee", Blissey: "Blissey", Chansey: "Chansey", Magnezone: "Magnezone", Rotom: "Rotom",
	Landorus: "Landorus", Heatran: "Heatran", Cubone: "Cubone", Marowak: "Marowak",
	Clamperl: "Clamperl", Latios: "Latios", Latias: "Latias", Ditto: "Ditto",
}

// GenderRatio mirrors original_source's codegen collapse of Showdown's
// per-species gender fields into a small fixed enum rather than carrying
// a float through the static table.
type GenderRatio uint8

const (
	SevenToOne GenderRatio = iota // 87.5% male
	ThreeToOne                    // 75% male
	OneToOne                      // 50% male
	OneToThree                    // 25% male
	AlwaysFemale
	AlwaysMale
	Genderless
)

// Flags holds the rare per-species mechanical overrides that do not fit
// anywhere else in the static table.
type Flags uint8

const (
	// ForceOneHP mirrors Shedinja's "always has 1 max HP regardless of the
	// HP stat formula" rule (original_source: species.rs's single
	// hardcoded flag bit, "Shedinja always has 1 HP").
	ForceOneHP Flags = 1 << iota
	// NFE marks a species that has a further evolution available, the
	// condition Eviolite's Defense/Special Defense boost is gated on
	// (original_source: items/implementations.rs's
	// on_modify_defense_eviolite checking species.flags & FLAG_NFE).
	NFE
)

// BaseStats is the six-stat spread in game-canonical order.
type BaseStats struct {
	HP, Atk, Def, SpA, SpD, Spe uint8
}

// Abilities holds up to three ability slots: two regular slots and one
// hidden-ability slot. A zero value (abilities.None) means the slot does
// not exist for this species.
type Abilities struct {
	Slot0, Slot1, Hidden abilities.AbilityID
}

// Species is the static, generation-independent data for one species or
// forme. WeightKG10 is fixed-point kilograms * 10, matching
// original_source's `(weightkg * 10.0).round() as u16` so low-precision
// weight comparisons (Grass Knot, Heavy Slam, Heat Crash) stay exact
// integer arithmetic end to end.
type Species struct {
	Name       string
	Stats      BaseStats
	Type1      types.Type
	Type2      types.Type // equals Type1 for a monotype species
	WeightKG10 uint16
	Abilities  Abilities
	Gender     GenderRatio
	BaseForme  SpeciesID // self for a base forme; see HasBaseForme
	HasForme   bool
	Flags      Flags
}

var data = [Count]Species{
	Bulbasaur:      {Name: "Bulbasaur", Stats: BaseStats{45, 49, 49, 65, 65, 45}, Type1: types.Grass, Type2: types.Poison, WeightKG10: 69, Gender: ThreeToOne},
	Charizard:      {Name: "Charizard", Stats: BaseStats{78, 84, 78, 109, 85, 100}, Type1: types.Fire, Type2: types.Flying, WeightKG10: 905, Gender: ThreeToOne, Abilities: Abilities{Slot0: abilities.None, Hidden: abilities.None}},
	Gyarados:       {Name: "Gyarados", Stats: BaseStats{95, 125, 79, 60, 100, 81}, Type1: types.Water, Type2: types.Flying, WeightKG10: 2350, Gender: ThreeToOne, Abilities: Abilities{Slot0: abilities.Intimidate}},
	Pikachu:        {Name: "Pikachu", Stats: BaseStats{35, 55, 40, 50, 50, 90}, Type1: types.Electric, Type2: types.Electric, WeightKG10: 60, Gender: OneToOne, Flags: NFE},
	Gengar:         {Name: "Gengar", Stats: BaseStats{60, 65, 60, 130, 75, 110}, Type1: types.Ghost, Type2: types.Poison, WeightKG10: 405, Gender: OneToOne},
	Alakazam:       {Name: "Alakazam", Stats: BaseStats{55, 50, 45, 135, 95, 120}, Type1: types.Psychic, Type2: types.Psychic, WeightKG10: 480, Gender: ThreeToOne},
	Machamp:        {Name: "Machamp", Stats: BaseStats{90, 130, 80, 65, 85, 55}, Type1: types.Fighting, Type2: types.Fighting, WeightKG10: 1300, Gender: ThreeToOne, Abilities: Abilities{Slot0: abilities.Guts}},
	Tyranitar:      {Name: "Tyranitar", Stats: BaseStats{100, 134, 110, 95, 100, 61}, Type1: types.Rock, Type2: types.Dark, WeightKG10: 2020, Gender: OneToOne, Abilities: Abilities{Slot0: abilities.SandStream}},
	Garchomp:       {Name: "Garchomp", Stats: BaseStats{108, 130, 95, 80, 85, 102}, Type1: types.Dragon, Type2: types.Ground, WeightKG10: 950, Gender: OneToOne},
	Metagross:      {Name: "Metagross", Stats: BaseStats{80, 135, 130, 95, 90, 70}, Type1: types.Steel, Type2: types.Psychic, WeightKG10: 5500, Gender: Genderless},
	Dragonite:      {Name: "Dragonite", Stats: BaseStats{91, 134, 95, 100, 100, 80}, Type1: types.Dragon, Type2: types.Flying, WeightKG10: 2100, Gender: OneToOne},
	Lucario:        {Name: "Lucario", Stats: BaseStats{70, 110, 70, 115, 70, 90}, Type1: types.Fighting, Type2: types.Steel, WeightKG10: 540, Gender: ThreeToOne},
	Greninja:       {Name: "Greninja", Stats: BaseStats{72, 95, 67, 103, 71, 122}, Type1: types.Water, Type2: types.Dark, WeightKG10: 400, Gender: ThreeToOne},
	Kangaskhan:     {Name: "Kangaskhan", Stats: BaseStats{105, 95, 80, 40, 80, 90}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 800, Gender: AlwaysFemale, HasForme: true},
	KangaskhanMega: {Name: "Kangaskhan-Mega", Stats: BaseStats{105, 125, 100, 60, 100, 100}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 1000, Gender: AlwaysFemale, Abilities: Abilities{Slot0: abilities.ParentalBond}, BaseForme: Kangaskhan},
	Diggersby:      {Name: "Diggersby", Stats: BaseStats{85, 56, 77, 50, 77, 78}, Type1: types.Normal, Type2: types.Ground, WeightKG10: 424, Gender: OneToOne, Abilities: Abilities{Slot0: abilities.HugePower}},
	Ferrothorn:     {Name: "Ferrothorn", Stats: BaseStats{74, 94, 131, 54, 116, 20}, Type1: types.Grass, Type2: types.Steel, WeightKG10: 1100, Gender: OneToOne},
	Skarmory:       {Name: "Skarmory", Stats: BaseStats{65, 80, 140, 40, 70, 70}, Type1: types.Steel, Type2: types.Flying, WeightKG10: 505, Gender: ThreeToOne},
	Toxapex:        {Name: "Toxapex", Stats: BaseStats{50, 63, 152, 53, 142, 35}, Type1: types.Poison, Type2: types.Water, WeightKG10: 145, Gender: OneToOne},
	Corviknight:    {Name: "Corviknight", Stats: BaseStats{98, 87, 105, 53, 85, 67}, Type1: types.Flying, Type2: types.Steel, WeightKG10: 750, Gender: OneToOne},
	Dracovish:      {Name: "Dracovish", Stats: BaseStats{90, 90, 100, 70, 80, 75}, Type1: types.Water, Type2: types.Dragon, WeightKG10: 2150, Gender: Genderless},
	Castform:       {Name: "Castform", Stats: BaseStats{70, 70, 70, 70, 70, 70}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 8, Gender: OneToOne, Abilities: Abilities{Slot0: abilities.Forecast}},
	Shedinja:       {Name: "Shedinja", Stats: BaseStats{1, 90, 45, 30, 30, 40}, Type1: types.Bug, Type2: types.Ghost, WeightKG10: 12, Gender: Genderless, Flags: ForceOneHP},
	Eevee:          {Name: "Eevee", Stats: BaseStats{55, 55, 50, 45, 65, 55}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 65, Gender: ThreeToOne},
	Blissey:        {Name: "Blissey", Stats: BaseStats{255, 10, 10, 75, 135, 55}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 468, Gender: AlwaysFemale},
	Chansey:        {Name: "Chansey", Stats: BaseStats{250, 5, 5, 35, 105, 50}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 346, Gender: AlwaysFemale, Abilities: Abilities{Hidden: abilities.None}, Flags: NFE},
	Magnezone:      {Name: "Magnezone", Stats: BaseStats{70, 70, 115, 130, 90, 60}, Type1: types.Electric, Type2: types.Steel, WeightKG10: 1800, Gender: Genderless},
	Rotom:          {Name: "Rotom", Stats: BaseStats{50, 50, 77, 95, 77, 91}, Type1: types.Electric, Type2: types.Ghost, WeightKG10: 3, Gender: Genderless},
	Landorus:       {Name: "Landorus", Stats: BaseStats{89, 125, 90, 115, 80, 101}, Type1: types.Ground, Type2: types.Flying, WeightKG10: 680, Gender: ThreeToOne},
	Heatran:        {Name: "Heatran", Stats: BaseStats{91, 90, 106, 130, 106, 77}, Type1: types.Fire, Type2: types.Steel, WeightKG10: 4300, Gender: Genderless, Abilities: Abilities{Slot0: abilities.None}},
	Cubone:         {Name: "Cubone", Stats: BaseStats{50, 50, 95, 40, 50, 35}, Type1: types.Ground, Type2: types.Ground, WeightKG10: 65, Gender: OneToOne, Flags: NFE},
	Marowak:        {Name: "Marowak", Stats: BaseStats{60, 80, 110, 50, 80, 45}, Type1: types.Ground, Type2: types.Ground, WeightKG10: 450, Gender: OneToOne},
	Clamperl:       {Name: "Clamperl", Stats: BaseStats{35, 64, 85, 74, 55, 32}, Type1: types.Water, Type2: types.Water, WeightKG10: 525, Gender: OneToOne, Flags: NFE},
	Latios:         {Name: "Latios", Stats: BaseStats{80, 90, 80, 130, 110, 110}, Type1: types.Dragon, Type2: types.Psychic, WeightKG10: 600, Gender: AlwaysMale},
	Latias:         {Name: "Latias", Stats: BaseStats{80, 80, 90, 110, 130, 110}, Type1: types.Dragon, Type2: types.Psychic, WeightKG10: 400, Gender: AlwaysFemale},
	Ditto:          {Name: "Ditto", Stats: BaseStats{48, 48, 48, 48, 48, 48}, Type1: types.Normal, Type2: types.Normal, WeightKG10: 40, Gender: Genderless, Abilities: Abilities{Slot0: abilities.None}},
}

// Data returns the static species data for id.
func Data(id SpeciesID) Species {
	if id >= Count {
		return Species{}
	}
	return data[id]
}

func (id SpeciesID) String() string {
	if id >= Count {
		return "Unknown"
	}
	return names[id]
}

var byName map[string]SpeciesID

func init() {
	byName = make(map[string]SpeciesID, Count)
	for i := SpeciesID(0); i < Count; i++ {
		byName[normalize(names[i])] = i
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s))
}

// FromName resolves a species by its canonical or loosely-punctuated name.
func FromName(name string) (SpeciesID, bool) {
	id, ok := byName[normalize(name)]
	return id, ok
}
