// Package moveset defines the move identifier enum, the static move table,
// and the codegen-style flag bitset every generation consults when
// resolving base power, category, and special-case dispatch.
package moveset

import (
	"strings"

	"github.com/nicoberrocal/pokecalc/types"
)

// Category is a move's damage class.
type Category uint8

const (
	Status Category = iota
	Physical
	Special
)

// Flags is a codegen-style bitset. Most bits mirror a PokemonShowdown flag
// key verbatim (Contact, Protect, Sound, ...); the last four are
// synthesized by codegen rather than copied from a JSON flag (see
// DESIGN.md and original_source/crates/poke_engine_codegen/src/moves.rs).
type Flags uint32

const (
	Contact Flags = 1 << iota
	Protect
	MirrorMove
	Sound
	Punch
	BiteFlag
	Pulse
	Bullet
	Dance
	Powder
	Reflectable
	Heal
	Authentic
	Slicing
	Wind
	// BreaksScreens, VariablePower, Recoil, and HasSecondaryEffects are not
	// present as Showdown flag keys; codegen derives them from other move
	// fields (a hardcoded name list, a recoil/crash field, a
	// secondary-effect field) so that ability hooks (Technician-adjacent
	// Sheer Force, Reckless, ...) have a single bit to test.
	BreaksScreens
	VariablePower
	Recoil
	HasSecondaryEffects
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// MoveID is a small-integer identifier in this table's declaration order
// (not game-index order).
type MoveID uint16

const (
	Tackle MoveID = iota
	Earthquake
	Thunderbolt
	BodyPress
	Surf
	IceBeam
	CloseCombat
	Psychic
	Flamethrower
	KnockOff
	UTurn
	StoneEdge
	DracoMeteor
	Moonblast
	PlayRough
	ShadowBall
	Bite
	Crunch
	Return
	Frustration
	DoubleEdge
	SeedBomb
	Outrage
	IceFang
	Waterfall
	Hex
	Venoshock
	Brine
	FocusBlast
	Struggle
	WeatherBall
	FlyingPress
	ThousandArrows
	FreezeDry
	NightShade
	SeismicToss
	DragonRage
	SonicBoom
	SuperFang
	NaturesMadness
	GuardianOfAlola
	Ruination
	FinalGambit
	Endeavor
	Eruption
	WaterSpout
	LowKick
	GrassKnot
	HeavySlam
	HeatCrash
	ElectroBall
	GyroBall
	Flail
	Reversal
	Count
)

var names = [Count]string{
	Tackle: "Tackle", Earthquake: "Earthquake", Thunderbolt: "Thunderbolt", BodyPress: "Body Press",
	Surf: "Surf", IceBeam: "Ice Beam", CloseCombat: "Close Combat", Psychic: "Psychic",
	Flamethrower: "Flamethrower", KnockOff: "Knock Off", UTurn: "U-turn", StoneEdge: "Stone Edge",
	DracoMeteor: "Draco Meteor", Moonblast: "Moonblast", PlayRough: "Play Rough", ShadowBall: "Shadow Ball",
	Bite: "Bite", Crunch: "Crunch", Return: "Return", Frustration: "Frustration",
	DoubleEdge: "Double-Edge", SeedBomb: "Seed Bomb", Outrage: "Outrage", IceFang: "Ice Fang",
	Waterfall: "Waterfall", Hex: "Hex", Venoshock: "Venoshock", Brine: "Brine",
	FocusBlast: "Focus Blast", Struggle: "Struggle", WeatherBall: "Weather Ball",
	FlyingPress: "Flying Press", ThousandArrows: "Thousand Arrows", FreezeDry: "Freeze-Dry",
	NightShade: "Night Shade", SeismicToss: "Seismic Toss", DragonRage: "Dragon Rage",
	SonicBoom: "Sonic Boom", SuperFang: "Super Fang", NaturesMadness: "Nature's Madness",
	GuardianOfAlola: "Guardian of Alola", Ruination: "Ruination", FinalGambit: "Final Gambit",
	Endeavor: "Endeavor", Eruption: "Eruption", WaterSpout: "Water Spout", LowKick: "Low Kick",
	GrassKnot: "Grass Knot", HeavySlam: "Heavy Slam", HeatCrash: "Heat Crash",
	ElectroBall: "Electro Ball", GyroBall: "Gyro Ball", Flail: "Flail", Reversal: "Reversal",
}

// Move is the static, generation-independent data for one move. Field
// values correspond directly to original_source's codegen MoveData ->
// Move transform (base_power, accuracy [0 == always hits], pp, priority,
// category, primary type, flags).
type Move struct {
	Name     string
	Type     types.Type
	Category Category
	Power    uint16
	Accuracy uint8
	PP       uint8
	Priority int8
	Flags    Flags
}

var data = [Count]Move{
	Tackle:          {Name: "Tackle", Type: types.Normal, Category: Physical, Power: 40, Accuracy: 100, PP: 35, Flags: Contact},
	Earthquake:      {Name: "Earthquake", Type: types.Ground, Category: Physical, Power: 100, Accuracy: 100, PP: 10},
	Thunderbolt:     {Name: "Thunderbolt", Type: types.Electric, Category: Special, Power: 90, Accuracy: 100, PP: 15, Flags: HasSecondaryEffects},
	BodyPress:       {Name: "Body Press", Type: types.Fighting, Category: Physical, Power: 80, Accuracy: 100, PP: 10, Flags: Contact},
	Surf:            {Name: "Surf", Type: types.Water, Category: Special, Power: 90, Accuracy: 100, PP: 15},
	IceBeam:         {Name: "Ice Beam", Type: types.Ice, Category: Special, Power: 90, Accuracy: 100, PP: 10, Flags: HasSecondaryEffects},
	CloseCombat:     {Name: "Close Combat", Type: types.Fighting, Category: Physical, Power: 120, Accuracy: 100, PP: 5, Flags: Contact | HasSecondaryEffects},
	Psychic:         {Name: "Psychic", Type: types.Psychic, Category: Special, Power: 90, Accuracy: 100, PP: 10, Flags: HasSecondaryEffects},
	Flamethrower:    {Name: "Flamethrower", Type: types.Fire, Category: Special, Power: 90, Accuracy: 100, PP: 15, Flags: HasSecondaryEffects},
	KnockOff:        {Name: "Knock Off", Type: types.Dark, Category: Physical, Power: 65, Accuracy: 100, PP: 20, Flags: Contact | HasSecondaryEffects},
	UTurn:           {Name: "U-turn", Type: types.Bug, Category: Physical, Power: 70, Accuracy: 100, PP: 20, Flags: Contact},
	StoneEdge:       {Name: "Stone Edge", Type: types.Rock, Category: Physical, Power: 100, Accuracy: 80, PP: 5},
	DracoMeteor:     {Name: "Draco Meteor", Type: types.Dragon, Category: Special, Power: 130, Accuracy: 90, PP: 5},
	Moonblast:       {Name: "Moonblast", Type: types.Fairy, Category: Special, Power: 95, Accuracy: 100, PP: 15, Flags: HasSecondaryEffects},
	PlayRough:       {Name: "Play Rough", Type: types.Fairy, Category: Physical, Power: 90, Accuracy: 90, PP: 10, Flags: Contact | HasSecondaryEffects},
	ShadowBall:      {Name: "Shadow Ball", Type: types.Ghost, Category: Special, Power: 80, Accuracy: 100, PP: 15, Flags: HasSecondaryEffects},
	Bite:            {Name: "Bite", Type: types.Dark, Category: Physical, Power: 60, Accuracy: 100, PP: 25, Flags: Contact | BiteFlag | HasSecondaryEffects},
	Crunch:          {Name: "Crunch", Type: types.Dark, Category: Physical, Power: 80, Accuracy: 100, PP: 15, Flags: Contact | BiteFlag | HasSecondaryEffects},
	Return:          {Name: "Return", Type: types.Normal, Category: Physical, Power: 102, Accuracy: 100, PP: 20, Flags: Contact | VariablePower},
	Frustration:     {Name: "Frustration", Type: types.Normal, Category: Physical, Power: 102, Accuracy: 100, PP: 20, Flags: Contact | VariablePower},
	DoubleEdge:      {Name: "Double-Edge", Type: types.Normal, Category: Physical, Power: 120, Accuracy: 100, PP: 15, Flags: Contact | Recoil},
	SeedBomb:        {Name: "Seed Bomb", Type: types.Grass, Category: Physical, Power: 80, Accuracy: 100, PP: 15, Flags: Bullet},
	Outrage:         {Name: "Outrage", Type: types.Dragon, Category: Physical, Power: 120, Accuracy: 100, PP: 10, Flags: Contact},
	IceFang:         {Name: "Ice Fang", Type: types.Ice, Category: Physical, Power: 65, Accuracy: 95, PP: 15, Flags: Contact | BiteFlag | HasSecondaryEffects},
	Waterfall:       {Name: "Waterfall", Type: types.Water, Category: Physical, Power: 80, Accuracy: 100, PP: 15, Flags: Contact | HasSecondaryEffects},
	Hex:             {Name: "Hex", Type: types.Ghost, Category: Special, Power: 65, Accuracy: 100, PP: 10, Flags: VariablePower},
	Venoshock:       {Name: "Venoshock", Type: types.Poison, Category: Special, Power: 65, Accuracy: 100, PP: 10, Flags: VariablePower},
	Brine:           {Name: "Brine", Type: types.Water, Category: Special, Power: 65, Accuracy: 100, PP: 10, Flags: VariablePower},
	FocusBlast:      {Name: "Focus Blast", Type: types.Fighting, Category: Special, Power: 120, Accuracy: 70, PP: 5, Flags: Bullet | HasSecondaryEffects},
	Struggle:        {Name: "Struggle", Type: types.Normal, Category: Physical, Power: 50, Accuracy: 100, PP: 1, Flags: Contact | Recoil},
	WeatherBall:     {Name: "Weather Ball", Type: types.Normal, Category: Special, Power: 50, Accuracy: 100, PP: 10, Flags: VariablePower},
	FlyingPress:     {Name: "Flying Press", Type: types.Fighting, Category: Physical, Power: 100, Accuracy: 95, PP: 10, Flags: Contact},
	ThousandArrows:  {Name: "Thousand Arrows", Type: types.Ground, Category: Physical, Power: 90, Accuracy: 100, PP: 10, Flags: Contact},
	FreezeDry:       {Name: "Freeze-Dry", Type: types.Ice, Category: Special, Power: 70, Accuracy: 100, PP: 20, Flags: HasSecondaryEffects},
	NightShade:      {Name: "Night Shade", Type: types.Ghost, Category: Special, Power: 0, Accuracy: 100, PP: 15},
	SeismicToss:     {Name: "Seismic Toss", Type: types.Fighting, Category: Physical, Power: 0, Accuracy: 100, PP: 20, Flags: Contact},
	DragonRage:      {Name: "Dragon Rage", Type: types.Dragon, Category: Special, Power: 0, Accuracy: 100, PP: 10},
	SonicBoom:       {Name: "Sonic Boom", Type: types.Normal, Category: Special, Power: 0, Accuracy: 90, PP: 20},
	SuperFang:       {Name: "Super Fang", Type: types.Normal, Category: Physical, Power: 0, Accuracy: 90, PP: 10, Flags: Contact},
	NaturesMadness:  {Name: "Nature's Madness", Type: types.Fairy, Category: Special, Power: 0, Accuracy: 90, PP: 10},
	GuardianOfAlola: {Name: "Guardian of Alola", Type: types.Fairy, Category: Special, Power: 0, Accuracy: 100, PP: 1},
	Ruination:       {Name: "Ruination", Type: types.Dark, Category: Special, Power: 0, Accuracy: 100, PP: 10},
	FinalGambit:     {Name: "Final Gambit", Type: types.Fighting, Category: Special, Power: 0, Accuracy: 100, PP: 5},
	Endeavor:        {Name: "Endeavor", Type: types.Normal, Category: Physical, Power: 0, Accuracy: 100, PP: 5, Flags: Contact},
	Eruption:        {Name: "Eruption", Type: types.Fire, Category: Special, Power: 150, Accuracy: 100, PP: 5, Flags: VariablePower},
	WaterSpout:      {Name: "Water Spout", Type: types.Water, Category: Special, Power: 150, Accuracy: 100, PP: 5, Flags: VariablePower},
	LowKick:         {Name: "Low Kick", Type: types.Fighting, Category: Physical, Power: 0, Accuracy: 100, PP: 20, Flags: Contact | VariablePower},
	GrassKnot:       {Name: "Grass Knot", Type: types.Grass, Category: Special, Power: 0, Accuracy: 100, PP: 20, Flags: VariablePower},
	HeavySlam:       {Name: "Heavy Slam", Type: types.Steel, Category: Physical, Power: 0, Accuracy: 100, PP: 10, Flags: Contact | VariablePower},
	HeatCrash:       {Name: "Heat Crash", Type: types.Fire, Category: Physical, Power: 0, Accuracy: 100, PP: 10, Flags: Contact | VariablePower},
	ElectroBall:     {Name: "Electro Ball", Type: types.Electric, Category: Special, Power: 0, Accuracy: 100, PP: 10, Flags: VariablePower},
	GyroBall:        {Name: "Gyro Ball", Type: types.Steel, Category: Physical, Power: 0, Accuracy: 100, PP: 5, Flags: Contact | VariablePower},
	Flail:           {Name: "Flail", Type: types.Normal, Category: Physical, Power: 0, Accuracy: 100, PP: 15, Flags: Contact | VariablePower},
	Reversal:        {Name: "Reversal", Type: types.Fighting, Category: Physical, Power: 0, Accuracy: 100, PP: 15, Flags: Contact | VariablePower},
}

// Data returns the static move data for id. Callers in the damage package
// never mutate the returned value; Go passes structs by value here
// on purpose, so there is nothing to mutate through anyway.
func Data(id MoveID) Move {
	if id >= Count {
		return Move{}
	}
	return data[id]
}

func (id MoveID) String() string {
	if id >= Count {
		return "Unknown"
	}
	return names[id]
}

var byName map[string]MoveID

func init() {
	byName = make(map[string]MoveID, Count)
	for i := MoveID(0); i < Count; i++ {
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

// FromName resolves a move by its canonical or loosely-punctuated name.
func FromName(name string) (MoveID, bool) {
	id, ok := byName[normalize(name)]
	return id, ok
}
