// Package abilities defines the ability identifier enum and the static
// breakability flag the Mold Breaker family checks before dispatching
// on_type_immunity / stat-modifying hooks.
package abilities

import "strings"

// AbilityID is a small-integer identifier. None is the zero value.
type AbilityID uint16

const (
	None AbilityID = iota
	Intimidate
	Drizzle
	Drought
	SandStream
	SnowWarning
	ElectricSurge
	GrassySurge
	MistySurge
	PsychicSurge
	Prankster
	GaleWings
	Triage
	Levitate
	FlashFire
	WaterAbsorb
	VoltAbsorb
	StormDrain
	LightningRod
	SapSipper
	MotorDrive
	DrySkin
	EarthEater
	HugePower
	PurePower
	Hustle
	Guts
	GorillaTactics
	Defeatist
	Technician
	IronFist
	ToughClaws
	Reckless
	SheerForce
	Neuroforce
	MegaLauncher
	Aerilate
	Pixilate
	Refrigerate
	Galvanize
	Normalize
	Liquidvoice
	Adaptability
	Moldbreaker
	Teravolt
	Turboblaze
	Multiscale
	ShadowShield
	Filter
	SolidRock
	PrismArmor
	Fluffy
	IceScales
	FurCoat
	MarvelScale
	Chlorophyll
	SwiftSwim
	SandRush
	SlushRush
	SurgeSurfer
	MagicGuard
	Immunity
	Insomnia
	Limber
	Scrappy
	Mindseye
	Forecast
	Multitype
	ParentalBond
	Count
)

var names = [Count]string{
	None: "(none)", Intimidate: "Intimidate", Drizzle: "Drizzle", Drought: "Drought",
	SandStream: "Sand Stream", SnowWarning: "Snow Warning", ElectricSurge: "Electric Surge",
	GrassySurge: "Grassy Surge", MistySurge: "Misty Surge", PsychicSurge: "Psychic Surge",
	Prankster: "Prankster", GaleWings: "Gale Wings", Triage: "Triage", Levitate: "Levitate",
	FlashFire: "Flash Fire", WaterAbsorb: "Water Absorb", VoltAbsorb: "Volt Absorb",
	StormDrain: "Storm Drain", LightningRod: "Lightning Rod", SapSipper: "Sap Sipper",
	MotorDrive: "Motor Drive", DrySkin: "Dry Skin", EarthEater: "Earth Eater",
	HugePower: "Huge Power", PurePower: "Pure Power", Hustle: "Hustle", Guts: "Guts",
	GorillaTactics: "Gorilla Tactics", Defeatist: "Defeatist", Technician: "Technician",
	IronFist: "Iron Fist", ToughClaws: "Tough Claws", Reckless: "Reckless",
	SheerForce: "Sheer Force", Neuroforce: "Neuroforce", MegaLauncher: "Mega Launcher",
	Aerilate: "Aerilate", Pixilate: "Pixilate", Refrigerate: "Refrigerate",
	Galvanize: "Galvanize", Normalize: "Normalize", Liquidvoice: "Liquid Voice",
	Adaptability: "Adaptability", Moldbreaker: "Mold Breaker", Teravolt: "Teravolt",
	Turboblaze: "Turboblaze", Multiscale: "Multiscale", ShadowShield: "Shadow Shield",
	Filter: "Filter", SolidRock: "Solid Rock", PrismArmor: "Prism Armor", Fluffy: "Fluffy",
	IceScales: "Ice Scales", FurCoat: "Fur Coat", MarvelScale: "Marvel Scale",
	Chlorophyll: "Chlorophyll", SwiftSwim: "Swift Swim", SandRush: "Sand Rush",
	SlushRush: "Slush Rush", SurgeSurfer: "Surge Surfer", MagicGuard: "Magic Guard",
	Immunity: "Immunity", Insomnia: "Insomnia", Limber: "Limber", Scrappy: "Scrappy",
	Mindseye: "Mind's Eye", Forecast: "Forecast", Multitype: "Multitype",
	ParentalBond: "Parental Bond",
}

// Breakable reports whether this ability is suppressed by Mold
// Breaker/Teravolt/Turboblaze (spec.md §4.4: abilities that block type
// immunity or stat-modifying hooks, not the whole ability). Weather- and
// terrain-setting abilities, stat-boost abilities unrelated to matchup
// immunity, and cosmetic abilities are never "broken" because nothing
// about them is an immunity or a damage-reducing defensive hook.
// Shadow Shield and Prism Armor are explicitly exempt per spec.md §8's
// invariant ("Mold Breaker ... never Shadow Shield / Prism Armor / Full
// Metal Body") even though they sit in the same "defensive final-mod
// ability" family as Multiscale and Filter/Solid Rock, which remain
// breakable.
var breakable = map[AbilityID]bool{
	Levitate:     true,
	FlashFire:    true,
	WaterAbsorb:  true,
	VoltAbsorb:   true,
	StormDrain:   true,
	LightningRod: true,
	SapSipper:    true,
	MotorDrive:   true,
	DrySkin:      true,
	EarthEater:   true,
	Multiscale:   true,
	Filter:       true,
	SolidRock:    true,
	Fluffy:       true,
	IceScales:    true,
	FurCoat:      true,
	MarvelScale:  true,
}

// IsBreakable reports whether Mold Breaker, Teravolt, or Turboblaze on the
// attacker suppresses this ability on the defender for the duration of
// the current hit.
func (id AbilityID) IsBreakable() bool {
	return breakable[id]
}

func (id AbilityID) String() string {
	if id >= Count {
		return "Unknown"
	}
	return names[id]
}

var byName map[string]AbilityID

func init() {
	byName = make(map[string]AbilityID, Count)
	for i := AbilityID(0); i < Count; i++ {
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

// FromName resolves an ability by its canonical or loosely-punctuated name.
func FromName(name string) (AbilityID, bool) {
	id, ok := byName[normalize(name)]
	return id, ok
}

// IsInWeatherSettingFamily reports whether id sets weather on switch-in.
func IsInWeatherSettingFamily(id AbilityID) bool {
	switch id {
	case Drizzle, Drought, SandStream, SnowWarning:
		return true
	default:
		return false
	}
}

// IsInTerrainSettingFamily reports whether id sets terrain on switch-in.
func IsInTerrainSettingFamily(id AbilityID) bool {
	switch id {
	case ElectricSurge, GrassySurge, MistySurge, PsychicSurge:
		return true
	default:
		return false
	}
}
