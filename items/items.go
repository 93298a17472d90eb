// Package items defines the held-item identifier enum and the static item
// table the effect registry's item hooks index into.
package items

import "strings"

// ItemID is a small-integer identifier. None is the zero value: "no item
// held", distinct from every real item, matching the way battle.BattleState
// represents an empty slot.
type ItemID uint16

const (
	None ItemID = iota
	Leftovers
	ChoiceBand
	ChoiceSpecs
	ChoiceScarf
	LifeOrb
	ExpertBelt
	AssaultVest
	Eviolite
	LightBall
	ThickClub
	DeepSeaTooth
	DeepSeaScale
	SoulDew
	MetalPowder
	IronBall
	AirBalloon
	Charcoal
	MysticWater
	MiracleSeed
	Magnet
	NeverMeltIce
	HeavyDutyBoots
	RingTarget
	Count
)

var names = [Count]string{
	None: "(none)", Leftovers: "Leftovers", ChoiceBand: "Choice Band", ChoiceSpecs: "Choice Specs",
	ChoiceScarf: "Choice Scarf", LifeOrb: "Life Orb", ExpertBelt: "Expert Belt",
	AssaultVest: "Assault Vest", Eviolite: "Eviolite", LightBall: "Light Ball",
	ThickClub: "Thick Club", DeepSeaTooth: "Deep Sea Tooth", DeepSeaScale: "Deep Sea Scale",
	SoulDew: "Soul Dew", MetalPowder: "Metal Powder", IronBall: "Iron Ball",
	AirBalloon: "Air Balloon", Charcoal: "Charcoal", MysticWater: "Mystic Water",
	MiracleSeed: "Miracle Seed", Magnet: "Magnet", NeverMeltIce: "Never-Melt Ice",
	HeavyDutyBoots: "Heavy-Duty Boots", RingTarget: "Ring Target",
}

// Item is the static, generation-independent data for one held item.
// FlingPower mirrors original_source's models.rs Fling.base_power
// (Option<Fling> collapses to 0 when absent, matching Showdown's own
// "no fling data" representation).
type Item struct {
	Name        string
	FlingPower  uint8
	Unremovable bool // Knock Off cannot remove this item (e.g. mega stones, z-crystals, primal orbs)
}

var data = [Count]Item{
	None:           {Name: "(none)"},
	Leftovers:      {Name: "Leftovers", FlingPower: 10},
	ChoiceBand:     {Name: "Choice Band", FlingPower: 10},
	ChoiceSpecs:    {Name: "Choice Specs", FlingPower: 10},
	ChoiceScarf:    {Name: "Choice Scarf", FlingPower: 10},
	LifeOrb:        {Name: "Life Orb", FlingPower: 30},
	ExpertBelt:     {Name: "Expert Belt", FlingPower: 10},
	AssaultVest:    {Name: "Assault Vest", FlingPower: 10},
	Eviolite:       {Name: "Eviolite", FlingPower: 40},
	LightBall:      {Name: "Light Ball", FlingPower: 30, Unremovable: false},
	ThickClub:      {Name: "Thick Club", FlingPower: 90},
	DeepSeaTooth:   {Name: "Deep Sea Tooth", FlingPower: 90},
	DeepSeaScale:   {Name: "Deep Sea Scale", FlingPower: 30},
	SoulDew:        {Name: "Soul Dew", FlingPower: 30},
	MetalPowder:    {Name: "Metal Powder", FlingPower: 10},
	IronBall:       {Name: "Iron Ball", FlingPower: 130},
	AirBalloon:     {Name: "Air Balloon", FlingPower: 10},
	Charcoal:       {Name: "Charcoal", FlingPower: 30},
	MysticWater:    {Name: "Mystic Water", FlingPower: 30},
	MiracleSeed:    {Name: "Miracle Seed", FlingPower: 30},
	Magnet:         {Name: "Magnet", FlingPower: 30},
	NeverMeltIce:   {Name: "Never-Melt Ice", FlingPower: 30},
	HeavyDutyBoots: {Name: "Heavy-Duty Boots", FlingPower: 10},
	RingTarget:     {Name: "Ring Target", FlingPower: 10},
}

// Data returns the static item data for id.
func Data(id ItemID) Item {
	if id >= Count {
		return Item{}
	}
	return data[id]
}

func (id ItemID) String() string {
	if id >= Count {
		return "Unknown"
	}
	return names[id]
}

var byName map[string]ItemID

func init() {
	byName = make(map[string]ItemID, Count)
	for i := ItemID(0); i < Count; i++ {
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

// FromName resolves an item by its canonical or loosely-punctuated name.
func FromName(name string) (ItemID, bool) {
	id, ok := byName[normalize(name)]
	return id, ok
}
