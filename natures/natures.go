// Package natures defines the 25 natures and the +10%/-10% stat grid every
// generation mechanics implementation consults when computing non-HP stats.
package natures

import "strings"

// Nature is a small-integer identifier for one of the 25 natures.
type Nature uint8

const (
	Hardy Nature = iota
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Docile
	Relaxed
	Impish
	Lax
	Timid
	Hasty
	Serious
	Jolly
	Naive
	Modest
	Mild
	Quiet
	Bashful
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Quirky
	Count
)

// Stat indexes the five nature-affected battle stats (HP is never boosted
// or hindered by nature, so it has no entry here — builder's stat
// calculation maps each non-HP slot of its 6-wide stat array to one of
// these before asking for the nature modifier).
type Stat uint8

const (
	Attack Stat = iota
	Defense
	SpAttack
	SpDefense
	Speed
	StatCount
)

var names = [Count]string{
	Hardy: "Hardy", Lonely: "Lonely", Brave: "Brave", Adamant: "Adamant", Naughty: "Naughty",
	Bold: "Bold", Docile: "Docile", Relaxed: "Relaxed", Impish: "Impish", Lax: "Lax",
	Timid: "Timid", Hasty: "Hasty", Serious: "Serious", Jolly: "Jolly", Naive: "Naive",
	Modest: "Modest", Mild: "Mild", Quiet: "Quiet", Bashful: "Bashful", Rash: "Rash",
	Calm: "Calm", Gentle: "Gentle", Sassy: "Sassy", Careful: "Careful", Quirky: "Quirky",
}

// increased/decreased hold the boosted/hindered Stat for each nature. A
// neutral nature (Hardy, Docile, Serious, Bashful, Quirky) has increased ==
// decreased, which StatModifier treats as a no-op rather than a genuine
// +10%/-10% pair that happens to cancel.
var increased = [Count]Stat{
	Hardy: Attack, Lonely: Attack, Brave: Attack, Adamant: Attack, Naughty: Attack,
	Bold: Defense, Docile: Defense, Relaxed: Defense, Impish: Defense, Lax: Defense,
	Timid: Speed, Hasty: Speed, Serious: Speed, Jolly: Speed, Naive: Speed,
	Modest: SpAttack, Mild: SpAttack, Quiet: SpAttack, Bashful: SpAttack, Rash: SpAttack,
	Calm: SpDefense, Gentle: SpDefense, Sassy: SpDefense, Careful: SpDefense, Quirky: SpDefense,
}

var decreased = [Count]Stat{
	Hardy: Attack, Lonely: Defense, Brave: Speed, Adamant: SpAttack, Naughty: SpDefense,
	Bold: Attack, Docile: Defense, Relaxed: Speed, Impish: SpAttack, Lax: SpDefense,
	Timid: Attack, Hasty: Defense, Serious: Speed, Jolly: SpAttack, Naive: SpDefense,
	Modest: Attack, Mild: Defense, Quiet: Speed, Bashful: SpAttack, Rash: SpDefense,
	Calm: Attack, Gentle: Defense, Sassy: Speed, Careful: SpAttack, Quirky: SpDefense,
}

// String returns the canonical display name.
func (n Nature) String() string {
	if n >= Count {
		return "Unknown"
	}
	return names[n]
}

var byName map[string]Nature

func init() {
	byName = make(map[string]Nature, Count)
	for i := Nature(0); i < Count; i++ {
		byName[normalize(names[i])] = i
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, s))
}

// FromName resolves a nature by its canonical name.
func FromName(name string) (Nature, bool) {
	n, ok := byName[normalize(name)]
	return n, ok
}

// IsNeutral reports whether n boosts and hinders the same stat (a no-op
// nature: Hardy, Docile, Serious, Bashful, or Quirky).
func (n Nature) IsNeutral() bool {
	if n >= Count {
		return true
	}
	return increased[n] == decreased[n]
}

// StatModifier returns the nature's effect on stat as a /10 fraction:
// 11 for a +10% boosted stat, 9 for a -10% hindered stat, 10 otherwise.
// builder.CalculateStat multiplies by this value and divides by 10, matching
// the original engine's integer (raw*modifier)/10 stat formula exactly —
// no floating point is involved.
func (n Nature) StatModifier(stat Stat) uint32 {
	if n >= Count || n.IsNeutral() {
		return 10
	}
	switch stat {
	case increased[n]:
		return 11
	case decreased[n]:
		return 9
	default:
		return 10
	}
}
