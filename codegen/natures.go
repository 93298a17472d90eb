package codegen

import (
	"bytes"
	"fmt"
	"sort"
)

var natureStatOrder = []string{"atk", "def", "spa", "spd", "spe"}

// NaturesModule places every nature on a 5x5 plus/minus grid, matching
// natures.rs: nature_id = plus_stat*5 + minus_stat, with neutral natures
// (plus == minus, or neither set) filling the diagonal.
type NaturesModule struct {
	Grid [25]string // "" for an unfilled grid slot
}

// GenerateNatures builds a NaturesModule from a parsed natures.json.
func GenerateNatures(data map[string]NatureData) (*NaturesModule, error) {
	statIndex := func(s string) (int, bool) {
		for i, name := range natureStatOrder {
			if name == s {
				return i, true
			}
		}
		return 0, false
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var m NaturesModule
	neutralSlot := 0
	for _, key := range keys {
		d := data[key]
		if d.Plus != nil && d.Minus != nil {
			plusIdx, ok := statIndex(*d.Plus)
			if !ok {
				return nil, fmt.Errorf("codegen: nature %q has unknown plus stat %q", key, *d.Plus)
			}
			minusIdx, ok := statIndex(*d.Minus)
			if !ok {
				return nil, fmt.Errorf("codegen: nature %q has unknown minus stat %q", key, *d.Minus)
			}
			idx := plusIdx*5 + minusIdx
			if m.Grid[idx] != "" {
				return nil, fmt.Errorf("codegen: nature grid collision at slot %d between %q and %q", idx, m.Grid[idx], key)
			}
			m.Grid[idx] = d.Name
			continue
		}
		for m.Grid[neutralSlot*6] != "" {
			neutralSlot++
			if neutralSlot >= 5 {
				return nil, fmt.Errorf("codegen: too many neutral natures for the 5-slot diagonal")
			}
		}
		m.Grid[neutralSlot*6] = d.Name
		neutralSlot++
	}
	return &m, nil
}

// Render emits Go source for the nature enum and its stat-modifier method.
func (m *NaturesModule) Render() ([]byte, error) {
	variants := make([]enumVariant, 0, 25)
	used := make(map[string]int, 25)
	for i, name := range m.Grid {
		if name == "" {
			continue
		}
		ident := dedupIdent(used, ToValidIdent(name))
		variants = append(variants, enumVariant{Ident: ident, Name: name})
		_ = i
	}

	var buf bytes.Buffer
	if err := renderEnum(&buf, enumModule{
		Package:    "natures",
		TypeName:   "Nature",
		Underlying: "uint8",
		Variants:   variants,
	}); err != nil {
		return nil, err
	}

	buf.WriteString(`
// Stat identifies one of the five nature-affected stats (HP is never
// affected by nature).
type Stat uint8

const (
	Attack Stat = iota
	Defense
	SpAttack
	SpDefense
	Speed
)

// StatModifier returns the nature's multiplier numerator out of 10 for
// stat: 9 (-10%), 10 (neutral/unaffected), or 11 (+10%).
func (n Nature) StatModifier(stat Stat) uint32 {
	id := uint8(n)
	plus := id / 5
	minus := id % 5
	s := uint8(stat)
	switch {
	case plus == minus:
		return 10
	case s == plus:
		return 11
	case s == minus:
		return 9
	default:
		return 10
	}
}

// IsNeutral reports whether n changes no stats.
func (n Nature) IsNeutral() bool {
	id := uint8(n)
	return id/5 == id%5
}
`)

	return buf.Bytes(), nil
}
