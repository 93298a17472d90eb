package codegen

import (
	"bytes"
	"fmt"
	"sort"
)

// SpeciesModule is a species enum ordered by Showdown's num field (alt
// formes share their base species's num in the real dataset but codegen
// keeps them as distinct enum entries, since entries is keyed by full
// Showdown key not num), plus each entry's base stats and primary/secondary
// type.
type SpeciesModule struct {
	Names []string
	Stats []BaseStats
	Type1 []string
	Type2 []string // "" when the species has no secondary type
}

// GenerateSpecies builds a SpeciesModule from a parsed pokedex.json.
func GenerateSpecies(data map[string]PokedexEntry) (*SpeciesModule, error) {
	type entry struct {
		key string
		num int16
	}
	entries := make([]entry, 0, len(data))
	for key, d := range data {
		if d.Num == nil || *d.Num < 0 {
			continue
		}
		entries = append(entries, entry{key, *d.Num})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].num != entries[j].num {
			return entries[i].num < entries[j].num
		}
		return entries[i].key < entries[j].key
	})

	m := &SpeciesModule{}
	for _, e := range entries {
		d := data[e.key]
		if d.BaseStats == nil {
			return nil, fmt.Errorf("codegen: species %q is missing baseStats", e.key)
		}
		if len(d.Types) == 0 {
			return nil, fmt.Errorf("codegen: species %q is missing types", e.key)
		}
		m.Names = append(m.Names, d.Name)
		m.Stats = append(m.Stats, *d.BaseStats)
		m.Type1 = append(m.Type1, d.Types[0])
		if len(d.Types) > 1 {
			m.Type2 = append(m.Type2, d.Types[1])
		} else {
			m.Type2 = append(m.Type2, "")
		}
	}
	return m, nil
}

// Render emits Go source for the species enum and its base-stats table.
// Types are emitted as the types package's exported identifiers, not
// re-declared, since species depends on types rather than duplicating it.
func (m *SpeciesModule) Render() ([]byte, error) {
	variants := make([]enumVariant, len(m.Names))
	used := make(map[string]int, len(m.Names))
	for i, name := range m.Names {
		variants[i] = enumVariant{Ident: dedupIdent(used, ToValidIdent(name)), Name: name}
	}

	var buf bytes.Buffer
	if err := renderEnum(&buf, enumModule{
		Package:    "species",
		TypeName:   "SpeciesID",
		Underlying: "uint16",
		Variants:   variants,
	}); err != nil {
		return nil, err
	}

	buf.WriteString("\ntype baseStatRow struct {\n\tHP, Atk, Def, SpA, SpD, Spe uint8\n\tType1, Type2 types.Type\n\tHasType2     bool\n}\n\n")
	buf.WriteString("var baseStats = [Count]baseStatRow{\n")
	for i, ident := range variants {
		s := m.Stats[i]
		t2 := m.Type2[i]
		hasT2 := t2 != ""
		fmt.Fprintf(&buf, "\t%s: {HP: %d, Atk: %d, Def: %d, SpA: %d, SpD: %d, Spe: %d, Type1: types.%s, Type2: types.%s, HasType2: %t},\n",
			ident.Ident, s.HP, s.Atk, s.Def, s.SpA, s.SpD, s.Spe, ToValidIdent(m.Type1[i]), ToValidIdent(orElse(t2, "Normal")), hasT2)
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
