package codegen

import (
	"bytes"
	"sort"
)

// AbilitiesModule is an ability enum ordered by Showdown's num field,
// negative (non-standard) entries filtered out, per abilities.rs.
type AbilitiesModule struct {
	Names []string // in enum order
}

// GenerateAbilities builds an AbilitiesModule from a parsed abilities.json.
func GenerateAbilities(data map[string]AbilityData) (*AbilitiesModule, error) {
	type entry struct {
		name string
		num  int
	}
	entries := make([]entry, 0, len(data))
	for _, d := range data {
		if d.Num < 0 {
			continue
		}
		entries = append(entries, entry{d.Name, d.Num})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].num < entries[j].num })

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return &AbilitiesModule{Names: names}, nil
}

// Render emits Go source for the ability enum.
func (m *AbilitiesModule) Render() ([]byte, error) {
	variants := make([]enumVariant, len(m.Names))
	used := make(map[string]int, len(m.Names))
	for i, name := range m.Names {
		variants[i] = enumVariant{Ident: dedupIdent(used, ToValidIdent(name)), Name: name}
	}

	var buf bytes.Buffer
	err := renderEnum(&buf, enumModule{
		Package:    "abilities",
		TypeName:   "AbilityID",
		Underlying: "uint16",
		Variants:   variants,
	})
	return buf.Bytes(), err
}
