package codegen

import (
	"bytes"
	"fmt"
	"sort"
)

// ItemsModule is an item enum ordered by Showdown's num field, with each
// entry's Fling base power (0 when the item has no Fling data).
type ItemsModule struct {
	Names      []string
	FlingPower []uint8
}

// GenerateItems builds an ItemsModule from a parsed items.json.
func GenerateItems(data map[string]ItemData) (*ItemsModule, error) {
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
	sort.Slice(entries, func(i, j int) bool { return entries[i].num < entries[j].num })

	m := &ItemsModule{}
	for _, e := range entries {
		d := data[e.key]
		m.Names = append(m.Names, d.Name)
		var fling uint8
		if d.Fling != nil {
			fling = d.Fling.BasePower
		}
		m.FlingPower = append(m.FlingPower, fling)
	}
	return m, nil
}

// Render emits Go source for the item enum and its Fling power table.
func (m *ItemsModule) Render() ([]byte, error) {
	variants := make([]enumVariant, 0, len(m.Names)+1)
	variants = append(variants, enumVariant{Ident: "None", Name: "none"})
	used := map[string]int{}
	for _, name := range m.Names {
		variants = append(variants, enumVariant{Ident: dedupIdent(used, ToValidIdent(name)), Name: name})
	}

	var buf bytes.Buffer
	if err := renderEnum(&buf, enumModule{
		Package:    "items",
		TypeName:   "ItemID",
		Underlying: "uint16",
		Variants:   variants,
	}); err != nil {
		return nil, err
	}

	buf.WriteString("\nvar flingPower = [Count]uint8{\n")
	for i, p := range m.FlingPower {
		fmt.Fprintf(&buf, "\t%s: %d,\n", variants[i+1].Ident, p)
	}
	buf.WriteString("}\n\n// FlingPower returns the item's Fling base power, or 0 if it has none.\nfunc (i ItemID) FlingPower() uint8 {\n\tif i >= Count {\n\t\treturn 0\n\t}\n\treturn flingPower[i]\n}\n")

	return buf.Bytes(), nil
}
