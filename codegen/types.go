package codegen

import (
	"bytes"
	"fmt"
	"sort"
)

// TypesModule is the transformed shape of typechart.json: a Type enum in
// alphabetical order (matching the JSON's key order, per types.rs) plus the
// defender x attacker effectiveness matrix.
type TypesModule struct {
	Names  []string // canonical type names, in enum order
	Matrix [][]uint8 // Matrix[defender][attacker], one of 0/1/2/3 (normal/super/resist/immune)
}

// GenerateTypes builds a TypesModule from a parsed typechart.json.
func GenerateTypes(chart map[string]TypeChartEntry) (*TypesModule, error) {
	if len(chart) == 0 {
		return nil, fmt.Errorf("codegen: empty type chart")
	}
	names := make([]string, 0, len(chart))
	for name := range chart {
		names = append(names, name)
	}
	sort.Strings(names)

	n := len(names)
	matrix := make([][]uint8, n)
	for d, defName := range names {
		row := make([]uint8, n)
		entry := chart[defName]
		for a, atkName := range names {
			row[a] = entry.DamageTaken[atkName]
		}
		matrix[d] = row
	}

	return &TypesModule{Names: names, Matrix: matrix}, nil
}

// Render emits Go source for the type enum and its effectiveness matrix.
func (m *TypesModule) Render() ([]byte, error) {
	variants := make([]enumVariant, len(m.Names))
	used := make(map[string]int, len(m.Names))
	for i, name := range m.Names {
		ident := dedupIdent(used, ToValidIdent(name))
		variants[i] = enumVariant{Ident: ident, Name: name}
	}

	var buf bytes.Buffer
	if err := renderEnum(&buf, enumModule{
		Package:    "types",
		TypeName:   "Type",
		Underlying: "uint8",
		Variants:   variants,
	}); err != nil {
		return nil, err
	}

	buf.WriteString("\n// TypeChart[defender][attacker]: 0=normal, 1=super-effective, 2=resisted, 3=immune.\n")
	fmt.Fprintf(&buf, "var TypeChart = [Count][Count]uint8{\n")
	for d := range m.Matrix {
		fmt.Fprintf(&buf, "\t%s: {", variants[d].Ident)
		for a, v := range m.Matrix[d] {
			if a > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%s: %d", variants[a].Ident, v)
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}
