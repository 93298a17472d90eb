package codegen

import (
	"bytes"
	"sort"
	"strings"
)

// TerrainsModule extracts the set of distinct terrain keys moves.json's
// "terrain" field references (e.g. "electricterrain"), per terrains.rs.
type TerrainsModule struct {
	Names []string // raw Showdown keys, e.g. "electricterrain"
}

// GenerateTerrains builds a TerrainsModule from a parsed moves.json.
func GenerateTerrains(moves map[string]MoveData) (*TerrainsModule, error) {
	set := make(map[string]struct{})
	for _, d := range moves {
		if d.Terrain != nil && *d.Terrain != "" {
			set[*d.Terrain] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return &TerrainsModule{Names: names}, nil
}

// Render emits Go source for the terrain enum, with None reserved at 0 (no
// move's terrain field maps to it — it is the "no terrain active" state).
func (m *TerrainsModule) Render() ([]byte, error) {
	variants := make([]enumVariant, 0, len(m.Names)+1)
	variants = append(variants, enumVariant{Ident: "TerrainNone", Name: "none"})
	used := map[string]int{}
	for _, name := range m.Names {
		display := strings.TrimSuffix(name, "terrain")
		variants = append(variants, enumVariant{Ident: dedupIdent(used, ToValidIdent(display)), Name: name})
	}

	var buf bytes.Buffer
	err := renderEnum(&buf, enumModule{
		Package:    "terrains",
		TypeName:   "Terrain",
		Underlying: "uint8",
		Variants:   variants,
	})
	return buf.Bytes(), err
}
