package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// breaksScreensMoves and variablePowerMoves are hardcoded lists, not
// Showdown flag keys: Showdown's data never marks these two behaviors as
// flags, so codegen synthesizes them the way moves.rs does.
var breaksScreensMoves = map[string]bool{
	"Brick Break":   true,
	"Psychic Fangs": true,
}

var variablePowerMoves = map[string]bool{
	"Eruption": true, "Water Spout": true, "Flail": true, "Reversal": true,
	"Low Kick": true, "Grass Knot": true, "Heavy Slam": true, "Heat Crash": true,
	"Gyro Ball": true, "Electro Ball": true, "Crush Grip": true, "Wring Out": true,
}

// MoveEntry is one move's transformed static data.
type MoveEntry struct {
	Ident    string
	Name     string
	Type     string
	Category string
	Power    uint16
	Accuracy uint8
	PP       uint8
	Priority int8
	FlagBits uint64
	Terrain  string
}

// MovesModule is the transformed shape of moves.json: the move enum in
// num order, the synthesized flag bit assignment, and each move's static
// data row.
type MovesModule struct {
	FlagNames []string // sorted bit name -> bit index
	Entries   []MoveEntry
}

// GenerateMoves builds a MovesModule from a parsed moves.json.
func GenerateMoves(data map[string]MoveData) (*MovesModule, error) {
	type keyed struct {
		key string
		d   MoveData
	}
	list := make([]keyed, 0, len(data))
	for k, d := range data {
		if d.Num < 0 {
			continue
		}
		list = append(list, keyed{k, d})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].d.Num < list[j].d.Num })

	flagSet := make(map[string]struct{})
	for _, kd := range list {
		d := kd.d
		for flag := range d.Flags {
			flagSet[flag] = struct{}{}
		}
		if HasRecoil(d) {
			flagSet["Recoil"] = struct{}{}
		}
		if HasSecondaryEffects(d) {
			flagSet["HasSecondaryEffects"] = struct{}{}
		}
		if breaksScreensMoves[d.Name] {
			flagSet["BreaksScreens"] = struct{}{}
		}
		if variablePowerMoves[d.Name] {
			flagSet["VariablePower"] = struct{}{}
		}
	}
	flagNames := make([]string, 0, len(flagSet))
	for f := range flagSet {
		flagNames = append(flagNames, f)
	}
	sort.Strings(flagNames)
	if len(flagNames) > 64 {
		return nil, fmt.Errorf("codegen: %d move flags exceeds the 64-bit bitset budget", len(flagNames))
	}
	bitOf := make(map[string]int, len(flagNames))
	for i, f := range flagNames {
		bitOf[f] = i
	}

	entries := make([]MoveEntry, 0, len(list))
	used := make(map[string]int, len(list))
	for _, kd := range list {
		d := kd.d
		var bits uint64
		for flag := range d.Flags {
			bits |= 1 << uint(bitOf[flag])
		}
		if HasRecoil(d) {
			bits |= 1 << uint(bitOf["Recoil"])
		}
		if HasSecondaryEffects(d) {
			bits |= 1 << uint(bitOf["HasSecondaryEffects"])
		}
		if breaksScreensMoves[d.Name] {
			bits |= 1 << uint(bitOf["BreaksScreens"])
		}
		if variablePowerMoves[d.Name] {
			bits |= 1 << uint(bitOf["VariablePower"])
		}

		power := uint16(0)
		if d.BasePower != nil {
			power = *d.BasePower
		}
		pp := uint8(0)
		if d.PP != nil {
			pp = *d.PP
		}
		priority := int8(0)
		if d.Priority != nil {
			priority = *d.Priority
		}
		category := "Status"
		if d.Category != nil {
			category = *d.Category
		}
		moveType := "Normal"
		if d.Type != nil {
			moveType = *d.Type
		}
		accuracy := decodeAccuracy(d.Accuracy)
		terrain := ""
		if d.Terrain != nil {
			terrain = *d.Terrain
		}

		entries = append(entries, MoveEntry{
			Ident:    dedupIdent(used, ToValidIdent(d.Name)),
			Name:     d.Name,
			Type:     moveType,
			Category: category,
			Power:    power,
			Accuracy: accuracy,
			PP:       pp,
			Priority: priority,
			FlagBits: bits,
			Terrain:  terrain,
		})
	}

	return &MovesModule{FlagNames: flagNames, Entries: entries}, nil
}

// decodeAccuracy mirrors moves.rs: Showdown encodes "always hits" as the
// JSON boolean true (mapped here to 0, matching the hand-authored
// moveset package's "0 = always hits" convention) or a 1-100 number.
func decodeAccuracy(raw json.RawMessage) uint8 {
	if len(raw) == 0 {
		return 0
	}
	var asBool bool
	if err := json.Unmarshal(raw, &asBool); err == nil {
		// true means "always hits"; moveset's convention is 0 = always hits.
		return 0
	}
	var asNum uint8
	if err := json.Unmarshal(raw, &asNum); err == nil {
		return asNum
	}
	return 0
}

// Render emits Go source for the move enum, its flag bitset constants, and
// its static data table.
func (m *MovesModule) Render() ([]byte, error) {
	variants := make([]enumVariant, len(m.Entries))
	for i, e := range m.Entries {
		variants[i] = enumVariant{Ident: e.Ident, Name: e.Name}
	}

	var buf bytes.Buffer
	if err := renderEnum(&buf, enumModule{
		Package:    "moveset",
		TypeName:   "MoveID",
		Underlying: "uint16",
		Variants:   variants,
	}); err != nil {
		return nil, err
	}

	buf.WriteString("\ntype Flags uint64\n\nconst (\n")
	for i, f := range m.FlagNames {
		fmt.Fprintf(&buf, "\tFlag%s Flags = 1 << %d\n", ToValidIdent(f), i)
	}
	buf.WriteString(")\n\n")

	buf.WriteString("type moveRow struct {\n\tType     string\n\tCategory string\n\tPower    uint16\n\tAccuracy uint8\n\tPP       uint8\n\tPriority int8\n\tFlags    Flags\n\tTerrain  string\n}\n\n")
	buf.WriteString("var moveData = [Count]moveRow{\n")
	for _, e := range m.Entries {
		fmt.Fprintf(&buf, "\t%s: {Type: %q, Category: %q, Power: %d, Accuracy: %d, PP: %d, Priority: %d, Flags: %d, Terrain: %q},\n",
			e.Ident, e.Type, e.Category, e.Power, e.Accuracy, e.PP, e.Priority, e.FlagBits, e.Terrain)
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}
