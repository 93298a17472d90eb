package fixture

import "encoding/json"

// SkipList is a curated set of fixture names whose reference value is
// known to differ from cartridge behavior (spec.md §7's "Intentionally
// skipped fixture", e.g. Multitype STAB cases evaluated against a
// reference that disagrees with this engine's Forecast-style STAB
// exception). Keyed by Case.Name.
type SkipList map[string]string

// Reason reports whether name is on the skip list and, if so, why.
func (s SkipList) Reason(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	reason, ok := s[name]
	return reason, ok
}

// LoadSkipList parses a JSON object mapping fixture name to skip reason.
func LoadSkipList(data []byte) (SkipList, error) {
	var list SkipList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
