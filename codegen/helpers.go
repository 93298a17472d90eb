package codegen

import (
	"strings"
	"unicode"
)

// ToValidIdent converts a Showdown data key (e.g. "brickbreak", "10000000
// Volt Thunderbolt") into a valid exported Go identifier in PascalCase,
// prefixing with an underscore if the result would otherwise start with a
// digit.
func ToValidIdent(key string) string {
	pascal := toPascalCase(key)
	if pascal == "" {
		return "_"
	}
	if unicode.IsDigit(rune(pascal[0])) {
		return "_" + pascal
	}
	return pascal
}

// toPascalCase splits key on every rune that is not a letter or digit,
// then upper-cases the first rune of each remaining word, lower-cases the
// rest, and joins them with no separator.
func toPascalCase(key string) string {
	var b strings.Builder
	startNew := true
	for _, r := range key {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if startNew {
				b.WriteRune(unicode.ToUpper(r))
				startNew = false
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		default:
			startNew = true
		}
	}
	return b.String()
}

// HasSecondaryEffects reports whether a move carries a secondary effect
// that should boost Sheer Force: an explicit secondary/secondaries payload,
// or the hasSheerForce flag.
func HasSecondaryEffects(d MoveData) bool {
	if d.HasSheerForce != nil && *d.HasSheerForce {
		return true
	}
	return isPresentNonNull(d.Secondary) || isPresentNonNull(d.Secondaries)
}

func isPresentNonNull(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

// HasRecoil reports whether a move's recoil-related fields mark it for the
// Reckless boost: an explicit recoil payload, crash damage, or Mind Blown's
// self-damage.
func HasRecoil(d MoveData) bool {
	if isPresentNonNull(d.Recoil) {
		return true
	}
	if d.HasCrashDamage != nil && *d.HasCrashDamage {
		return true
	}
	if d.MindBlownRecoil != nil && *d.MindBlownRecoil {
		return true
	}
	return false
}
