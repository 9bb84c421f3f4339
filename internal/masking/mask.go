// Package masking implements the display-only obscuring transform applied to
// sensitive field values (office code, phone, email) before they are shown.
//
// Masking is not idempotent: masking an already-masked value double-masks it.
// Callers must mask exactly once, at display time, from the canonical stored
// value.
package masking

// Placeholder is the display value for empty or absent fields.
const Placeholder = "-"

// MaskRune is the character used to obscure interior characters.
const MaskRune = '*'

// Mask returns a partially obscured form of value: the first and last
// characters are kept and everything in between is replaced with MaskRune.
//
// Empty values and the placeholder "-" are returned as the placeholder.
// Values of length two or less are returned verbatim; they are too short to
// partially obscure without revealing nothing or everything.
func Mask(value string) string {
	if value == "" || value == Placeholder {
		return Placeholder
	}
	r := []rune(value)
	if len(r) <= 2 {
		return value
	}
	masked := make([]rune, len(r))
	masked[0] = r[0]
	for i := 1; i < len(r)-1; i++ {
		masked[i] = MaskRune
	}
	masked[len(r)-1] = r[len(r)-1]
	return string(masked)
}
