// Package keyboard implements the Devanagari character-input overlay. It
// edits whichever form field currently holds focus, and sees that field only
// through the narrow fields.FocusTarget accessor — the overlay never owns
// the field and never reaches into the form.
package keyboard

import "github.com/psharma-dev/qprdesk/internal/fields"

// Control keys understood alongside the character keys.
const (
	KeySpace  = "Space"
	KeyDelete = "Delete"
)

// Rows returns the overlay layout: Devanagari characters by category, with
// the control keys on the last row.
func Rows() [][]string {
	return [][]string{
		{"अ", "आ", "इ", "ई", "उ", "ऊ", "ए", "ऐ", "ओ", "औ"},
		{"क", "ख", "ग", "घ", "ङ", "च", "छ", "ज", "झ", "ञ"},
		{"ट", "ठ", "ड", "ढ", "ण", "त", "थ", "द", "ध", "न"},
		{"प", "फ", "ब", "भ", "म", "य", "र", "ल", "व", "श"},
		{"ष", "स", "ह", "ा", "ि", "ी", "ु", "ू", "ृ", "ॉ"},
		{"्", "ं", "ः", "ँ", KeySpace, KeyDelete},
	}
}

// Known reports whether key is on the overlay.
func Known(key string) bool {
	for _, row := range Rows() {
		for _, k := range row {
			if k == key {
				return true
			}
		}
	}
	return false
}

// Press applies one key to the focused field: characters insert at the
// cursor, Space inserts a blank, Delete removes the rune before the cursor.
// The cursor follows the edit.
func Press(target fields.FocusTarget, key string) {
	value := []rune(target.Value())
	cursor := target.Cursor()
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(value) {
		cursor = len(value)
	}

	switch key {
	case KeyDelete:
		if cursor == 0 {
			return
		}
		value = append(value[:cursor-1], value[cursor:]...)
		setKeeping(target, string(value), cursor-1)

	case KeySpace:
		value = insert(value, cursor, ' ')
		setKeeping(target, string(value), cursor+1)

	default:
		keyRunes := []rune(key)
		for i, r := range keyRunes {
			value = insert(value, cursor+i, r)
		}
		setKeeping(target, string(value), cursor+len(keyRunes))
	}
}

func insert(value []rune, at int, r rune) []rune {
	value = append(value, 0)
	copy(value[at+1:], value[at:])
	value[at] = r
	return value
}

// setKeeping writes the value and then restores the cursor, since SetValue
// moves it to the end.
func setKeeping(target fields.FocusTarget, value string, cursor int) {
	target.SetValue(value)
	target.SetCursor(cursor)
}
