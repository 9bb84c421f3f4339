package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeTarget is a minimal fields.FocusTarget.
type fakeTarget struct {
	value  []rune
	cursor int
}

func (f *fakeTarget) Value() string { return string(f.value) }
func (f *fakeTarget) SetValue(v string) {
	f.value = []rune(v)
	f.cursor = len(f.value)
}
func (f *fakeTarget) Cursor() int { return f.cursor }
func (f *fakeTarget) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(f.value) {
		pos = len(f.value)
	}
	f.cursor = pos
}

func TestPress_InsertsAtCursor(t *testing.T) {
	target := &fakeTarget{}
	for _, key := range []string{"न", "म", "स", "्", "त", "े"} {
		Press(target, key)
	}
	assert.Equal(t, "नमस्ते", target.Value())

	target.SetCursor(0)
	Press(target, "अ")
	assert.Equal(t, "अनमस्ते", target.Value())
	assert.Equal(t, 1, target.Cursor(), "cursor follows the inserted rune")
}

func TestPress_SpaceAndDelete(t *testing.T) {
	target := &fakeTarget{}
	Press(target, "क")
	Press(target, KeySpace)
	Press(target, "ख")
	assert.Equal(t, "क ख", target.Value())

	Press(target, KeyDelete)
	Press(target, KeyDelete)
	assert.Equal(t, "क", target.Value())
}

func TestPress_DeleteAtStartIsNoop(t *testing.T) {
	target := &fakeTarget{}
	target.SetValue("क")
	target.SetCursor(0)

	Press(target, KeyDelete)
	assert.Equal(t, "क", target.Value())
	assert.Zero(t, target.Cursor())
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("क"))
	assert.True(t, Known(KeySpace))
	assert.True(t, Known(KeyDelete))
	assert.False(t, Known("x"))
}
