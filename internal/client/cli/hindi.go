package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/psharma-dev/qprdesk/internal/keyboard"
)

// Hindi presses one key of the Devanagari keyboard on the focused form
// field. Without arguments it prints the keyboard layout instead. "space"
// and "del" are accepted as spellings of the control keys.
func (a *App) Hindi(ctx context.Context, args []string) error {
	if len(args) == 0 {
		for _, row := range keyboard.Rows() {
			printlnFn(strings.Join(row, " "))
		}
		return nil
	}

	key := args[0]
	switch strings.ToLower(key) {
	case "space":
		key = keyboard.KeySpace
	case "del", "delete":
		key = keyboard.KeyDelete
	}
	if !keyboard.Known(key) {
		printlnFn("Unknown key:", args[0])
		return errors.New("unknown keyboard key")
	}

	target, ok := a.form.Focused()
	if !ok {
		printlnFn("No field focused; use 'focus <key>' first")
		return errors.New("no focused field")
	}

	keyboard.Press(target, key)
	fmt.Fprintf(a.out, "> %s\n", target.Value())
	return nil
}
