package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/psharma-dev/qprdesk/internal/client/form"
	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/fiscalyear"
)

// Edit stores the edit hint for the record and reloads the listing. The
// reload consumes the hint and opens the form, so the flow is identical
// whether the edit was requested in this invocation or left over from a
// previous one.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args, "edit")
	if err != nil {
		return err
	}
	if err := a.hints.SetEditRecordID(id); err != nil {
		a.log.Warn(ctx, "writing edit hint failed", "err", err)
	}
	return a.Load(ctx)
}

// New opens a blank, fully editable form, with the financial year defaulted
// to the current one.
func (a *App) New(ctx context.Context) error {
	a.form.Bind(nil)
	_ = a.form.SetValue("year", fiscalyear.Current(time.Now()))
	printlnFn("New report, all fields editable")
	return nil
}

// openForm binds rec to the form and surfaces the permission banner, if any.
// Binding repaints part 1 through the navigator callback.
func (a *App) openForm(rec *models.Record) {
	a.form.Bind(rec)
	if notice := a.form.Notice(); notice != form.NoticeNone {
		printlnFn(notice.String())
	}
}

// Set writes a value into a form field and leaves the focus on it. With no
// value on the command line the user is prompted, so values with spaces can
// be entered.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: set <key> [value]")
		return errors.New("missing field key")
	}
	key := args[0]

	var value string
	if len(args) > 1 {
		value = strings.Join(args[1:], " ")
	} else {
		v, err := GetSimpleText(a.reader, "Enter value for "+a.registry.LabelFor(key), a.out)
		if err != nil {
			a.log.Error(ctx, "input error", "err", err)
			return err
		}
		value = v
	}

	if err := a.form.SetValue(key, value); err != nil {
		reportFormError(err, key)
		return err
	}
	_ = a.form.Focus(key)
	fmt.Fprintf(a.out, "%s: %s\n", a.registry.LabelFor(key), value)
	return nil
}

// Part switches the form to section n; the navigator callback repaints.
func (a *App) Part(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: part <n>")
		return errors.New("missing part number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Part must be a number:", args[0])
		return err
	}
	if err := a.nav.GoTo(n); err != nil {
		printlnFn("No such part:", args[0])
		return err
	}
	return nil
}

// Year prints the selectable financial years, current one first.
func (a *App) Year(ctx context.Context) error {
	now := time.Now()
	fmt.Fprintf(a.out, "Current financial year: %s\n", fiscalyear.Current(now))
	fmt.Fprintf(a.out, "Options: %s\n", strings.Join(fiscalyear.Options(now), ", "))
	return nil
}

// Focus moves the input focus to a form field, making it the target for the
// Devanagari keyboard.
func (a *App) Focus(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: focus <key>")
		return errors.New("missing field key")
	}
	key := args[0]
	if err := a.form.Focus(key); err != nil {
		reportFormError(err, key)
		return err
	}
	fmt.Fprintf(a.out, "Focused %s\n", a.registry.LabelFor(key))
	return nil
}

// Blur drops the input focus.
func (a *App) Blur(ctx context.Context) error {
	a.form.Blur()
	return nil
}

func reportFormError(err error, key string) {
	switch {
	case errors.Is(err, form.ErrReadOnly):
		printlnFn("This report is read-only")
	case errors.Is(err, form.ErrUnknownField):
		printlnFn("Unknown field:", key)
	default:
		printlnFn("Error:", err.Error())
	}
}
