// Package form binds a single record (or none) to the editable form: it
// populates fields with masking applied, computes field enablement from the
// record's permission flag and serializes the form back into a save payload.
package form

import (
	"errors"
	"strconv"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/fields"
	"github.com/psharma-dev/qprdesk/internal/masking"
)

var (
	// ErrReadOnly is returned by mutations while the bound record does not
	// permit editing.
	ErrReadOnly = errors.New("form is read-only")

	// ErrUnknownField is returned for keys outside the field registry.
	ErrUnknownField = errors.New("unknown form field")
)

// Navigator drives the section paging; the form only ever asks for section 1
// after a bind.
type Navigator interface {
	GoTo(section int) error
}

// Notice is the persistent permission banner shown above the form. The two
// real notices are mutually exclusive per bind.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeReadOnly
	NoticeEditApproved
)

func (n Notice) String() string {
	switch n {
	case NoticeReadOnly:
		return "Read-Only Mode: this submitted report cannot be edited. Use 'request' to ask an administrator for permission."
	case NoticeEditApproved:
		return "Edit Approved: an administrator has approved your edit request. You may modify this report."
	default:
		return ""
	}
}

// Field is one editable form field. It implements fields.FocusTarget so the
// input overlay can edit whichever field holds focus without seeing the form.
type Field struct {
	key    string
	value  []rune
	cursor int
}

func (f *Field) Value() string { return string(f.value) }

// SetValue replaces the content and moves the cursor to the end.
func (f *Field) SetValue(v string) {
	f.value = []rune(v)
	f.cursor = len(f.value)
}

func (f *Field) Cursor() int { return f.cursor }

// SetCursor clamps pos into the valid range.
func (f *Field) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(f.value) {
		pos = len(f.value)
	}
	f.cursor = pos
}

// Form is the edit/view state of the report form. The registry defines which
// fields exist; a details entry without a registered field is dropped on
// bind, exactly as a value without a matching input would be in a browser.
type Form struct {
	reg     *fields.Registry
	nav     Navigator
	byKey   map[string]*Field
	order   []string
	record  string // bound record id, "" for a new record
	allowed bool
	notice  Notice
	focused *Field
}

func New(reg *fields.Registry, nav Navigator) *Form {
	f := &Form{
		reg:     reg,
		nav:     nav,
		byKey:   make(map[string]*Field),
		order:   reg.Keys(),
		allowed: true,
	}
	for _, key := range f.order {
		f.byKey[key] = &Field{key: key}
	}
	return f
}

// Bind configures the form for rec, or for a fresh record when rec is nil.
//
// Core fields populate verbatim except sensitive ones, which are masked;
// details entries populate their registered fields, masked when sensitive.
// Masked values sit in editable fields, so saving without retyping a
// sensitive field persists the masked string over the real value. That is
// the inherited product behavior, kept deliberately; see DESIGN.md.
//
// Editability has strict precedence: CanEdit false disables everything and
// raises the read-only notice; CanEdit true enables everything and raises
// the edit-approved notice only when EditApproved is set. Binding always
// lands on section 1.
func (f *Form) Bind(rec *models.Record) {
	f.Blur()

	if rec == nil {
		for _, fd := range f.byKey {
			fd.SetValue("")
		}
		f.record = ""
		f.allowed = true
		f.notice = NoticeNone
		_ = f.nav.GoTo(1)
		return
	}

	f.record = strconv.FormatInt(rec.ID, 10)
	f.setDisplayValue(fields.KeyOfficeName, rec.OfficeName)
	f.setDisplayValue(fields.KeyOfficeCode, rec.OfficeCode)
	f.setDisplayValue(fields.KeyRegion, rec.Region)
	f.setDisplayValue(fields.KeyQuarter, rec.Quarter)

	// Reset non-core fields before replaying details so leftovers from a
	// previous bind cannot bleed into this record.
	for _, key := range f.order {
		if !isCore(key) {
			f.byKey[key].SetValue("")
		}
	}
	for _, key := range rec.Details.Keys() {
		if _, ok := f.byKey[key]; !ok {
			continue
		}
		v, _ := rec.Details.Get(key)
		f.setDisplayValue(key, v)
	}

	f.allowed = rec.CanEdit
	switch {
	case !rec.CanEdit:
		f.notice = NoticeReadOnly
	case rec.EditApproved:
		f.notice = NoticeEditApproved
	default:
		f.notice = NoticeNone
	}

	_ = f.nav.GoTo(1)
}

// Clear resets the form to the empty, fully editable state.
func (f *Form) Clear() {
	f.Bind(nil)
}

func (f *Form) setDisplayValue(key, value string) {
	if f.reg.Sensitive(key) {
		value = masking.Mask(value)
	}
	f.byKey[key].SetValue(value)
}

func isCore(key string) bool {
	for _, c := range fields.CoreKeys() {
		if key == c {
			return true
		}
	}
	return false
}

// Collect serializes the current field values into a save payload with the
// given status. Core fields map to top-level attributes; every other form
// field lands in details under its own key, in form order. A bound record id
// is forwarded; otherwise the payload id is null, requesting creation.
//
// Collect refuses while the form is read-only, and validates the payload for
// submissions (drafts may be incomplete).
func (f *Form) Collect(status models.Status) (models.SavePayload, error) {
	if !f.allowed {
		return models.SavePayload{}, ErrReadOnly
	}

	p := models.SavePayload{
		Status:     status,
		OfficeName: f.byKey[fields.KeyOfficeName].Value(),
		OfficeCode: f.byKey[fields.KeyOfficeCode].Value(),
		Region:     f.byKey[fields.KeyRegion].Value(),
		Quarter:    f.byKey[fields.KeyQuarter].Value(),
	}

	if f.record != "" {
		id, err := strconv.ParseInt(f.record, 10, 64)
		if err != nil {
			return models.SavePayload{}, err
		}
		p.ID = &id
	}

	for _, key := range f.order {
		if isCore(key) {
			continue
		}
		p.Details.Set(key, f.byKey[key].Value())
	}

	if status == models.StatusSubmitted {
		if err := p.Validate(); err != nil {
			return models.SavePayload{}, err
		}
	}
	return p, nil
}

// SetValue writes a value into a form field.
func (f *Form) SetValue(key, value string) error {
	if !f.allowed {
		return ErrReadOnly
	}
	fd, ok := f.byKey[key]
	if !ok {
		return ErrUnknownField
	}
	fd.SetValue(value)
	return nil
}

// Value reads a form field.
func (f *Form) Value(key string) (string, bool) {
	fd, ok := f.byKey[key]
	if !ok {
		return "", false
	}
	return fd.Value(), true
}

// Editable reports whether fields and save actions are enabled.
func (f *Form) Editable() bool { return f.allowed }

// Notice returns the current permission banner.
func (f *Form) Notice() Notice { return f.notice }

// RecordID returns the bound record id, or "" for a new record.
func (f *Form) RecordID() string { return f.record }

// SectionKeys returns the field keys belonging to form part n, in form order.
func (f *Form) SectionKeys(n int) []string {
	var out []string
	for _, key := range f.order {
		if f.reg.Section(key) == n {
			out = append(out, key)
		}
	}
	return out
}

// Focus marks key's field as the current input target. Disabled forms take
// no focus, matching disabled inputs.
func (f *Form) Focus(key string) error {
	if !f.allowed {
		return ErrReadOnly
	}
	fd, ok := f.byKey[key]
	if !ok {
		return ErrUnknownField
	}
	f.focused = fd
	return nil
}

// Blur drops the focus relation.
func (f *Form) Blur() {
	f.focused = nil
}

// Focused exposes the focused field through the narrow accessor the input
// overlay consumes. The boolean is false when nothing holds focus.
func (f *Form) Focused() (fields.FocusTarget, bool) {
	if f.focused == nil {
		return nil, false
	}
	return f.focused, true
}
