// Package fields defines the form field registry: one descriptor per field
// key, shared by the form controller, the list/detail renderer and the
// masking policy. The registry replaces ad-hoc string matching on field
// identifiers; a field is sensitive, labelled or sectioned because its
// descriptor says so, never because code special-cases its name.
package fields

// Descriptor describes a single form field.
type Descriptor struct {
	// Key is the stable identifier connecting the form field, the save
	// payload entry and the detail label.
	Key string

	// Label is the human heading shown in detail views. May be empty for
	// fields that only carry a placeholder hint.
	Label string

	// Hint is the placeholder text; used as the detail heading when no
	// Label is defined.
	Hint string

	// Sensitive marks values that must be masked whenever they are
	// rendered into an editable field.
	Sensitive bool

	// Section is the form part (1..3) the field belongs to.
	Section int
}

// Core field keys. These map to top-level save payload attributes; every
// other registered field travels in the details map.
const (
	KeyOfficeName = "officeName"
	KeyOfficeCode = "officeCode"
	KeyRegion     = "region"
	KeyQuarter    = "quarter"
)

// CoreKeys returns the core field keys in display order.
func CoreKeys() []string {
	return []string{KeyOfficeName, KeyOfficeCode, KeyRegion, KeyQuarter}
}

// Registry holds field descriptors in registration order. Registration order
// is the order fields appear on the form, and therefore the order detail
// entries are collected in.
type Registry struct {
	order []string
	byKey map[string]Descriptor
}

// NewRegistry builds a registry from descriptors. Registering the same key
// twice overwrites the descriptor but keeps the original position.
func NewRegistry(descriptors []Descriptor) *Registry {
	r := &Registry{byKey: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, ok := r.byKey[d.Key]; !ok {
			r.order = append(r.order, d.Key)
		}
		r.byKey[d.Key] = d
	}
	return r
}

// Keys returns all field keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the descriptor for key.
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// Sensitive reports whether key belongs to the sensitive field set.
func (r *Registry) Sensitive(key string) bool {
	return r.byKey[key].Sensitive
}

// Section returns the form part a field belongs to, or 0 for unknown keys.
func (r *Registry) Section(key string) int {
	return r.byKey[key].Section
}

// LabelFor resolves the display heading for a field key: the human label if
// one is defined, else the placeholder hint, else the raw key.
func (r *Registry) LabelFor(key string) string {
	d, ok := r.byKey[key]
	if !ok {
		return key
	}
	if d.Label != "" {
		return d.Label
	}
	if d.Hint != "" {
		return d.Hint
	}
	return key
}

// FocusTarget is the narrow surface an input collaborator (such as the
// on-screen keyboard overlay) gets for the currently focused field. It is a
// tracked-focus relation, not an ownership relation; the target becomes
// stale the moment focus moves on.
type FocusTarget interface {
	Value() string
	SetValue(string)
	Cursor() int
	SetCursor(int)
}
