// Package nav pages the form across its three sequential sections. This is
// presentational paging only: any section is reachable from any other, with
// no validation gate in between.
package nav

import "fmt"

// SectionCount is the number of form parts.
const SectionCount = 3

// Navigator tracks which form section is visible. Exactly one section is
// current at any time; the initial section is 1.
type Navigator struct {
	current  int
	onChange func(section int)
}

// New returns a navigator on section 1. onChange, if non-nil, fires after
// every successful transition — the CLI uses it to redraw the section and
// bring the form back into view.
func New(onChange func(section int)) *Navigator {
	return &Navigator{current: 1, onChange: onChange}
}

// GoTo makes section n current and fires the change callback. Sections
// outside 1..SectionCount are rejected.
func (n *Navigator) GoTo(section int) error {
	if section < 1 || section > SectionCount {
		return fmt.Errorf("no such section: %d", section)
	}
	n.current = section
	if n.onChange != nil {
		n.onChange(section)
	}
	return nil
}

// Current returns the visible section.
func (n *Navigator) Current() int {
	return n.current
}

// Indicator returns the "current part" badge text for the visible section.
func (n *Navigator) Indicator() string {
	return fmt.Sprintf("Part-%d", n.current)
}
