// Package render draws the record list and the expandable detail view for
// submitted records.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/fields"
	"github.com/psharma-dev/qprdesk/internal/masking"
)

// Pair is one (label, value) tuple of a detail view.
type Pair struct {
	Label string
	Value string
}

// Renderer renders the cached record list in store order. It owns the
// detail-expansion state: at most one detail row is expanded at any time,
// system-wide.
type Renderer struct {
	reg      *fields.Registry
	expanded int64 // record id, 0 when nothing is expanded
}

func New(reg *fields.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// Toggle flips the detail expansion for rec and reports whether its detail
// is now open. Only submitted records expand; selecting the open record
// collapses it, selecting another replaces the open detail.
func (r *Renderer) Toggle(rec models.Record) bool {
	if rec.Status != models.StatusSubmitted {
		return false
	}
	if r.expanded == rec.ID {
		r.expanded = 0
		return false
	}
	r.expanded = rec.ID
	return true
}

// Collapse closes any open detail row.
func (r *Renderer) Collapse() {
	r.expanded = 0
}

// ExpandedID returns the id of the record whose detail is open, or 0.
func (r *Renderer) ExpandedID() int64 {
	return r.expanded
}

// RenderList writes one row per record in the given order, with the detail
// block inserted directly beneath the expanded row. Rendering is a pure
// function of the record list and the expansion state; rendering twice
// produces identical output.
func (r *Renderer) RenderList(w io.Writer, records []models.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tOFFICE NAME\tOFFICE CODE\tREGION\tQUARTER\tSTATUS\tACTION")

	for _, rec := range records {
		action := "delete"
		if rec.Status == models.StatusDraft {
			action = "edit"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID,
			orDash(rec.OfficeName),
			orDash(rec.OfficeCode),
			orDash(rec.Region),
			orDash(rec.Quarter),
			orDash(string(rec.Status)),
			action,
		)

		if rec.Status == models.StatusSubmitted && rec.ID == r.expanded {
			tw.Flush()
			r.renderDetail(w, rec)
			tw = newTable(w)
		}
	}
	tw.Flush()
}

func (r *Renderer) renderDetail(w io.Writer, rec models.Record) {
	tw := newTable(w)
	for _, p := range r.DetailPairs(rec) {
		fmt.Fprintf(tw, "    %s\t%s\n", p.Label, p.Value)
	}
	tw.Flush()
}

// DetailPairs builds the ordered detail view of a record: the five core
// pairs first, then one pair per details entry in insertion order. Labels
// resolve through the registry (label, then hint, then the raw key); empty
// values render as the placeholder.
func (r *Renderer) DetailPairs(rec models.Record) []Pair {
	pairs := []Pair{
		{r.reg.LabelFor(fields.KeyOfficeName), orDash(rec.OfficeName)},
		{r.reg.LabelFor(fields.KeyOfficeCode), orDash(rec.OfficeCode)},
		{r.reg.LabelFor(fields.KeyRegion), orDash(rec.Region)},
		{r.reg.LabelFor(fields.KeyQuarter), orDash(rec.Quarter)},
		{"Status", orDash(string(rec.Status))},
	}
	for _, key := range rec.Details.Keys() {
		v, _ := rec.Details.Get(key)
		pairs = append(pairs, Pair{r.reg.LabelFor(key), orDash(v)})
	}
	return pairs
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func orDash(v string) string {
	if v == "" {
		return masking.Placeholder
	}
	return v
}
