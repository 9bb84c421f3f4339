package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/fields"
)

func submitted(id int64, name string) models.Record {
	return models.Record{ID: id, Status: models.StatusSubmitted, OfficeName: name,
		OfficeCode: "OC" + name, Region: "R", Quarter: "Q1"}
}

func draft(id int64, name string) models.Record {
	return models.Record{ID: id, Status: models.StatusDraft, OfficeName: name,
		OfficeCode: "OC" + name, Region: "R", Quarter: "Q1"}
}

func renderOf(r *Renderer, recs []models.Record) string {
	var buf bytes.Buffer
	r.RenderList(&buf, recs)
	return buf.String()
}

func TestRenderList_RowPerRecordWithStatusActions(t *testing.T) {
	r := New(fields.QPR())
	recs := []models.Record{draft(1, "a"), submitted(2, "b")}

	out := renderOf(r, recs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "header plus one row per record")
	assert.Contains(t, lines[1], "edit")
	assert.Contains(t, lines[2], "delete")
}

func TestRenderList_Idempotent(t *testing.T) {
	r := New(fields.QPR())
	recs := []models.Record{draft(1, "a"), submitted(2, "b"), submitted(3, "c")}

	first := renderOf(r, recs)
	second := renderOf(r, recs)
	assert.Equal(t, first, second, "re-rendering the same list must not duplicate rows")
}

func TestRenderList_EmptyStore(t *testing.T) {
	r := New(fields.QPR())
	assert.Equal(t, "No records found\n", renderOf(r, nil))
}

func TestToggle_AtMostOneExpanded(t *testing.T) {
	r := New(fields.QPR())
	recs := []models.Record{submitted(1, "a"), submitted(2, "b"), submitted(3, "c")}

	for _, rec := range recs {
		assert.True(t, r.Toggle(rec))
	}
	assert.Equal(t, int64(3), r.ExpandedID(), "last selected row wins")

	out := renderOf(r, recs)
	assert.Equal(t, 1, strings.Count(out, "Status"), "exactly one detail block rendered")
}

func TestToggle_CollapseRestoresList(t *testing.T) {
	r := New(fields.QPR())
	recs := []models.Record{submitted(1, "a"), submitted(2, "b")}

	before := renderOf(r, recs)

	require.True(t, r.Toggle(recs[0]))
	expanded := renderOf(r, recs)
	assert.NotEqual(t, before, expanded)

	require.False(t, r.Toggle(recs[0]), "selecting the open row collapses it")
	assert.Equal(t, before, renderOf(r, recs), "collapse returns the pre-expansion structure")
}

func TestToggle_DraftRowsDoNotExpand(t *testing.T) {
	r := New(fields.QPR())
	assert.False(t, r.Toggle(draft(1, "a")))
	assert.Zero(t, r.ExpandedID())
}

func TestDetailPairs_OrderAndFallbacks(t *testing.T) {
	r := New(fields.QPR())
	rec := submitted(7, "HQ")
	rec.Quarter = ""
	rec.Details.Set("s1_total", "12")
	rec.Details.Set("s12_1", "new glossary published")
	rec.Details.Set("mystery_key", "")

	pairs := r.DetailPairs(rec)

	require.GreaterOrEqual(t, len(pairs), 8)
	assert.Equal(t, Pair{"Office Name", "HQ"}, pairs[0])
	assert.Equal(t, Pair{"Quarter", "-"}, pairs[3], "empty core values render as dash")
	assert.Equal(t, Pair{"Status", "Submitted"}, pairs[4])

	// Details follow in insertion order with label -> hint -> key resolution.
	assert.Equal(t, Pair{"Total Files", "12"}, pairs[5])
	assert.Equal(t, Pair{"Innovative work done in Hindi", "new glossary published"}, pairs[6])
	assert.Equal(t, Pair{"mystery_key", "-"}, pairs[7])
}
