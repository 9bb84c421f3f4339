package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharma-dev/qprdesk/internal/client/config"
	"github.com/psharma-dev/qprdesk/internal/client/form"
	"github.com/psharma-dev/qprdesk/internal/client/hints"
	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/client/nav"
	"github.com/psharma-dev/qprdesk/internal/client/render"
	"github.com/psharma-dev/qprdesk/internal/common"
	"github.com/psharma-dev/qprdesk/internal/fields"
	"github.com/psharma-dev/qprdesk/internal/logging"
)

// stubService implements reportService for command tests.
type stubService struct {
	records    []models.Record
	refreshErr error
	loginErr   error

	saveID  int64
	saveErr error
	saved   []models.SavePayload

	deleteErr error
	deleted   []int64

	requestErr error
	requests   []string
}

func (s *stubService) Login(ctx context.Context, employeeCode, role string, password []byte) error {
	return s.loginErr
}
func (s *stubService) Logout(ctx context.Context) error { return nil }
func (s *stubService) Refresh(ctx context.Context) error {
	return s.refreshErr
}
func (s *stubService) Record(id int64) (models.Record, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Record{}, common.ErrNotFound
}
func (s *stubService) Records() []models.Record { return s.records }
func (s *stubService) Fetch(ctx context.Context, id int64) (models.Record, error) {
	return s.Record(id)
}
func (s *stubService) Save(ctx context.Context, payload models.SavePayload) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.saved = append(s.saved, payload)
	return s.saveID, nil
}
func (s *stubService) Delete(ctx context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *stubService) RequestEdit(ctx context.Context, id int64, reason string) error {
	if s.requestErr != nil {
		return s.requestErr
	}
	s.requests = append(s.requests, reason)
	return nil
}

// capturePrintln redirects printlnFn into a slice for assertions.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func newTestApp(t *testing.T, svc reportService, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	reg := fields.QPR()
	a := &App{
		config:   &config.Config{},
		service:  svc,
		registry: reg,
		renderer: render.New(reg),
		hints:    hints.New(filepath.Join(t.TempDir(), "state.json")),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
		log:      logging.NopLogger{},
		loggedIn: true,
	}
	a.nav = nav.New(a.renderSection)
	a.form = form.New(reg, a.nav)
	return a, &out
}

func editableRecord(id int64) models.Record {
	return models.Record{ID: id, Status: models.StatusDraft, OfficeName: "RO Pune",
		OfficeCode: "RO1234", Region: "West", Quarter: "Q1", CanEdit: true}
}

func TestEdit_OpensFormViaHint(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{records: []models.Record{editableRecord(3)}}
	a, _ := newTestApp(t, svc, "")

	require.NoError(t, a.Edit(context.Background(), []string{"3"}))

	assert.Equal(t, "3", a.form.RecordID())
	assert.True(t, a.form.Editable())

	// The hint was consumed by the load; it must not fire again.
	_, ok, err := a.hints.TakeEditRecordID()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEdit_MissingRecordAbortsSilently(t *testing.T) {
	lines := capturePrintln(t)
	svc := &stubService{records: []models.Record{editableRecord(3)}}
	a, _ := newTestApp(t, svc, "")

	require.NoError(t, a.Edit(context.Background(), []string{"99"}))

	assert.Empty(t, a.form.RecordID(), "no form opens for a vanished record")
	for _, line := range *lines {
		assert.NotContains(t, line, "99", "no user-facing error for a stale hint")
	}
}

func TestEdit_ReadOnlyNoticeShown(t *testing.T) {
	lines := capturePrintln(t)
	rec := editableRecord(4)
	rec.Status = models.StatusSubmitted
	rec.CanEdit = false
	svc := &stubService{records: []models.Record{rec}}
	a, _ := newTestApp(t, svc, "")

	require.NoError(t, a.Edit(context.Background(), []string{"4"}))

	assert.False(t, a.form.Editable())
	assert.Contains(t, strings.Join(*lines, "\n"), form.NoticeReadOnly.String())
}

func TestNew_DefaultsFiscalYear(t *testing.T) {
	capturePrintln(t)
	a, _ := newTestApp(t, &stubService{}, "")

	require.NoError(t, a.New(context.Background()))

	year, ok := a.form.Value("year")
	require.True(t, ok)
	assert.Regexp(t, `^\d{4}-\d{4}$`, year)
	assert.True(t, a.form.Editable())
}

func TestDraft_SuccessClearsForm(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{saveID: 7}
	a, out := newTestApp(t, svc, "")

	require.NoError(t, a.New(context.Background()))
	require.NoError(t, a.form.SetValue(fields.KeyOfficeName, "RO Pune"))

	require.NoError(t, a.Draft(context.Background()))

	require.Len(t, svc.saved, 1)
	assert.Equal(t, models.StatusDraft, svc.saved[0].Status)
	assert.Nil(t, svc.saved[0].ID, "a fresh form saves with a null id")
	assert.Contains(t, out.String(), "saved as draft")

	v, _ := a.form.Value(fields.KeyOfficeName)
	assert.Empty(t, v, "a successful save closes the form")
}

func TestSubmit_ValidationFailureKeepsForm(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{}
	a, _ := newTestApp(t, svc, "")

	require.NoError(t, a.New(context.Background()))
	require.NoError(t, a.form.SetValue(fields.KeyOfficeName, "RO Pune"))

	require.Error(t, a.Submit(context.Background()), "incomplete submissions are rejected locally")

	assert.Empty(t, svc.saved, "nothing reaches the server")
	v, _ := a.form.Value(fields.KeyOfficeName)
	assert.Equal(t, "RO Pune", v, "the form keeps its values for fixing")
}

func TestSubmit_ServerRejectionKeepsForm(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{saveErr: fmt.Errorf("%w: quarter already reported", common.ErrRejected)}
	a, _ := newTestApp(t, svc, "")

	require.NoError(t, a.New(context.Background()))
	for _, kv := range [][2]string{
		{fields.KeyOfficeName, "RO Pune"},
		{fields.KeyOfficeCode, "RO1234"},
		{fields.KeyRegion, "West"},
		{fields.KeyQuarter, "Q1"},
	} {
		require.NoError(t, a.form.SetValue(kv[0], kv[1]))
	}

	require.Error(t, a.Submit(context.Background()))

	v, _ := a.form.Value(fields.KeyOfficeName)
	assert.Equal(t, "RO Pune", v)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{records: []models.Record{editableRecord(5)}}
	a, _ := newTestApp(t, svc, "n\n")

	require.NoError(t, a.Delete(context.Background(), []string{"5"}))
	assert.Empty(t, svc.deleted)
}

func TestDelete_ConfirmedCallsService(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{records: []models.Record{editableRecord(5)}}
	a, out := newTestApp(t, svc, "y\n")

	require.NoError(t, a.Delete(context.Background(), []string{"5"}))
	assert.Equal(t, []int64{5}, svc.deleted)
	assert.Contains(t, out.String(), "deleted")
}

func TestRequest_SendsReason(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{}
	a, _ := newTestApp(t, svc, "typo in office name\n")

	require.NoError(t, a.Request(context.Background(), []string{"8"}))
	assert.Equal(t, []string{"typo in office name"}, svc.requests)
}

func TestHindi_TypesIntoFocusedField(t *testing.T) {
	capturePrintln(t)
	a, _ := newTestApp(t, &stubService{}, "")

	require.NoError(t, a.New(context.Background()))
	require.NoError(t, a.Focus(context.Background(), []string{fields.KeyOfficeName}))

	for _, key := range []string{"क", "ख", "space", "ग"} {
		require.NoError(t, a.Hindi(context.Background(), []string{key}))
	}
	require.NoError(t, a.Hindi(context.Background(), []string{"del"}))

	v, _ := a.form.Value(fields.KeyOfficeName)
	assert.Equal(t, "कख ", v)
}

func TestHindi_NoFocusReportsError(t *testing.T) {
	capturePrintln(t)
	a, _ := newTestApp(t, &stubService{}, "")

	require.NoError(t, a.New(context.Background()))
	require.Error(t, a.Hindi(context.Background(), []string{"क"}))
}

func TestOpen_TogglesSubmittedDetail(t *testing.T) {
	capturePrintln(t)
	rec := editableRecord(2)
	rec.Status = models.StatusSubmitted
	svc := &stubService{records: []models.Record{rec}}
	a, out := newTestApp(t, svc, "")

	require.NoError(t, a.Open(context.Background(), []string{"2"}))
	assert.Equal(t, int64(2), a.renderer.ExpandedID())
	assert.Contains(t, out.String(), "RO Pune")

	require.NoError(t, a.Open(context.Background(), []string{"2"}))
	assert.Zero(t, a.renderer.ExpandedID())
}

func TestLoad_SessionExpiryLogsOut(t *testing.T) {
	capturePrintln(t)
	svc := &stubService{refreshErr: common.ErrUnauthorized}
	a, _ := newTestApp(t, svc, "")

	require.Error(t, a.Load(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestSet_PromptsWhenValueOmitted(t *testing.T) {
	capturePrintln(t)
	a, _ := newTestApp(t, &stubService{}, "Regional Office Pune\n")

	require.NoError(t, a.New(context.Background()))
	require.NoError(t, a.Set(context.Background(), []string{fields.KeyOfficeName}))

	v, _ := a.form.Value(fields.KeyOfficeName)
	assert.Equal(t, "Regional Office Pune", v)

	target, ok := a.form.Focused()
	require.True(t, ok, "set leaves the focus on the field")
	assert.Equal(t, "Regional Office Pune", target.Value())
}
