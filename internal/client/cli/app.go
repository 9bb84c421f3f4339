package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/psharma-dev/qprdesk/internal/client/api"
	"github.com/psharma-dev/qprdesk/internal/client/config"
	"github.com/psharma-dev/qprdesk/internal/client/form"
	"github.com/psharma-dev/qprdesk/internal/client/hints"
	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/client/nav"
	"github.com/psharma-dev/qprdesk/internal/client/render"
	"github.com/psharma-dev/qprdesk/internal/client/services"
	"github.com/psharma-dev/qprdesk/internal/client/store"
	"github.com/psharma-dev/qprdesk/internal/fields"
	"github.com/psharma-dev/qprdesk/internal/logging"
)

// reportService is the slice of the report service the CLI needs. The
// concrete services.ReportService satisfies it; tests provide a stub.
type reportService interface {
	Login(ctx context.Context, employeeCode, role string, password []byte) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Record(id int64) (models.Record, error)
	Records() []models.Record
	Fetch(ctx context.Context, id int64) (models.Record, error)
	Save(ctx context.Context, payload models.SavePayload) (int64, error)
	Delete(ctx context.Context, id int64) error
	RequestEdit(ctx context.Context, id int64, reason string) error
}

// App wires the report service, the form controller, and the terminal
// surfaces together and carries the per-session state.
type App struct {
	config   *config.Config
	service  reportService
	registry *fields.Registry
	form     *form.Form
	renderer *render.Renderer
	nav      *nav.Navigator
	hints    *hints.File
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
	loggedIn bool
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	apiClient, err := api.New(c.ServerBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	statePath := c.StatePath
	if statePath == "" {
		statePath, err = hints.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve state path: %w", err)
		}
	}

	reg := fields.QPR()
	app := &App{
		config:   c,
		service:  services.NewReportService(apiClient, store.New(), log),
		registry: reg,
		renderer: render.New(reg),
		hints:    hints.New(statePath),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}
	app.nav = nav.New(app.renderSection)
	app.form = form.New(reg, app.nav)
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the QPR desk client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	if !a.loggedIn {
		return ""
	}
	s := "online"
	if id := a.form.RecordID(); id != "" {
		s = s + " #" + id
	}
	return fmt.Sprintf("(%s)", s)
}

// renderSection prints the form fields of the active section. It runs as
// the navigator's change callback, so every successful part switch repaints.
func (a *App) renderSection(section int) {
	if a.form == nil {
		return
	}
	fmt.Fprintf(a.out, "--- %s ---\n", a.nav.Indicator())
	for _, key := range a.form.SectionKeys(section) {
		value, _ := a.form.Value(key)
		fmt.Fprintf(a.out, "%s: %s\n", a.registry.LabelFor(key), value)
	}
}
