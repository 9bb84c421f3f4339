package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/common"
)

// Load fetches the record listing from the server, renders it, and then
// consumes a pending edit hint, if one was left behind by a previous
// invocation. The hint is cleared whether or not the record still exists.
func (a *App) Load(ctx context.Context) error {
	if err := a.service.Refresh(ctx); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.loggedIn = false
			printlnFn("Session expired, please log in again")
			return err
		}
		printlnFn("Could not load records:", err.Error())
		return err
	}

	a.renderer.RenderList(a.out, a.service.Records())

	id, ok, err := a.hints.TakeEditRecordID()
	if err != nil {
		a.log.Warn(ctx, "reading edit hint failed", "err", err)
		return nil
	}
	if !ok {
		return nil
	}

	rec, err := a.service.Record(id)
	if err != nil {
		// The record was deleted between the hint being written and this
		// load. Nothing to open; the listing stays up.
		a.log.Warn(ctx, "edit hint points at a missing record", "record", id)
		return nil
	}
	a.openForm(&rec)
	return nil
}

// List renders the listing from the local cache, without a server round trip.
func (a *App) List(ctx context.Context) error {
	a.renderer.RenderList(a.out, a.service.Records())
	return nil
}

// Open toggles the inline detail row of a submitted record and re-renders
// the listing.
func (a *App) Open(ctx context.Context, args []string) error {
	id, err := parseID(args, "open")
	if err != nil {
		return err
	}

	rec, err := a.service.Record(id)
	if err != nil {
		printlnFn("No such record:", id)
		return err
	}

	if !a.renderer.Toggle(rec) && rec.Status != models.StatusSubmitted {
		printlnFn("Only submitted records have a detail view")
	}
	a.renderer.RenderList(a.out, a.service.Records())
	return nil
}

// Show fetches one record from the server and prints its full details.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show")
	if err != nil {
		return err
	}

	rec, err := a.service.Fetch(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such record:", id)
		} else {
			printlnFn("Could not fetch record:", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Record #%d [%s]\n", rec.ID, rec.Status)
	for _, pair := range a.renderer.DetailPairs(rec) {
		fmt.Fprintf(a.out, "%s: %s\n", pair.Label, pair.Value)
	}
	return nil
}

func parseID(args []string, cmd string) (int64, error) {
	if len(args) == 0 {
		printlnFn("Usage: " + cmd + " <id>")
		return 0, errors.New("missing record id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Record id must be a number:", args[0])
		return 0, err
	}
	return id, nil
}
