package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/psharma-dev/qprdesk/internal/client/form"
	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/common"
)

// Draft saves the form as a draft; incomplete fields are allowed.
func (a *App) Draft(ctx context.Context) error {
	return a.save(ctx, models.StatusDraft)
}

// Submit validates the form and submits it. A submitted report locks until
// an administrator approves an edit request.
func (a *App) Submit(ctx context.Context) error {
	return a.save(ctx, models.StatusSubmitted)
}

// save collects the form into a payload and sends it. On success the form is
// closed and the refreshed listing is shown; on rejection the form keeps its
// values so the user can fix and retry.
func (a *App) save(ctx context.Context, status models.Status) error {
	payload, err := a.form.Collect(status)
	if err != nil {
		if errors.Is(err, form.ErrReadOnly) {
			printlnFn("This report is read-only")
		} else {
			printlnFn("Cannot save:", err.Error())
		}
		return err
	}

	id, err := a.service.Save(ctx, payload)
	if err != nil {
		if errors.Is(err, common.ErrRejected) {
			printlnFn("Server rejected the save:", err.Error())
		} else {
			printlnFn("Save failed:", err.Error())
		}
		return err
	}

	if status == models.StatusSubmitted {
		fmt.Fprintf(a.out, "Report #%d submitted\n", id)
	} else {
		fmt.Fprintf(a.out, "Report #%d saved as draft\n", id)
	}
	a.form.Clear()
	return a.List(ctx)
}

// Cancel leaves the form without saving.
func (a *App) Cancel(ctx context.Context) error {
	a.form.Clear()
	printlnFn("Edit cancelled")
	return a.List(ctx)
}

// Delete removes a record after an explicit confirmation. A failed delete
// leaves the listing as is; nothing is refetched.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete")
	if err != nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete record %d?", id), a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}
	if !ok {
		printlnFn("Aborted")
		return nil
	}

	if err := a.service.Delete(ctx, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Record %d deleted\n", id)
	return a.List(ctx)
}

// Request asks an administrator to unlock a submitted record for editing.
func (a *App) Request(ctx context.Context, args []string) error {
	id, err := parseID(args, "request")
	if err != nil {
		return err
	}

	reason, err := GetSimpleText(a.reader, "Enter the reason for the edit request", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}

	if err := a.service.RequestEdit(ctx, id, reason); err != nil {
		printlnFn("Edit request failed:", err.Error())
		return err
	}
	printlnFn("Edit request sent, an administrator will review it")
	return nil
}
