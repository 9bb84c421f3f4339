package cli

import (
	"context"
	"errors"

	"github.com/psharma-dev/qprdesk/internal/common"
)

// Login prompts for credentials and opens a server session. On success the
// record listing is loaded right away, so the user lands on fresh data.
func (a *App) Login(ctx context.Context) error {
	employeeCode, err := GetSimpleText(a.reader, "Enter employee code", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}

	role, err := GetSimpleText(a.reader, "Enter role", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}
	defer wipe(password)

	if err := a.service.Login(ctx, employeeCode, role, password); err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			printlnFn("Login failed: check employee code, role and password")
		case errors.Is(err, common.ErrUnavailable):
			printlnFn("Server unavailable, try again later")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.loggedIn = true
	printlnFn("Logged in")
	return a.Load(ctx)
}

// Logout closes the session and forgets the local state tied to it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout failed", "err", err)
	}
	a.loggedIn = false
	a.form.Clear()
	a.renderer.Collapse()
	printlnFn("Logged out")
	return nil
}
