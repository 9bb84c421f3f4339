// Package cli provides the interactive qprdesk command-line client.
//
// It wires configuration, the report service, the form controller and an
// interactive REPL for working with quarterly progress reports. Typical
// flow: log in, load the record listing, then edit or create reports.
//
// Key features:
//   - Login / Logout against the reporting backend
//   - List records with expandable detail rows
//   - Edit reports in a three-part form with per-record permissions
//   - Save drafts, submit, delete, and request edit unlocks
//   - Devanagari on-screen keyboard for Hindi text fields
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
