package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Load(ctx context.Context) error
	List(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Part(ctx context.Context, args []string) error
	Draft(ctx context.Context) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Request(ctx context.Context, args []string) error
	Year(ctx context.Context) error
	Hindi(ctx context.Context, args []string) error
	Focus(ctx context.Context, args []string) error
	Blur(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the qprdesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - load           — fetch records and render the listing
//	  - list | l       — render the listing from the local cache
//	  - open <id>      — expand/collapse the detail row of a submitted record
//	  - show <id>      — fetch and print a single record
//	  - edit <id>      — open a record in the form
//	  - new            — open a blank form
//	  - set <key> [v]  — change a form field
//	  - part <n>       — switch the form to part n
//	  - draft          — save the form as a draft
//	  - submit         — submit the form
//	  - cancel         — leave the form without saving
//	  - delete <id>    — delete a record (asks for confirmation)
//	  - request <id>   — ask for a submitted record to be unlocked
//	  - year           — list selectable financial years
//	  - focus <key>    — move input focus to a form field
//	  - blur           — drop input focus
//	  - hindi [key]    — press a key on the Devanagari keyboard
//	  - logout         — close the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qpr> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: load, (l)ist, open <id>, show <id>, edit <id>, new, set <key> [value], part <n>, draft, submit, cancel, delete <id>, request <id>, year, focus <key>, blur, hindi [key], logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "load":
			_ = a.Load(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "open":
			_ = a.Open(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "new":
			_ = a.New(ctx)

		case "set":
			_ = a.Set(ctx, args)

		case "part":
			_ = a.Part(ctx, args)

		case "draft":
			_ = a.Draft(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			_ = a.Delete(ctx, args)

		case "request":
			_ = a.Request(ctx, args)

		case "year":
			_ = a.Year(ctx)

		case "focus":
			_ = a.Focus(ctx, args)

		case "blur":
			_ = a.Blur(ctx)

		case "hindi":
			_ = a.Hindi(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
