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
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Set(ctx context.Context, field, value string) error
	Birthday(ctx context.Context, value string) error
	Password(ctx context.Context) error
	Image(ctx context.Context, path string) error
	Show(ctx context.Context) error
	Submit(ctx context.Context) error
	Edit(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
}

const helpText = `Available commands:
  (l)ist                 show the user table
  refresh                reload the user table from the server
  add                    open or hide the new user form
  set <field> <value>    edit a field (firstName, lastName, email, phoneNumber, gender)
  birthday <YYYY-MM-DD>  set the birthday
  password               enter a password (hidden)
  image <path>           attach an image file
  show                   show the form
  submit                 create or update the user
  edit <#|id>            load a user into the form
  delete <#|id>          delete a user
  exit | quit            leave the program`

// runREPL starts a simple read–eval–print loop for the user form CLI.
//
// Each line read from reader is split into a command and its arguments and
// dispatched to a. For set, everything after the field name is the value, so
// it may contain spaces. The loop exits on EOF, on "exit" or "quit", or when
// ctx is done.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		prompt := "uf> "
		if s := statusFn(); s != "" {
			prompt = fmt.Sprintf("uf (%s)> ", s)
		}
		printlnFn(prompt)

		line, err := readLine(reader)
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.Add(ctx)

		case "set":
			if len(args) == 0 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "birthday":
			if len(args) != 1 {
				printlnFn("Usage: birthday <YYYY-MM-DD>")
				continue
			}
			_ = a.Birthday(ctx, args[0])

		case "password":
			_ = a.Password(ctx)

		case "image":
			_ = a.Image(ctx, strings.Join(args, " "))

		case "show":
			_ = a.Show(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <#|id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <#|id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
