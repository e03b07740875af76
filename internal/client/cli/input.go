package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword reads from the terminal without echo. Tests replace it.
var readPassword = term.ReadPassword

const (
	passwordPrompt     = "Password: "
	passwordKeepPrompt = "Password (empty keeps the current one): "
)

// readLine returns the next trimmed line. A final line without a newline
// still counts; io.EOF is returned only when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask writes prompt to w and reads the answer from reader.
func ask(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	return readLine(reader)
}

// askPassword prompts on w and reads a password from stdin without echo.
// The caller owns the returned slice and should clear it after use.
func askPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// confirm asks a yes/no question; only "y" or "yes" count as yes.
func confirm(reader *bufio.Reader, question string, w io.Writer) bool {
	answer, err := ask(reader, question+" [y/N] ", w)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
