package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadLine(t *testing.T) {
	r := rdr("  first  \nlast")

	got, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = readLine(r)
	require.ErrorIs(t, err, io.EOF)
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	got, err := ask(rdr("Ann\n"), "First name: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
	assert.Equal(t, "First name: ", out.String())
}

func TestAskPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := askPassword(&out, passwordPrompt)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Equal(t, passwordPrompt+"\n", out.String())
}

func TestAskPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }

	var out bytes.Buffer
	_, err := askPassword(&out, passwordPrompt)
	require.EqualError(t, err, "read password: not a terminal")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "YES", input: "YES\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty", input: "\n", want: false},
		{name: "EOF", input: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tc.want, confirm(rdr(tc.input), "Sure?", &out))
			assert.Contains(t, out.String(), "Sure? [y/N]")
		})
	}
}
