package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("RO Pune\n"), "Office name?", &out)
	if err != nil || got != "RO Pune" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "Office name?") {
		t.Fatalf("prompt missing from output: %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetConfirmation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lowercase y", input: "y\n", expected: true},
		{name: "yes", input: "YES\n", expected: true},
		{name: "n", input: "n\n", expected: false},
		{name: "empty defaults to no", input: "\n", expected: false},
		{name: "garbage is no", input: "sure\n", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetConfirmation(rdr(tc.input), "Delete record 1?", &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
			require.Contains(t, out.String(), "(y/N)")
		})
	}
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	require.Equal(t, make([]byte, 6), b)
}
