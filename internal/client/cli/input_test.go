package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  ann  \n"))

	got, err := GetSimpleText(reader, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "ann", got)
	require.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("ann"))

	got, err := GetSimpleText(reader, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "ann", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Enter username", &out)
	require.Error(t, err)
}

func TestGetMultiline_JoinsUntilBlankLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(reader, "New bio", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "secret", got)
	require.Contains(t, out.String(), "Enter password")
}
