package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeFileSplitsOnSemicolon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Categories\n>name;hex\nred;#f00\n"), 0o644))

	records, err := tokenizeFile(path)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"# Categories"},
		{">name", "hex"},
		{"red", "#f00"},
	}, records)
}

func TestTokenizeFileMissingFileErrors(t *testing.T) {
	_, err := tokenizeFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestTokenizeFilePreservesBlankLinesForLineNumbering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Categories\n\nred;#f00\n\n\n"), 0o644))

	records, err := tokenizeFile(path)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"# Categories"},
		nil,
		{"red", "#f00"},
		nil,
		nil,
	}, records)
}

func TestTokenizeFileDoesNotTreatQuotesSpecially(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte(`I said "hello" to him;next field`+"\n"), 0o644))

	records, err := tokenizeFile(path)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{`I said "hello" to him`, "next field"},
	}, records)
}
