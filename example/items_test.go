package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadItems(t *testing.T) {
	items, err := readItems(strings.NewReader("apple\n\n  banana  \n# fruit\r\napricot\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "apricot"}, items)
}

func TestLoadItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Oslo\nBergen\n"), 0o644))

	items, err := loadItems(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oslo", "Bergen"}, items)

	_, err = loadItems(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--fuzzy", "--width", "300", "--style", "gta", "-v"}))

	fuzzy, err := cmd.Flags().GetBool("fuzzy")
	require.NoError(t, err)
	assert.True(t, fuzzy)
	width, err := cmd.Flags().GetFloat32("width")
	require.NoError(t, err)
	assert.Equal(t, float32(300), width)
	noFilter, err := cmd.Flags().GetBool("no-filter")
	require.NoError(t, err)
	assert.False(t, noFilter)
}
