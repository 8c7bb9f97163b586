package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAdd(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewAddCommand()
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags(append([]string{"-db", dbPath}, args...)))
	require.NoError(t, cmd.Run())
	return out.String()
}

func runList(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewListCommand()
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags(append([]string{"-db", dbPath}, args...)))
	require.NoError(t, cmd.Run())
	return out.String()
}

func TestAddCommand_ParseFlags(t *testing.T) {
	t.Run("requires book", func(t *testing.T) {
		err := NewAddCommand().ParseFlags([]string{"-chapter", "1"})
		assert.ErrorContains(t, err, "-book")
	})

	t.Run("parses all fields", func(t *testing.T) {
		cmd := NewAddCommand()
		err := cmd.ParseFlags([]string{"-book", "Genesis", "-chapter", "1", "-verse", "2", "-text", "t", "-index", "1"})
		require.NoError(t, err)
		assert.Equal(t, "Genesis", cmd.Book)
		assert.Equal(t, 1, cmd.Chapter)
		assert.Equal(t, 2, cmd.VerseNumber)
		assert.Equal(t, "t", cmd.Text)
		assert.Equal(t, 1, cmd.BookIndex)
	})
}

func TestAddAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "verses.db")

	out := runAdd(t, dbPath, "-book", "Exodus", "-chapter", "1", "-verse", "1", "-index", "2", "-text", "Now these are the names")
	assert.Contains(t, out, "Saved Exodus 1:1")
	runAdd(t, dbPath, "-book", "Genesis", "-chapter", "1", "-verse", "1", "-index", "1", "-text", "In the beginning...")

	listed := runList(t, dbPath)
	lines := strings.Split(strings.TrimSpace(listed), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Genesis 1:1\tIn the beginning...", lines[0])
	assert.Equal(t, "Exodus 1:1\tNow these are the names", lines[1])
	assert.Contains(t, listed, "2 verses")

	filtered := runList(t, dbPath, "-book", "Exodus")
	assert.NotContains(t, filtered, "Genesis")
	assert.Contains(t, filtered, "1 verses")
}

func TestListCommand_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "verses.db")
	assert.Contains(t, runList(t, dbPath), "No verses found")
}

func TestResetCommand(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		err := NewResetCommand().ParseFlags([]string{})
		assert.ErrorContains(t, err, "-yes")
	})

	t.Run("deletes all verses", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "verses.db")
		runAdd(t, dbPath, "-book", "Genesis", "-chapter", "1", "-verse", "1", "-index", "1", "-text", "g1")
		runAdd(t, dbPath, "-book", "Genesis", "-chapter", "1", "-verse", "2", "-index", "1", "-text", "g2")

		var out bytes.Buffer
		cmd := NewResetCommand()
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath, "-yes"}))
		require.NoError(t, cmd.Run())
		assert.Contains(t, out.String(), "Deleted 2 verses")

		assert.Contains(t, runList(t, dbPath), "No verses found")
	})
}
