package vct

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMatchFile drops a minimal valid match document into dir.
func writeMatchFile(t *testing.T, dir, name, matchID string) string {
	t.Helper()
	doc := fmt.Sprintf(`{
		"matchInfo": {"matchId": %q, "map": "Ascent", "gameStartMillis": 1700000000000, "gameLengthMillis": 2400000},
		"players": [
			{"puuid": "p1", "gameName": "Alice", "tagLine": "NA1", "teamId": "Blue",
			 "stats": {"score": 250, "kills": 20, "deaths": 12, "assists": 4, "roundsPlayed": 3}},
			{"puuid": "p2", "gameName": "Bob", "tagLine": "EU1", "teamId": "Red"}
		],
		"roundResults": [
			{"roundNum": 1, "winningTeam": "Blue", "playerStats": []},
			{"roundNum": 2, "winningTeam": "Blue", "playerStats": []},
			{"roundNum": 3, "winningTeam": "Red", "playerStats": []}
		]
	}`, matchID)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestIndexRebuildAndLookup(t *testing.T) {
	root := t.TempDir()
	pathA := writeMatchFile(t, root, "a.json", "m1")
	writeMatchFile(t, root, "b.json", "m2")

	ix := NewIndex(zerolog.Nop())
	require.NoError(t, ix.Rebuild(root))
	assert.Equal(t, 2, ix.Len())

	got, ok := ix.Lookup("m1")
	require.True(t, ok)
	assert.Equal(t, pathA, got)

	_, ok = ix.Lookup("m9")
	assert.False(t, ok)
}

func TestIndexSkipsCorruptFiles(t *testing.T) {
	root := t.TempDir()
	writeMatchFile(t, root, "good.json", "m1")
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.json"), []byte("{nope"), 0o644))

	ix := NewIndex(zerolog.Nop())
	require.NoError(t, ix.Rebuild(root))
	assert.Equal(t, 1, ix.Len())
}

func TestIndexRebuildReplacesSnapshot(t *testing.T) {
	root := t.TempDir()
	pathA := writeMatchFile(t, root, "a.json", "m1")
	writeMatchFile(t, root, "b.json", "m2")

	ix := NewIndex(zerolog.Nop())
	require.NoError(t, ix.Rebuild(root))

	require.NoError(t, os.Remove(pathA))
	require.NoError(t, ix.Rebuild(root))

	_, ok := ix.Lookup("m1")
	assert.False(t, ok, "removed file must drop out of the rebuilt index")
	_, ok = ix.Lookup("m2")
	assert.True(t, ok)
}

func TestIndexMissingRoot(t *testing.T) {
	ix := NewIndex(zerolog.Nop())
	err := ix.Rebuild(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrFolderNotFound)
}
