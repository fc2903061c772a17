package vct

import (
	"encoding/json"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// idProbe decodes just enough of a match document to read its identifier.
type idProbe struct {
	MatchInfo struct {
		MatchID string `json:"matchId"`
	} `json:"matchInfo"`
}

// Index caches match identifier -> source file path so detail lookups avoid
// rescanning the corpus. The mapping is held as an immutable snapshot that
// Rebuild swaps atomically; concurrent readers see either the previous or
// the new snapshot, never a partially built one. The index is a cache, not
// a source of truth: callers fall back to a full scan on a miss.
type Index struct {
	snapshot atomic.Pointer[map[string]string]
	log      zerolog.Logger
}

// NewIndex creates an empty index.
func NewIndex(log zerolog.Logger) *Index {
	ix := &Index{log: log}
	empty := map[string]string{}
	ix.snapshot.Store(&empty)
	return ix
}

// Rebuild scans root and replaces the snapshot wholesale. Files that cannot
// be read or parsed are simply absent from the index. Duplicate identifiers
// across files resolve last-scanned-wins.
func (ix *Index) Rebuild(root string) error {
	files, err := ScanMatchFiles(root)
	if err != nil {
		return err
	}

	next := make(map[string]string, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var probe idProbe
		if err := json.Unmarshal(content, &probe); err != nil {
			continue
		}
		id := probe.MatchInfo.MatchID
		if id == "" {
			continue
		}
		if prev, dup := next[id]; dup {
			ix.log.Debug().Str("matchId", id).Str("kept", path).Str("shadowed", prev).
				Msg("duplicate match id, last file wins")
		}
		next[id] = path
	}

	ix.snapshot.Store(&next)
	ix.log.Debug().Int("entries", len(next)).Str("root", root).Msg("match index rebuilt")
	return nil
}

// Lookup returns the indexed file path for a match identifier.
func (ix *Index) Lookup(matchID string) (string, bool) {
	snap := *ix.snapshot.Load()
	path, ok := snap[matchID]
	return path, ok
}

// Len reports the number of indexed matches.
func (ix *Index) Len() int {
	return len(*ix.snapshot.Load())
}
