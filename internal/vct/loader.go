package vct

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchSize bounds how many detail fetches run concurrently.
	DefaultBatchSize = 10

	// DefaultBatchDelay is the pause between batches so a large request
	// doesn't saturate disk I/O.
	DefaultBatchDelay = 10 * time.Millisecond

	// progressStride controls how often ingestion reports progress.
	progressStride = 10
)

// ProgressFunc receives (processed, total) while a bulk operation runs.
type ProgressFunc func(processed, total int)

// Loader ingests match documents from a directory tree and serves summary
// and detail lookups. Ingestion is best-effort over the corpus: individual
// unreadable or corrupt files are logged and skipped, never fatal.
type Loader struct {
	index      *Index
	log        zerolog.Logger
	batchDelay time.Duration
}

// NewLoader creates a Loader with an empty match index.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{
		index:      NewIndex(log),
		log:        log,
		batchDelay: DefaultBatchDelay,
	}
}

// SetBatchDelay overrides the pause inserted between detail batches.
func (l *Loader) SetBatchDelay(d time.Duration) {
	if d >= 0 {
		l.batchDelay = d
	}
}

// Index exposes the loader's match index.
func (l *Loader) Index() *Index {
	return l.index
}

// RebuildIndex refreshes the match-id -> path cache from a fresh scan.
func (l *Loader) RebuildIndex(root string) error {
	return l.index.Rebuild(root)
}

// LoadSummaries parses every match file under root into summaries. The
// progress callback fires after the first file, every tenth, and the last.
// A file that fails to read or parse is skipped; only a bad root is fatal.
func (l *Loader) LoadSummaries(root string, onProgress ProgressFunc) ([]MatchSummary, error) {
	files, err := ScanMatchFiles(root)
	if err != nil {
		return nil, err
	}

	total := len(files)
	summaries := make([]MatchSummary, 0, total)

	for i, path := range files {
		data, err := readMatch(path)
		if err != nil {
			l.log.Warn().Err(err).Str("file", path).Msg("skipping match file")
		} else {
			summaries = append(summaries, Summarize(path, data))
		}

		processed := i + 1
		if onProgress != nil && (processed == 1 || processed%progressStride == 0 || processed == total) {
			onProgress(processed, total)
		}
	}

	l.log.Info().Int("matches", len(summaries)).Int("files", total).Str("root", root).
		Msg("loaded match summaries")
	return summaries, nil
}

// GetDetail fetches one match's full detail by identifier. The index is
// consulted first; on any miss (never indexed, stale entry, unknown id) the
// root is rescanned linearly and the first file with a matching embedded
// identifier wins.
func (l *Loader) GetDetail(root, matchID string) (*MatchDetail, error) {
	if path, ok := l.index.Lookup(matchID); ok {
		if data, err := readMatch(path); err == nil {
			detail := Detail(path, data)
			return &detail, nil
		}
		// Stale index entry (file moved or corrupted since the rebuild);
		// fall through to the scan.
	}

	files, err := ScanMatchFiles(root)
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		data, err := readMatch(path)
		if err != nil {
			continue
		}
		if data.MatchInfo.MatchID == matchID {
			detail := Detail(path, data)
			return &detail, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
}

// GetDetails fetches many match details with bounded parallelism. Identifiers
// are processed in consecutive chunks of batchSize; within a chunk each fetch
// runs on its own goroutine and results land in their original request slot,
// so the output order always equals the input order. The first error, whether
// a not-found for a requested id or a worker fault, aborts the whole call.
func (l *Loader) GetDetails(root string, matchIDs []string, batchSize int, onProgress ProgressFunc) ([]MatchDetail, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	total := len(matchIDs)
	results := make([]*MatchDetail, total)
	completed := 0

	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("match detail worker panicked: %v", r)
					}
				}()
				detail, err := l.GetDetail(root, matchIDs[i])
				if err != nil {
					return err
				}
				results[i] = detail
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for i := start; i < end; i++ {
			completed++
			if onProgress != nil {
				onProgress(completed, total)
			}
		}

		if end < total {
			time.Sleep(l.batchDelay)
		}
	}

	out := make([]MatchDetail, total)
	for i, detail := range results {
		out[i] = *detail
	}
	return out, nil
}

// readMatch reads and decodes one match document.
func readMatch(path string) (*MatchData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var data MatchData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}
