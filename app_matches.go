package main

import (
	"soupheatmap/internal/vct"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// LoadMatches parses every match file under folderPath into summaries and
// rebuilds the match index for fast detail lookups.
func (a *App) LoadMatches(folderPath string) ([]vct.MatchSummary, error) {
	summaries, err := a.loader.LoadSummaries(folderPath, nil)
	if err != nil {
		return nil, err
	}
	if err := a.loader.RebuildIndex(folderPath); err != nil {
		a.log.Warn().Err(err).Msg("match index rebuild failed, lookups will rescan")
	}
	return summaries, nil
}

// LoadMatchesWithProgress is LoadMatches with progress pushed to the
// frontend as "load:progress" events.
func (a *App) LoadMatchesWithProgress(folderPath string) ([]vct.MatchSummary, error) {
	summaries, err := a.loader.LoadSummaries(folderPath, func(processed, total int) {
		runtime.EventsEmit(a.ctx, "load:progress", map[string]interface{}{
			"processed": processed,
			"total":     total,
		})
	})
	if err != nil {
		return nil, err
	}
	if err := a.loader.RebuildIndex(folderPath); err != nil {
		a.log.Warn().Err(err).Msg("match index rebuild failed, lookups will rescan")
	}
	return summaries, nil
}

// GetMatchDetail returns one match's full detail by identifier.
func (a *App) GetMatchDetail(folderPath string, matchID string) (*vct.MatchDetail, error) {
	return a.loader.GetDetail(folderPath, matchID)
}

// GetMultipleMatchDetails loads many match details in controlled batches.
// Results come back in the same order as matchIDs.
func (a *App) GetMultipleMatchDetails(folderPath string, matchIDs []string) ([]vct.MatchDetail, error) {
	return a.loader.GetDetails(folderPath, matchIDs, a.batchSize, nil)
}

// GetMultipleMatchDetailsWithProgress is GetMultipleMatchDetails with
// per-item progress pushed to the frontend as "details:progress" events.
func (a *App) GetMultipleMatchDetailsWithProgress(folderPath string, matchIDs []string) ([]vct.MatchDetail, error) {
	return a.loader.GetDetails(folderPath, matchIDs, a.batchSize, func(loaded, total int) {
		runtime.EventsEmit(a.ctx, "details:progress", map[string]interface{}{
			"loaded": loaded,
			"total":  total,
		})
	})
}
