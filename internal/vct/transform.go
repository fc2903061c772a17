package vct

import (
	"fmt"
	"time"
)

// teamBlue and teamRed are the only labels that count as participants;
// anything else marks an observer slot.
const (
	teamBlue = "Blue"
	teamRed  = "Red"
)

// Summarize converts a parsed match document into a MatchSummary. Pure; the
// path is only used for region classification.
func Summarize(path string, data *MatchData) MatchSummary {
	teams := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, player := range data.Players {
		if (player.TeamID == teamBlue || player.TeamID == teamRed) && !seen[player.TeamID] {
			teams = append(teams, player.TeamID)
			seen[player.TeamID] = true
		}
	}

	wins := map[string]int{teamBlue: 0, teamRed: 0}
	for _, round := range data.RoundResults {
		if round.WinningTeam != nil {
			wins[*round.WinningTeam]++
		}
	}

	return MatchSummary{
		MatchID:   data.MatchInfo.MatchID,
		Map:       data.MatchInfo.Map,
		Region:    RegionFromPath(path),
		GameStart: gameStartTime(data.MatchInfo.GameStartMillis),
		Teams:     teams,
		Score:     fmt.Sprintf("%d-%d", wins[teamBlue], wins[teamRed]),
	}
}

// Detail converts a parsed match document into a MatchDetail.
func Detail(path string, data *MatchData) MatchDetail {
	players := make([]PlayerStats, 0, len(data.Players))
	for _, player := range data.Players {
		stats := player.Stats
		if stats == nil {
			stats = &MatchPlayerStats{}
		}
		players = append(players, PlayerStats{
			PUUID:        player.PUUID,
			GameName:     player.GameName,
			TagLine:      player.TagLine,
			Agent:        player.CharacterID,
			Team:         player.TeamID,
			TeamID:       player.TeamID,
			Score:        intOrZero(stats.Score),
			Kills:        intOrZero(stats.Kills),
			Deaths:       intOrZero(stats.Deaths),
			Assists:      intOrZero(stats.Assists),
			RoundsPlayed: intOrZero(stats.RoundsPlayed),
			IsObserver:   player.TeamID != teamBlue && player.TeamID != teamRed,
		})
	}

	return MatchDetail{
		MatchID:          data.MatchInfo.MatchID,
		Map:              data.MatchInfo.Map,
		Region:           RegionFromPath(path),
		GameStart:        gameStartTime(data.MatchInfo.GameStartMillis),
		GameLengthMillis: data.MatchInfo.GameLengthMillis,
		RoundsPlayed:     len(data.RoundResults),
		// Round results carry enough to derive this, but the frontend
		// expects the placeholder until heatmap filters grow a winner view.
		WinningTeam: "Unknown",
		Players:     players,
		KillEvents:  extractKillEvents(data.RoundResults),
	}
}

// extractKillEvents flattens round results into kill events, round-major,
// preserving source order. Kills without a victim location are dropped; a
// killer missing from the location snapshot falls back to the origin.
func extractKillEvents(rounds []RoundResult) []KillEvent {
	events := []KillEvent{}
	for _, round := range rounds {
		for _, playerStat := range round.PlayerStats {
			for _, kill := range playerStat.Kills {
				if kill.VictimLocation == nil {
					continue
				}

				var weapon *string
				if kill.FinishingDamage != nil && kill.FinishingDamage.DamageItem != nil {
					if name, ok := WeaponName(*kill.FinishingDamage.DamageItem); ok {
						weapon = &name
					}
				}

				killerLoc := Location{}
				for _, pl := range kill.PlayerLocations {
					if pl.PUUID == kill.Killer {
						killerLoc = pl.Location
						break
					}
				}

				events = append(events, KillEvent{
					KillerPUUID:     kill.Killer,
					VictimPUUID:     kill.Victim,
					Weapon:          weapon,
					KillerLocation:  killerLoc,
					VictimLocation:  *kill.VictimLocation,
					RoundNum:        round.RoundNum,
					RoundTimeMillis: kill.TimeSinceRoundStartMillis,
				})
			}
		}
	}
	return events
}

// intOrZero dereferences an optional stat field, defaulting to 0.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// gameStartTime converts an epoch-millisecond start value to a UTC instant.
// Garbage values (negative or absurdly far in the future) substitute the
// current time instead of failing the whole record.
func gameStartTime(millis int64) time.Time {
	t := time.UnixMilli(millis).UTC()
	if millis < 0 || t.Year() > 9999 {
		return time.Now().UTC()
	}
	return t
}
