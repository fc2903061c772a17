package vct

import "time"

// Location is an (x, y) position in map coordinate space.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MatchSummary is the lightweight per-match record used by list views.
type MatchSummary struct {
	MatchID   string    `json:"match_id"`
	Map       string    `json:"map"`
	Region    string    `json:"region"`
	GameStart time.Time `json:"game_start"`
	Teams     []string  `json:"teams"`
	Score     string    `json:"score"`
}

// PlayerStats holds one player's aggregate numbers for a match.
type PlayerStats struct {
	PUUID        string  `json:"puuid"`
	GameName     string  `json:"game_name"`
	TagLine      string  `json:"tag_line"`
	Agent        *string `json:"agent"`
	Team         string  `json:"team"`
	TeamID       string  `json:"team_id"`
	Score        int     `json:"score"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	RoundsPlayed int     `json:"rounds_played"`
	IsObserver   bool    `json:"is_observer"`
}

// KillEvent is a single kill with positions for heatmap rendering.
type KillEvent struct {
	KillerPUUID     string   `json:"killer_puuid"`
	VictimPUUID     string   `json:"victim_puuid"`
	Weapon          *string  `json:"weapon"`
	KillerLocation  Location `json:"killer_location"`
	VictimLocation  Location `json:"victim_location"`
	RoundNum        int      `json:"round_num"`
	RoundTimeMillis int      `json:"round_time_millis"`
}

// MatchDetail is the full per-match record including spatial kill data.
type MatchDetail struct {
	MatchID          string        `json:"match_id"`
	Map              string        `json:"map"`
	Region           string        `json:"region"`
	GameStart        time.Time     `json:"game_start"`
	GameLengthMillis int64         `json:"game_length_millis"`
	RoundsPlayed     int           `json:"rounds_played"`
	WinningTeam      string        `json:"winning_team"`
	Players          []PlayerStats `json:"players"`
	KillEvents       []KillEvent   `json:"kill_events"`
}

// MatchData is the raw shape of one VCT match document as it appears on disk.
type MatchData struct {
	MatchInfo    MatchInfo     `json:"matchInfo"`
	Players      []MatchPlayer `json:"players"`
	RoundResults []RoundResult `json:"roundResults"`
}

// MatchInfo is the match-level metadata block.
type MatchInfo struct {
	MatchID          string `json:"matchId"`
	Map              string `json:"map"`
	GameStartMillis  int64  `json:"gameStartMillis"`
	GameLengthMillis int64  `json:"gameLengthMillis"`
}

// MatchPlayer is one raw player entry.
type MatchPlayer struct {
	PUUID       string            `json:"puuid"`
	GameName    string            `json:"gameName"`
	TagLine     string            `json:"tagLine"`
	CharacterID *string           `json:"characterId"`
	TeamID      string            `json:"teamId"`
	Stats       *MatchPlayerStats `json:"stats"`
}

// MatchPlayerStats is the optional per-player stats block. Every field is
// optional in the wild, so each one is a pointer that defaults to zero.
type MatchPlayerStats struct {
	Score        *int `json:"score"`
	Kills        *int `json:"kills"`
	Deaths       *int `json:"deaths"`
	Assists      *int `json:"assists"`
	RoundsPlayed *int `json:"roundsPlayed"`
}

// RoundResult is one round's outcome, including every kill in it.
type RoundResult struct {
	RoundNum    int                `json:"roundNum"`
	WinningTeam *string            `json:"winningTeam"`
	PlayerStats []PlayerRoundStats `json:"playerStats"`
}

// PlayerRoundStats is one player's share of a round result.
type PlayerRoundStats struct {
	PUUID string `json:"puuid"`
	Kills []Kill `json:"kills"`
}

// Kill is a raw kill record inside a round result.
type Kill struct {
	Killer                    string           `json:"killer"`
	Victim                    string           `json:"victim"`
	FinishingDamage           *FinishingDamage `json:"finishingDamage"`
	KillerLocation            *Location        `json:"killerLocation"`
	VictimLocation            *Location        `json:"victimLocation"`
	TimeSinceRoundStartMillis int              `json:"timeSinceRoundStartMillis"`
	PlayerLocations           []PlayerLocation `json:"playerLocations"`
}

// FinishingDamage identifies what dealt the killing blow.
type FinishingDamage struct {
	DamageItem *string `json:"damageItem"`
}

// PlayerLocation is one entry of the all-players position snapshot taken at
// kill time.
type PlayerLocation struct {
	PUUID    string   `json:"puuid"`
	Location Location `json:"location"`
}
