package yahoo

import (
	"context"

	"github.com/riskibarqy/yfantasy/fantasy"
)

// Player queries address one player by key. Stats queries take a
// limitToLeague flag: with it the values reflect the league's scoring
// settings, without it the query runs game-wide against the global players
// resource.

func (c *Client) leaguePlayerPath() fantasy.KeyPath {
	return fantasy.Path("league", "players", "0", "player")
}

// fetchPlayerStats runs a stats query in either league or game-wide scope.
func (c *Client) fetchPlayerStats(ctx context.Context, playerKey string, limitToLeague bool, statsSegment string) (*fantasy.Player, error) {
	if limitToLeague {
		leagueKey, err := c.LeagueKey(ctx)
		if err != nil {
			return nil, err
		}
		url := c.buildURL(
			"league/"+leagueKey,
			seg("players", mod("player_keys", playerKey)),
			statsSegment,
		)
		return fetchEntity[fantasy.Player](ctx, c, url, c.leaguePlayerPath(), "player")
	}

	url := c.buildURL(seg("players", mod("player_keys", playerKey)), statsSegment)
	return fetchEntity[fantasy.Player](ctx, c, url, fantasy.Path("players", "0", "player"), "player")
}

// GetPlayerStatsByWeek retrieves a player's stats for one week.
func (c *Client) GetPlayerStatsByWeek(ctx context.Context, playerKey string, week int, limitToLeague bool) (*fantasy.Player, error) {
	return c.fetchPlayerStats(ctx, playerKey, limitToLeague, seg("stats", mod("type", "week"), mod("week", week)))
}

// GetPlayerStatsByDate retrieves a player's stats for one date (YYYY-MM-DD).
// Dates apply to games with daily scoring.
func (c *Client) GetPlayerStatsByDate(ctx context.Context, playerKey string, date string, limitToLeague bool) (*fantasy.Player, error) {
	return c.fetchPlayerStats(ctx, playerKey, limitToLeague, seg("stats", mod("type", "date"), mod("date", date)))
}

// GetPlayerStatsForSeason retrieves a player's season stats.
func (c *Client) GetPlayerStatsForSeason(ctx context.Context, playerKey string, limitToLeague bool) (*fantasy.Player, error) {
	return c.fetchPlayerStats(ctx, playerKey, limitToLeague, "stats")
}

// GetPlayerOwnership retrieves which team, if any, owns a player.
func (c *Client) GetPlayerOwnership(ctx context.Context, playerKey string) (*fantasy.Player, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(
		"league/"+leagueKey,
		seg("players", mod("player_keys", playerKey)),
		"ownership",
	)
	return fetchEntity[fantasy.Player](ctx, c, url, c.leaguePlayerPath(), "player")
}

// GetPlayerPercentOwnedByWeek retrieves a player's league-wide ownership
// share for one week.
func (c *Client) GetPlayerPercentOwnedByWeek(ctx context.Context, playerKey string, week int) (*fantasy.Player, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(
		"league/"+leagueKey,
		seg("players", mod("player_keys", playerKey)),
		seg("percent_owned", mod("type", "week"), mod("week", week)),
	)
	return fetchEntity[fantasy.Player](ctx, c, url, c.leaguePlayerPath(), "player")
}

// GetPlayerDraftAnalysis retrieves a player's draft analysis aggregates.
func (c *Client) GetPlayerDraftAnalysis(ctx context.Context, playerKey string) (*fantasy.Player, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(
		"league/"+leagueKey,
		seg("players", mod("player_keys", playerKey)),
		"draft_analysis",
	)
	return fetchEntity[fantasy.Player](ctx, c, url, c.leaguePlayerPath(), "player")
}
