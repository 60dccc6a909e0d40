package yahoo

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// Composite keys chain as {game_id}.l.{league_id}.t.{team_id}. The game key
// requires a round trip (or Config.GameID), so derived keys are memoized in
// the client's key cache.

// GameKey resolves the key of the configured game: Config.GameID when pinned,
// otherwise the current season's game for the configured game code.
func (c *Client) GameKey(ctx context.Context) (string, error) {
	if c.gameID != "" {
		return c.gameID, nil
	}
	value, err := c.keys.GetOrLoad(ctx, "game_key:"+c.gameCode, func(ctx context.Context) (any, error) {
		game, err := c.GetCurrentGameMetadata(ctx)
		if err != nil {
			return nil, err
		}
		key := game.GameKey.String()
		if key == "" {
			return nil, crerr.New("current game metadata carries no game key")
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// GameKeyBySeason resolves the game key of the configured game code for a
// specific season, e.g. nfl 2014 -> "331".
func (c *Client) GameKeyBySeason(ctx context.Context, season int) (string, error) {
	cacheKey := fmt.Sprintf("game_key:%s:%d", c.gameCode, season)
	value, err := c.keys.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (any, error) {
		games, err := c.GetGamesByCodeAndSeason(ctx, season)
		if err != nil {
			return nil, err
		}
		if len(games) == 0 {
			return nil, crerr.Newf("no %s game found for season %d", c.gameCode, season)
		}
		return games[0].GameKey.String(), nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// LeagueKey combines the game key with the configured league id.
func (c *Client) LeagueKey(ctx context.Context) (string, error) {
	if c.leagueID == "" {
		return "", crerr.New("league id is not configured")
	}
	gameKey, err := c.GameKey(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.l.%s", gameKey, c.leagueID), nil
}

// LeagueKeyBySeason derives the league key against a historical season.
func (c *Client) LeagueKeyBySeason(ctx context.Context, season int) (string, error) {
	if c.leagueID == "" {
		return "", crerr.New("league id is not configured")
	}
	gameKey, err := c.GameKeyBySeason(ctx, season)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.l.%s", gameKey, c.leagueID), nil
}

// TeamKey scopes a team id to the configured league.
func (c *Client) TeamKey(ctx context.Context, teamID int) (string, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.t.%d", leagueKey, teamID), nil
}
