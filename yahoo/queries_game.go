package yahoo

import (
	"context"
	"sort"

	"github.com/riskibarqy/yfantasy/fantasy"
)

// gameInfoOut lists the subresources the full game info queries pull in one
// request.
const gameInfoOut = "metadata,players,game_weeks,stat_categories,position_types,roster_positions"

// GetCurrentGameInfo retrieves the current season's game with all
// subresources attached.
func (c *Client) GetCurrentGameInfo(ctx context.Context) (*fantasy.Game, error) {
	url := c.buildURL(seg("game/"+c.gameCode, mod("out", gameInfoOut)))
	return fetchEntity[fantasy.Game](ctx, c, url, fantasy.Path("game"), "game")
}

// GetCurrentGameMetadata retrieves only the current game's metadata.
func (c *Client) GetCurrentGameMetadata(ctx context.Context) (*fantasy.Game, error) {
	url := c.buildURL("game/"+c.gameCode, "metadata")
	return fetchEntity[fantasy.Game](ctx, c, url, fantasy.Path("game"), "game")
}

// GetGameInfoByGameID retrieves a historical game with all subresources.
func (c *Client) GetGameInfoByGameID(ctx context.Context, gameID string) (*fantasy.Game, error) {
	url := c.buildURL(seg("game/"+gameID, mod("out", gameInfoOut)))
	return fetchEntity[fantasy.Game](ctx, c, url, fantasy.Path("game"), "game")
}

// GetGameMetadataByGameID retrieves a historical game's metadata.
func (c *Client) GetGameMetadataByGameID(ctx context.Context, gameID string) (*fantasy.Game, error) {
	url := c.buildURL("game/"+gameID, "metadata")
	return fetchEntity[fantasy.Game](ctx, c, url, fantasy.Path("game"), "game")
}

// GetAllGameKeys retrieves every game key issued for the configured game
// code, sorted by season ascending.
func (c *Client) GetAllGameKeys(ctx context.Context) ([]string, error) {
	url := c.buildURL(seg("games", mod("game_codes", c.gameCode)))
	games, err := fetchEntityList[fantasy.Game](ctx, c, url, fantasy.Path("games"), "game")
	if err != nil {
		return nil, err
	}
	sortGamesBySeason(games)
	keys := make([]string, 0, len(games))
	for _, game := range games {
		keys = append(keys, game.GameKey.String())
	}
	return keys, nil
}

// GetGamesByCodeAndSeason retrieves the games matching the configured game
// code for one season.
func (c *Client) GetGamesByCodeAndSeason(ctx context.Context, season int) ([]fantasy.Game, error) {
	url := c.buildURL(seg("games", mod("game_codes", c.gameCode), mod("seasons", season)))
	return fetchEntityList[fantasy.Game](ctx, c, url, fantasy.Path("games"), "game")
}

// GetGameWeeksByGameID retrieves the scoring weeks of a game.
func (c *Client) GetGameWeeksByGameID(ctx context.Context, gameID string) ([]fantasy.GameWeek, error) {
	url := c.buildURL("game/"+gameID, "game_weeks")
	return fetchEntityList[fantasy.GameWeek](ctx, c, url, fantasy.Path("game", "game_weeks"), "game_week")
}

// GetGameStatCategoriesByGameID retrieves the stat definitions of a game.
func (c *Client) GetGameStatCategoriesByGameID(ctx context.Context, gameID string) (*fantasy.StatCategories, error) {
	url := c.buildURL("game/"+gameID, "stat_categories")
	return fetchEntity[fantasy.StatCategories](ctx, c, url, fantasy.Path("game", "stat_categories"), "stat_categories")
}

// GetGamePositionTypesByGameID retrieves the position types of a game,
// sorted by type code.
func (c *Client) GetGamePositionTypesByGameID(ctx context.Context, gameID string) ([]fantasy.PositionType, error) {
	url := c.buildURL("game/"+gameID, "position_types")
	types, err := fetchEntityList[fantasy.PositionType](ctx, c, url, fantasy.Path("game", "position_types"), "position_type")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(types, func(i, j int) bool { return types[i].Type < types[j].Type })
	return types, nil
}

// GetGameRosterPositionsByGameID retrieves the roster slots of a game.
func (c *Client) GetGameRosterPositionsByGameID(ctx context.Context, gameID string) ([]fantasy.RosterPosition, error) {
	url := c.buildURL("game/"+gameID, "roster_positions")
	return fetchEntityList[fantasy.RosterPosition](ctx, c, url, fantasy.Path("game", "roster_positions"), "roster_position")
}

// GetCurrentUser retrieves the logged-in user.
func (c *Client) GetCurrentUser(ctx context.Context) (*fantasy.User, error) {
	url := c.buildURL(seg("users", mod("use_login", 1)) + "/")
	return fetchEntity[fantasy.User](ctx, c, url, fantasy.Path("users", "0", "user"), "user")
}

// GetUserGames retrieves the user's games for the configured game code,
// sorted by season ascending.
func (c *Client) GetUserGames(ctx context.Context) ([]fantasy.Game, error) {
	url := c.buildURL(seg("users", mod("use_login", 1)), seg("games", mod("game_codes", c.gameCode)))
	games, err := fetchEntityList[fantasy.Game](ctx, c, url, fantasy.Path("users", "0", "user", "games"), "game")
	if err != nil {
		return nil, err
	}
	sortGamesBySeason(games)
	return games, nil
}

// GetUserLeagues retrieves the user's leagues within one game.
func (c *Client) GetUserLeagues(ctx context.Context, gameKey string) ([]fantasy.League, error) {
	url := c.buildURL(
		seg("users", mod("use_login", 1)),
		seg("games", mod("game_keys", gameKey)),
		"leagues/",
	)
	path := fantasy.Path("users", "0", "user", "games", "0", "game", "leagues")
	leagues, err := fetchEntityList[fantasy.League](ctx, c, url, path, "league")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(leagues, func(i, j int) bool {
		return leagues[i].Season.String() < leagues[j].Season.String()
	})
	return leagues, nil
}

// GetUserTeams retrieves the user's games with their teams attached, sorted
// by season ascending.
func (c *Client) GetUserTeams(ctx context.Context) ([]fantasy.Game, error) {
	url := c.buildURL(
		seg("users", mod("use_login", 1)),
		seg("games", mod("game_codes", c.gameCode), mod("out", "teams"))+"/",
	)
	games, err := fetchEntityList[fantasy.Game](ctx, c, url, fantasy.Path("users", "0", "user", "games"), "game")
	if err != nil {
		return nil, err
	}
	sortGamesBySeason(games)
	return games, nil
}

func sortGamesBySeason(games []fantasy.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Season.String() < games[j].Season.String()
	})
}
