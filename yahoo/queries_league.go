package yahoo

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/yfantasy/fantasy"
)

const leagueInfoOut = "metadata,settings,standings,scoreboard,teams,players,draftresults,transactions"

// playerPageSize is the largest page the players collection serves reliably.
const playerPageSize = 25

// maxFallbackWindows bounds how many consecutive windows may go through the
// per-player fallback before the retrieval aborts.
const maxFallbackWindows = 4

// GetLeagueInfo retrieves the configured league with all subresources.
func (c *Client) GetLeagueInfo(ctx context.Context) (*fantasy.League, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(seg("league/"+leagueKey, mod("out", leagueInfoOut)))
	return fetchEntity[fantasy.League](ctx, c, url, fantasy.Path("league"), "league")
}

// GetLeagueMetadata retrieves only the league's metadata.
func (c *Client) GetLeagueMetadata(ctx context.Context) (*fantasy.League, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, "metadata")
	return fetchEntity[fantasy.League](ctx, c, url, fantasy.Path("league"), "league")
}

// GetLeagueSettings retrieves the league's configuration.
func (c *Client) GetLeagueSettings(ctx context.Context) (*fantasy.Settings, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, "settings")
	return fetchEntity[fantasy.Settings](ctx, c, url, fantasy.Path("league", "settings"), "settings")
}

// GetLeagueStandings retrieves the league's ranked team table.
func (c *Client) GetLeagueStandings(ctx context.Context) (*fantasy.Standings, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, "standings")
	return fetchEntity[fantasy.Standings](ctx, c, url, fantasy.Path("league", "standings"), "standings")
}

// GetLeagueTeams retrieves the teams of the league.
func (c *Client) GetLeagueTeams(ctx context.Context) ([]fantasy.Team, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, "teams")
	return fetchEntityList[fantasy.Team](ctx, c, url, fantasy.Path("league", "teams"), "team")
}

// GetLeagueDraftResults retrieves the league's draft picks.
func (c *Client) GetLeagueDraftResults(ctx context.Context) ([]fantasy.DraftResult, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, "draftresults")
	return fetchEntityList[fantasy.DraftResult](ctx, c, url, fantasy.Path("league", "draft_results"), "draft_result")
}

// GetLeagueTransactions retrieves the league's transaction history.
func (c *Client) GetLeagueTransactions(ctx context.Context) ([]fantasy.Transaction, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, "transactions")
	return fetchEntityList[fantasy.Transaction](ctx, c, url, fantasy.Path("league", "transactions"), "transaction")
}

// GetLeagueScoreboardByWeek retrieves the scoreboard of one week.
func (c *Client) GetLeagueScoreboardByWeek(ctx context.Context, week int) (*fantasy.Scoreboard, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, seg("scoreboard", mod("week", week)))
	return fetchEntity[fantasy.Scoreboard](ctx, c, url, fantasy.Path("league", "scoreboard"), "scoreboard")
}

// GetLeagueMatchupsByWeek retrieves the matchups of one week.
func (c *Client) GetLeagueMatchupsByWeek(ctx context.Context, week int) ([]fantasy.Matchup, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("league/"+leagueKey, seg("scoreboard", mod("week", week)))
	path := fantasy.Path("league", "scoreboard", "0", "matchups")
	return fetchEntityList[fantasy.Matchup](ctx, c, url, path, "matchup")
}

// PlayerRetrievalFailure records one player slot that could not be fetched
// during the per-player fallback of a paginated retrieval.
type PlayerRetrievalFailure struct {
	Index   int
	URL     string
	Message string
}

// GetLeaguePlayers retrieves the league's player pool in pages of 25,
// starting at start (0-based). limit counts players retrieved from start, not
// an absolute end index: GetLeaguePlayers(ctx, 50, 25) yields up to 50
// players beginning at slot 25. A limit of zero means the whole pool; the end
// of the pool is signalled by the API returning no data for a page.
//
// When a limited window comes back with no data, each slot is refetched
// individually and unreachable slots are reported as failures instead of
// aborting the whole retrieval. Any other window error is fatal.
func (c *Client) GetLeaguePlayers(ctx context.Context, limit, start int) ([]fantasy.Player, []PlayerRetrievalFailure, error) {
	leagueKey, err := c.LeagueKey(ctx)
	if err != nil {
		return nil, nil, err
	}
	if start < 0 {
		start = 0
	}

	var players []fantasy.Player
	var failures []PlayerRetrievalFailure
	fallbackWindows := 0

	for {
		count := playerPageSize
		if limit > 0 {
			remaining := limit - len(players)
			if remaining <= 0 {
				break
			}
			if remaining < count {
				count = remaining
			}
		}

		url := c.buildURL("league/"+leagueKey, seg("players", mod("start", start), mod("count", count)))
		page, err := fetchEntityList[fantasy.Player](ctx, c, url, fantasy.Path("league", "players"), "player")
		switch {
		case err == nil:
			players = append(players, page...)
			start += len(page)
			if len(page) < count {
				return players, failures, nil
			}
			if limit == 0 {
				continue
			}
		case !IsDataNotFound(err):
			// Transport failures, exhausted retries and cancellation are
			// fatal; only a data-not-found window degrades gracefully.
			return players, failures, err
		case limit == 0:
			// Walked off the end of the pool.
			return players, failures, nil
		default:
			fallbackWindows++
			if fallbackWindows > maxFallbackWindows {
				return players, failures, crerr.Wrapf(err, "player retrieval aborted after %d failed windows", fallbackWindows-1)
			}
			page, windowFailures := c.fetchPlayersOneByOne(ctx, leagueKey, start, count)
			players = append(players, page...)
			failures = append(failures, windowFailures...)
			start += count
		}

		if limit > 0 && len(players)+len(failures) >= limit {
			return players, failures, nil
		}
	}

	return players, failures, nil
}

// fetchPlayersOneByOne degrades a failed window to single-player requests so
// one poisoned record cannot sink the batch.
func (c *Client) fetchPlayersOneByOne(ctx context.Context, leagueKey string, start, count int) ([]fantasy.Player, []PlayerRetrievalFailure) {
	var out []fantasy.Player
	var failures []PlayerRetrievalFailure
	for offset := 0; offset < count; offset++ {
		index := start + offset
		url := c.buildURL("league/"+leagueKey, seg("players", mod("start", index), mod("count", 1)))
		page, err := fetchEntityList[fantasy.Player](ctx, c, url, fantasy.Path("league", "players"), "player")
		if err != nil {
			failures = append(failures, PlayerRetrievalFailure{
				Index:   index,
				URL:     url,
				Message: err.Error(),
			})
			c.logger.WarnContext(ctx, "player slot unavailable", "index", index, "error", err)
			continue
		}
		out = append(out, page...)
	}
	return out, failures
}

// GetPlayerKey renders a player key for the configured game, e.g. "331.p.7200".
func (c *Client) GetPlayerKey(ctx context.Context, playerID int) (string, error) {
	gameKey, err := c.GameKey(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.p.%d", gameKey, playerID), nil
}
