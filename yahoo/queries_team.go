package yahoo

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/yfantasy/fantasy"
)

const teamInfoOut = "metadata,stats,standings,roster,draftresults,matchups"

// rosterPlayerOut lists the player subresources attached to roster queries.
const rosterPlayerOut = "metadata,stats,ownership,percent_owned,draft_analysis"

// GetTeamInfo retrieves one team with all subresources attached.
func (c *Client) GetTeamInfo(ctx context.Context, teamID int) (*fantasy.Team, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(seg("team/"+teamKey, mod("out", teamInfoOut)))
	return fetchEntity[fantasy.Team](ctx, c, url, fantasy.Path("team"), "team")
}

// GetTeamMetadata retrieves only a team's metadata.
func (c *Client) GetTeamMetadata(ctx context.Context, teamID int) (*fantasy.Team, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, "metadata")
	return fetchEntity[fantasy.Team](ctx, c, url, fantasy.Path("team"), "team")
}

// GetTeamStats retrieves a team's season point total.
func (c *Client) GetTeamStats(ctx context.Context, teamID int) (*fantasy.TeamPoints, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, "stats")
	return fetchEntity[fantasy.TeamPoints](ctx, c, url, fantasy.Path("team", "team_points"), "team_points")
}

// WeeklyTeamStats pairs a team's scored and projected points for one week.
// The API serves both subtrees in the same response, so they are extracted
// together.
type WeeklyTeamStats struct {
	TeamPoints          *fantasy.TeamPoints
	TeamProjectedPoints *fantasy.TeamProjectedPoints
}

// GetTeamStatsByWeek retrieves a team's scored and projected points for one
// week.
func (c *Client) GetTeamStatsByWeek(ctx context.Context, teamID, week int) (*WeeklyTeamStats, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, seg("stats", mod("type", "week"), mod("week", week)))
	path := fantasy.KeyPath{
		fantasy.Key("team"),
		fantasy.DualKey("team_points", "team_projected_points"),
	}
	value, err := c.getContent(ctx, url, path)
	if err != nil {
		return nil, err
	}
	pair, ok := value.(map[string]any)
	if !ok {
		return nil, crerr.Newf("unexpected weekly stats shape %T", value)
	}
	points, err := fantasy.Build[fantasy.TeamPoints](fantasy.Unpack("team_points", pair["team_points"]))
	if err != nil {
		return nil, err
	}
	projected, err := fantasy.Build[fantasy.TeamProjectedPoints](fantasy.Unpack("team_projected_points", pair["team_projected_points"]))
	if err != nil {
		return nil, err
	}
	return &WeeklyTeamStats{TeamPoints: points, TeamProjectedPoints: projected}, nil
}

// GetTeamStandings retrieves a team's place in the league table.
func (c *Client) GetTeamStandings(ctx context.Context, teamID int) (*fantasy.TeamStandings, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, "standings")
	return fetchEntity[fantasy.TeamStandings](ctx, c, url, fantasy.Path("team", "team_standings"), "team_standings")
}

// GetTeamRosterByWeek retrieves a team's roster for one week.
func (c *Client) GetTeamRosterByWeek(ctx context.Context, teamID, week int) (*fantasy.Roster, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, seg("roster", mod("week", week)))
	return fetchEntity[fantasy.Roster](ctx, c, url, fantasy.Path("team", "roster"), "roster")
}

// GetTeamRosterPlayerInfoByWeek retrieves a week's roster with full player
// detail.
func (c *Client) GetTeamRosterPlayerInfoByWeek(ctx context.Context, teamID, week int) ([]fantasy.Player, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(
		"team/"+teamKey,
		seg("roster", mod("week", week)),
		seg("players", mod("out", rosterPlayerOut)),
	)
	path := fantasy.Path("team", "roster", "0", "players")
	return fetchEntityList[fantasy.Player](ctx, c, url, path, "player")
}

// GetTeamRosterPlayerInfoByDate retrieves a date's roster with full player
// detail. Dates apply to games with daily rosters; date is YYYY-MM-DD.
func (c *Client) GetTeamRosterPlayerInfoByDate(ctx context.Context, teamID int, date string) ([]fantasy.Player, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(
		"team/"+teamKey,
		seg("roster", mod("date", date)),
		seg("players", mod("out", rosterPlayerOut)),
	)
	path := fantasy.Path("team", "roster", "0", "players")
	return fetchEntityList[fantasy.Player](ctx, c, url, path, "player")
}

// GetTeamRosterPlayerStats retrieves season stats for every player on a
// team's roster.
func (c *Client) GetTeamRosterPlayerStats(ctx context.Context, teamID int) ([]fantasy.Player, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, "roster", "players", seg("stats", mod("type", "season")))
	path := fantasy.Path("team", "roster", "0", "players")
	return fetchEntityList[fantasy.Player](ctx, c, url, path, "player")
}

// GetTeamRosterPlayerStatsByWeek retrieves one week's stats for every player
// on a team's roster.
func (c *Client) GetTeamRosterPlayerStatsByWeek(ctx context.Context, teamID, week int) ([]fantasy.Player, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL(
		"team/"+teamKey,
		seg("roster", mod("week", week)),
		"players",
		seg("stats", mod("type", "week"), mod("week", week)),
	)
	path := fantasy.Path("team", "roster", "0", "players")
	return fetchEntityList[fantasy.Player](ctx, c, url, path, "player")
}

// GetTeamDraftResults retrieves a team's draft picks.
func (c *Client) GetTeamDraftResults(ctx context.Context, teamID int) ([]fantasy.DraftResult, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, "draftresults")
	return fetchEntityList[fantasy.DraftResult](ctx, c, url, fantasy.Path("team", "draft_results"), "draft_result")
}

// GetTeamMatchups retrieves every matchup of a team's season.
func (c *Client) GetTeamMatchups(ctx context.Context, teamID int) ([]fantasy.Matchup, error) {
	teamKey, err := c.TeamKey(ctx, teamID)
	if err != nil {
		return nil, err
	}
	url := c.buildURL("team/"+teamKey, "matchups")
	return fetchEntityList[fantasy.Matchup](ctx, c, url, fantasy.Path("team", "matchups"), "matchup")
}
