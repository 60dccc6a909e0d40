// Command yfq runs fantasy league queries from the terminal and prints the
// result as JSON on stdout. Configuration comes from YF_* environment
// variables; see internal/config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/yfantasy/internal/config"
	"github.com/riskibarqy/yfantasy/internal/platform/cache"
	"github.com/riskibarqy/yfantasy/internal/platform/logging"
	"github.com/riskibarqy/yfantasy/internal/platform/resilience"
	"github.com/riskibarqy/yfantasy/transport"
	"github.com/riskibarqy/yfantasy/yahoo"
)

type command struct {
	args  string
	about string
	run   func(ctx context.Context, client *yahoo.Client, args []string) (any, error)
}

var commands = map[string]command{
	"game-info": {about: "current game with all subresources", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetCurrentGameInfo(ctx)
	}},
	"game-metadata": {about: "current game metadata", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetCurrentGameMetadata(ctx)
	}},
	"game-weeks": {args: "<game_id>", about: "scoring weeks of a game", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetGameWeeksByGameID(ctx, args[0])
	}},
	"stat-categories": {args: "<game_id>", about: "stat definitions of a game", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetGameStatCategoriesByGameID(ctx, args[0])
	}},
	"position-types": {args: "<game_id>", about: "position types of a game", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetGamePositionTypesByGameID(ctx, args[0])
	}},
	"roster-positions": {args: "<game_id>", about: "roster slots of a game", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetGameRosterPositionsByGameID(ctx, args[0])
	}},
	"user": {about: "logged-in user", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetCurrentUser(ctx)
	}},
	"user-games": {about: "user's games, season ascending", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetUserGames(ctx)
	}},
	"user-leagues": {args: "<game_key>", about: "user's leagues in a game", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetUserLeagues(ctx, args[0])
	}},
	"user-teams": {about: "user's games with teams, season ascending", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetUserTeams(ctx)
	}},
	"league-key": {about: "resolved league key", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.LeagueKey(ctx)
	}},
	"league-info": {about: "league with all subresources", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueInfo(ctx)
	}},
	"league-metadata": {about: "league metadata", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueMetadata(ctx)
	}},
	"league-settings": {about: "league settings", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueSettings(ctx)
	}},
	"league-standings": {about: "league table", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueStandings(ctx)
	}},
	"league-teams": {about: "teams of the league", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueTeams(ctx)
	}},
	"league-players": {args: "[limit [start]]", about: "player pool, paged", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		limit, start := 0, 0
		var err error
		if len(args) > 0 {
			if limit, err = strconv.Atoi(args[0]); err != nil {
				return nil, fmt.Errorf("parse limit: %w", err)
			}
		}
		if len(args) > 1 {
			if start, err = strconv.Atoi(args[1]); err != nil {
				return nil, fmt.Errorf("parse start: %w", err)
			}
		}
		players, failures, err := c.GetLeaguePlayers(ctx, limit, start)
		if err != nil {
			return nil, err
		}
		return map[string]any{"players": players, "failures": failures}, nil
	}},
	"league-draft-results": {about: "draft picks of the league", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueDraftResults(ctx)
	}},
	"league-transactions": {about: "transaction history", run: func(ctx context.Context, c *yahoo.Client, _ []string) (any, error) {
		return c.GetLeagueTransactions(ctx)
	}},
	"scoreboard": {args: "<week>", about: "scoreboard of one week", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse week: %w", err)
		}
		return c.GetLeagueScoreboardByWeek(ctx, week)
	}},
	"matchups": {args: "<week>", about: "matchups of one week", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse week: %w", err)
		}
		return c.GetLeagueMatchupsByWeek(ctx, week)
	}},
	"team-info": {args: "<team_id>", about: "team with all subresources", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse team id: %w", err)
		}
		return c.GetTeamInfo(ctx, teamID)
	}},
	"team-stats": {args: "<team_id>", about: "team season points", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse team id: %w", err)
		}
		return c.GetTeamStats(ctx, teamID)
	}},
	"team-stats-week": {args: "<team_id> <week>", about: "scored and projected points of one week", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse team id: %w", err)
		}
		week, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("parse week: %w", err)
		}
		return c.GetTeamStatsByWeek(ctx, teamID, week)
	}},
	"team-standings": {args: "<team_id>", about: "team's place in the table", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse team id: %w", err)
		}
		return c.GetTeamStandings(ctx, teamID)
	}},
	"team-roster": {args: "<team_id> <week>", about: "roster of one week", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse team id: %w", err)
		}
		week, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("parse week: %w", err)
		}
		return c.GetTeamRosterByWeek(ctx, teamID, week)
	}},
	"team-matchups": {args: "<team_id>", about: "matchups of a team's season", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("parse team id: %w", err)
		}
		return c.GetTeamMatchups(ctx, teamID)
	}},
	"player-stats-week": {args: "<player_key> <week>", about: "player stats of one week", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		week, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("parse week: %w", err)
		}
		return c.GetPlayerStatsByWeek(ctx, args[0], week, true)
	}},
	"player-ownership": {args: "<player_key>", about: "player ownership", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetPlayerOwnership(ctx, args[0])
	}},
	"player-draft-analysis": {args: "<player_key>", about: "player draft analysis", run: func(ctx context.Context, c *yahoo.Client, args []string) (any, error) {
		return c.GetPlayerDraftAnalysis(ctx, args[0])
	}},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage()
		os.Exit(2)
	}
	if required := strings.Count(cmd.args, "<"); len(os.Args[2:]) < required {
		fmt.Fprintf(os.Stderr, "usage: yfq %s %s\n", name, cmd.args)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	fetcher := transport.NewHTTPFetcher(transport.HTTPConfig{
		Timeout: cfg.HTTPTimeout,
		Logger:  logger,
		Breaker: resilience.BreakerConfig{
			Enabled:          cfg.CircuitEnabled,
			FailureThreshold: cfg.CircuitFailureCount,
			OpenTimeout:      cfg.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CircuitHalfOpenMaxReq,
		},
	})

	client, err := yahoo.NewClient(yahoo.Config{
		Fetcher:  fetcher,
		Tokens:   transport.StaticToken(cfg.AccessToken),
		BaseURL:  cfg.BaseURL,
		GameCode: cfg.GameCode,
		GameID:   cfg.GameID,
		LeagueID: cfg.LeagueID,
		Retries:  cfg.Retries,
		Backoff:  cfg.Backoff,
		Logger:   logger,
		KeyCache: cache.NewStore(cfg.KeyCacheTTL),
	})
	if err != nil {
		logger.Error("build client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := cmd.run(ctx, client, os.Args[2:])
	if err != nil {
		logger.Error("query failed", "command", name, "error", err)
		os.Exit(1)
	}

	encoded, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: yfq <command> [args]")
	fmt.Fprintln(os.Stderr)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(os.Stderr, "  %-24s %-22s %s\n", name, cmd.args, cmd.about)
	}
}
