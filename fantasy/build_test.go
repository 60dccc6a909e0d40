package fantasy

import (
	"testing"
)

func TestBuildTeamFromCanonical(t *testing.T) {
	canonical := map[string]any{
		"team_key":       "331.l.729.t.1",
		"team_id":        "1",
		"name":           "Legion",
		"waiver_priority": float64(4),
		"team_standings": map[string]any{
			"rank":       "1",
			"points_for": "1409.24",
			"outcome_totals": map[string]any{
				"wins":       "10",
				"losses":     "3",
				"ties":       float64(0),
				"percentage": ".769",
			},
		},
		"managers": []any{
			map[string]any{"nickname": "Sam", "is_commissioner": "1"},
		},
	}
	team, err := Build[Team](canonical)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if team.TeamKey.String() != "331.l.729.t.1" {
		t.Fatalf("team_key = %q", team.TeamKey)
	}
	if team.WaiverPriority.Int() != 4 {
		t.Fatalf("waiver_priority = %d", team.WaiverPriority.Int())
	}
	if team.TeamStandings == nil || team.TeamStandings.Rank.Int() != 1 {
		t.Fatalf("team_standings = %+v", team.TeamStandings)
	}
	ot := team.TeamStandings.OutcomeTotals
	if ot == nil || ot.Wins.Int() != 10 || ot.Percentage.Float64() != 0.769 {
		t.Fatalf("outcome_totals = %+v", ot)
	}
	if len(team.Managers) != 1 || !team.Managers[0].IsCommissioner.Bool() {
		t.Fatalf("managers = %+v", team.Managers)
	}
}

func TestBuildPreservesUnknownKeys(t *testing.T) {
	canonical := map[string]any{
		"team_key":          "331.l.729.t.1",
		"exciting_new_flag": "1",
		"team_standings": map[string]any{
			"rank":          "3",
			"future_metric": float64(42),
		},
	}
	team, err := Build[Team](canonical)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if team.Extra["exciting_new_flag"] != "1" {
		t.Fatalf("top-level unknown key lost: %v", team.Extra)
	}
	if team.TeamStandings == nil {
		t.Fatalf("declared nested entity missing")
	}
	if team.TeamStandings.Extra["future_metric"] != float64(42) {
		t.Fatalf("nested unknown key lost: %v", team.TeamStandings.Extra)
	}
}

func TestBuildExtraNilWhenAllKeysDeclared(t *testing.T) {
	canonical := map[string]any{"team_key": "331.l.729.t.1", "name": "Legion"}
	team, err := Build[Team](canonical)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if team.Extra != nil {
		t.Fatalf("Extra should stay nil, got %v", team.Extra)
	}
}

func TestBuildListOrderAndExtras(t *testing.T) {
	seq := []any{
		map[string]any{"team_id": "1", "mystery": "x"},
		map[string]any{"team_id": "2"},
		map[string]any{"team_id": "3"},
	}
	teams, err := BuildList[Team](seq)
	if err != nil {
		t.Fatalf("BuildList: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("len = %d", len(teams))
	}
	for i, want := range []string{"1", "2", "3"} {
		if teams[i].TeamID.String() != want {
			t.Fatalf("teams[%d].team_id = %q, want %q", i, teams[i].TeamID, want)
		}
	}
	if teams[0].Extra["mystery"] != "x" {
		t.Fatalf("extras lost in list build: %v", teams[0].Extra)
	}
}

func TestBuildFromUnpackedPayload(t *testing.T) {
	// End to end: raw Yahoo shape -> canonical -> typed entity.
	raw := map[string]any{
		"league_key": "331.l.729",
		"league_id":  "729",
		"name":       "Test League",
		"num_teams":  float64(12),
		"standings": map[string]any{
			"teams": map[string]any{
				"0": map[string]any{
					"team": []any{
						map[string]any{"team_key": "331.l.729.t.1"},
						map[string]any{"name": "Legion"},
					},
				},
				"count": float64(1),
			},
		},
	}
	league, err := Build[League](Unpack("league", raw))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if league.LeagueKey.String() != "331.l.729" || league.NumTeams.Int() != 12 {
		t.Fatalf("league = %+v", league)
	}
	if league.Standings == nil || len(league.Standings.Teams) != 1 {
		t.Fatalf("standings = %+v", league.Standings)
	}
	if league.Standings.Teams[0].Name != "Legion" {
		t.Fatalf("standings team = %+v", league.Standings.Teams[0])
	}
}
