package fantasy

import (
	"reflect"
	"testing"
)

func TestIsIndexedSequence(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
		want bool
	}{
		{
			name: "consecutive numeric keys",
			in:   map[string]any{"0": "a", "1": "b", "2": "c"},
			want: true,
		},
		{
			name: "count sibling ignored",
			in:   map[string]any{"0": "a", "1": "b", "count": float64(2)},
			want: true,
		},
		{
			name: "gap in indices",
			in:   map[string]any{"0": "a", "2": "c"},
			want: false,
		},
		{
			name: "non numeric key",
			in:   map[string]any{"0": "a", "team_key": "331.l.729"},
			want: false,
		},
		{
			name: "empty map",
			in:   map[string]any{},
			want: false,
		},
		{
			name: "only count",
			in:   map[string]any{"count": float64(0)},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isIndexedSequence(tc.in); got != tc.want {
				t.Fatalf("isIndexedSequence(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSequenceFromIndexedPreservesOrder(t *testing.T) {
	in := map[string]any{
		"2":     "third",
		"0":     "first",
		"1":     "second",
		"count": float64(3),
	}
	got := sequenceFromIndexed(in)
	want := []any{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sequenceFromIndexed = %v, want %v", got, want)
	}
}

func TestReformatListLastNonEmptyWins(t *testing.T) {
	in := []any{
		map[string]any{"name": "Team Alpha"},
		map[string]any{"url": ""},
		map[string]any{"name": "Team Beta"},
		map[string]any{"name": ""},
	}
	got := ReformatList(in)
	if got["name"] != "Team Beta" {
		t.Fatalf("name = %q, want %q", got["name"], "Team Beta")
	}
	if got["url"] != "" {
		t.Fatalf("url = %v, want empty string placeholder", got["url"])
	}
}

func TestReformatListEmptyOnlyWhenAbsent(t *testing.T) {
	in := []any{
		map[string]any{"logo_url": "http://example.com/logo.png"},
		map[string]any{"logo_url": ""},
	}
	got := ReformatList(in)
	if got["logo_url"] != "http://example.com/logo.png" {
		t.Fatalf("empty value displaced a non-empty one: %v", got["logo_url"])
	}
}

func TestReformatListFlattensNestedLists(t *testing.T) {
	in := []any{
		[]any{
			map[string]any{"team_key": "331.l.729.t.1"},
			map[string]any{"team_id": "1"},
		},
		map[string]any{"name": "Legion"},
	}
	got := ReformatList(in)
	if got["team_key"] != "331.l.729.t.1" || got["team_id"] != "1" || got["name"] != "Legion" {
		t.Fatalf("flatten+merge produced %v", got)
	}
}

func TestUnpackWrapperListToMergedObject(t *testing.T) {
	// A team arrives as a list of single-key fragments; unpacking with a
	// scalar target merges them into one mapping.
	raw := []any{
		map[string]any{"team_key": "331.l.729.t.1"},
		map[string]any{"team_id": "1"},
		map[string]any{"name": "Legion"},
	}
	got, ok := Unpack("team", raw).(map[string]any)
	if !ok {
		t.Fatalf("Unpack returned %T, want map", got)
	}
	if got["team_key"] != "331.l.729.t.1" || got["name"] != "Legion" {
		t.Fatalf("merged team = %v", got)
	}
}

func TestUnpackCollectionUnwrapsSingularWrappers(t *testing.T) {
	raw := map[string]any{
		"teams": map[string]any{
			"0": map[string]any{
				"team": []any{
					map[string]any{"team_key": "331.l.729.t.1"},
					map[string]any{"name": "Legion"},
				},
			},
			"1": map[string]any{
				"team": []any{
					map[string]any{"team_key": "331.l.729.t.2"},
					map[string]any{"name": "Crusaders"},
				},
			},
			"count": float64(2),
		},
	}
	got, ok := Unpack("standings", raw).(map[string]any)
	if !ok {
		t.Fatalf("Unpack returned %T, want map", got)
	}
	teams, ok := got["teams"].([]any)
	if !ok {
		t.Fatalf("teams is %T, want sequence", got["teams"])
	}
	if len(teams) != 2 {
		t.Fatalf("len(teams) = %d, want 2", len(teams))
	}
	first, ok := teams[0].(map[string]any)
	if !ok {
		t.Fatalf("teams[0] is %T, want bare map", teams[0])
	}
	if first["team_key"] != "331.l.729.t.1" {
		t.Fatalf("teams[0].team_key = %v", first["team_key"])
	}
	if _, stillWrapped := first["team"]; stillWrapped {
		t.Fatalf("teams[0] kept its singular wrapper: %v", first)
	}
	second := teams[1].(map[string]any)
	if second["name"] != "Crusaders" {
		t.Fatalf("order not preserved: teams[1] = %v", second)
	}
}

func TestUnpackNestedEntityRecursion(t *testing.T) {
	raw := map[string]any{
		"team_key": "331.l.729.t.1",
		"team_standings": map[string]any{
			"rank": "1",
			"outcome_totals": map[string]any{
				"wins":   "10",
				"losses": "3",
			},
		},
		"managers": map[string]any{
			"0":     map[string]any{"manager": map[string]any{"nickname": "Sam"}},
			"count": float64(1),
		},
	}
	got := Unpack("team", raw).(map[string]any)
	standings, ok := got["team_standings"].(map[string]any)
	if !ok {
		t.Fatalf("team_standings is %T", got["team_standings"])
	}
	if standings["rank"] != "1" {
		t.Fatalf("rank = %v", standings["rank"])
	}
	managers, ok := got["managers"].([]any)
	if !ok || len(managers) != 1 {
		t.Fatalf("managers = %v", got["managers"])
	}
	if managers[0].(map[string]any)["nickname"] != "Sam" {
		t.Fatalf("managers[0] = %v", managers[0])
	}
}

func TestUnpackScalarListKeepsBareValues(t *testing.T) {
	raw := map[string]any{
		"player_key": "331.p.8479",
		"eligible_positions": []any{
			map[string]any{"position": "WR"},
			map[string]any{"position": "W/R/T"},
		},
	}
	got := Unpack("player", raw).(map[string]any)
	positions, ok := got["eligible_positions"].([]any)
	if !ok {
		t.Fatalf("eligible_positions is %T", got["eligible_positions"])
	}
	want := []any{"WR", "W/R/T"}
	if !reflect.DeepEqual(positions, want) {
		t.Fatalf("eligible_positions = %v, want %v", positions, want)
	}
}

func TestUnpackUnknownEntityPassthrough(t *testing.T) {
	raw := map[string]any{
		"anything": map[string]any{
			"0":     "a",
			"1":     "b",
			"count": float64(2),
		},
	}
	got := Unpack("", raw).(map[string]any)
	seq, ok := got["anything"].([]any)
	if !ok {
		t.Fatalf("pseudo-list not normalized: %T", got["anything"])
	}
	if !reflect.DeepEqual(seq, []any{"a", "b"}) {
		t.Fatalf("normalized sequence = %v", seq)
	}
}

func TestUnpackDoesNotMutateInput(t *testing.T) {
	raw := map[string]any{
		"teams": map[string]any{
			"0":     map[string]any{"team": map[string]any{"team_id": "1"}},
			"count": float64(1),
		},
	}
	Unpack("league", raw)
	inner, ok := raw["teams"].(map[string]any)
	if !ok {
		t.Fatalf("input collection was replaced: %T", raw["teams"])
	}
	if _, ok := inner["0"]; !ok {
		t.Fatalf("input pseudo-list was mutated: %v", inner)
	}
}

func TestElementKey(t *testing.T) {
	if got := ElementKey("teams"); got != "team" {
		t.Fatalf("ElementKey(teams) = %q", got)
	}
	if got := ElementKey("game_weeks"); got != "game_week" {
		t.Fatalf("ElementKey(game_weeks) = %q", got)
	}
}
