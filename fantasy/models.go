package fantasy

// Every entity mirrors one Yahoo JSON subtree after canonicalization. Field
// presence is optional per instance: different endpoints populate different
// subsets, and absent fields stay zero-valued. Unknown keys land on Extra.
//
// *_key fields are stable composite identifiers in the form
// {game_id}.l.{league_id}.t.{team_id} and are never rewritten after
// construction.

// Game identifies one sport/season instance.
type Game struct {
	GameKey               FlexString `json:"game_key"`
	GameID                FlexString `json:"game_id"`
	Name                  string     `json:"name"`
	Code                  string     `json:"code"`
	Type                  string     `json:"type"`
	URL                   string     `json:"url"`
	Season                FlexString `json:"season"`
	IsRegistrationOver    FlexBool   `json:"is_registration_over"`
	IsGameOver            FlexBool   `json:"is_game_over"`
	IsOffseason           FlexBool   `json:"is_offseason"`
	IsLiveDraftLobbyActive FlexBool  `json:"is_live_draft_lobby_active"`
	GameWeeks             []GameWeek `json:"game_weeks"`
	StatCategories        *StatCategories `json:"stat_categories"`
	PositionTypes         []PositionType  `json:"position_types"`
	RosterPositions       []RosterPosition `json:"roster_positions"`
	Leagues               []League   `json:"leagues"`
	Teams                 []Team     `json:"teams"`
	Players               []Player   `json:"players"`

	Extra map[string]any `json:"-"`
}

// GameWeek is one scoring week of a game.
type GameWeek struct {
	Week        FlexString `json:"week"`
	DisplayName string     `json:"display_name"`
	Start       string     `json:"start"`
	End         string     `json:"end"`

	Extra map[string]any `json:"-"`
}

// PositionType is a coarse position class, e.g. O (offense) or K (kickers).
type PositionType struct {
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`

	Extra map[string]any `json:"-"`
}

// RosterPosition is one slot of a roster layout.
type RosterPosition struct {
	Position       string     `json:"position"`
	PositionType   string     `json:"position_type"`
	Abbreviation   string     `json:"abbreviation"`
	DisplayName    string     `json:"display_name"`
	Count          FlexInt    `json:"count"`
	IsBench        FlexBool   `json:"is_bench"`
	IsStartingPosition FlexBool `json:"is_starting_position"`

	Extra map[string]any `json:"-"`
}

// StatCategories groups the stat definitions of a game or league.
type StatCategories struct {
	Stats  []Stat  `json:"stats"`
	Groups []Group `json:"groups"`

	Extra map[string]any `json:"-"`
}

// Group is a display grouping of stat categories.
type Group struct {
	GroupName        string `json:"group_name"`
	GroupDisplayName string `json:"group_display_name"`
	GroupAbbr        string `json:"group_abbr"`

	Extra map[string]any `json:"-"`
}

// Stat is one stat definition, or one stat value when attached to player or
// team stat lines.
type Stat struct {
	StatID            FlexInt    `json:"stat_id"`
	Name              string     `json:"name"`
	DisplayName       string     `json:"display_name"`
	Abbr              string     `json:"abbr"`
	Group             string     `json:"group"`
	SortOrder         FlexString `json:"sort_order"`
	PositionType      string     `json:"position_type"`
	PositionTypes     []FlexString `json:"position_types"`
	StatPositionTypes []StatPositionType `json:"stat_position_types"`
	Enabled           FlexBool   `json:"enabled"`
	IsOnlyDisplayStat FlexBool   `json:"is_only_display_stat"`
	IsExcludedFromDisplay FlexBool `json:"is_excluded_from_display"`
	Value             FlexString `json:"value"`

	Extra map[string]any `json:"-"`
}

// StatPositionType scopes a stat definition to a position type.
type StatPositionType struct {
	PositionType      string   `json:"position_type"`
	IsOnlyDisplayStat FlexBool `json:"is_only_display_stat"`

	Extra map[string]any `json:"-"`
}

// User is the logged-in Yahoo user.
type User struct {
	GUID    string   `json:"guid"`
	Games   []Game   `json:"games"`
	Leagues []League `json:"leagues"`
	Teams   []Team   `json:"teams"`

	Extra map[string]any `json:"-"`
}

// League is one contest instance within a game.
type League struct {
	LeagueKey             FlexString `json:"league_key"`
	LeagueID              FlexString `json:"league_id"`
	Name                  string     `json:"name"`
	URL                   string     `json:"url"`
	LogoURL               FlexString `json:"logo_url"`
	Password              FlexString `json:"password"`
	DraftStatus           string     `json:"draft_status"`
	NumTeams              FlexInt    `json:"num_teams"`
	EditKey               FlexString `json:"edit_key"`
	WeeklyDeadline        FlexString `json:"weekly_deadline"`
	LeagueUpdateTimestamp FlexString `json:"league_update_timestamp"`
	ScoringType           string     `json:"scoring_type"`
	LeagueType            string     `json:"league_type"`
	Renew                 FlexString `json:"renew"`
	Renewed               FlexString `json:"renewed"`
	IrisGroupChatID       FlexString `json:"iris_group_chat_id"`
	ShortInvitationURL    FlexString `json:"short_invitation_url"`
	AllowAddToDLExtraPos  FlexBool   `json:"allow_add_to_dl_extra_pos"`
	IsProLeague           FlexBool   `json:"is_pro_league"`
	IsCashLeague          FlexBool   `json:"is_cash_league"`
	CurrentWeek           FlexString `json:"current_week"`
	StartWeek             FlexString `json:"start_week"`
	StartDate             string     `json:"start_date"`
	EndWeek               FlexString `json:"end_week"`
	EndDate               string     `json:"end_date"`
	GameCode              string     `json:"game_code"`
	IsFinished            FlexBool   `json:"is_finished"`
	Season                FlexString `json:"season"`
	Settings              *Settings  `json:"settings"`
	Standings             *Standings `json:"standings"`
	Scoreboard            *Scoreboard `json:"scoreboard"`
	Teams                 []Team     `json:"teams"`
	Players               []Player   `json:"players"`
	DraftResults          []DraftResult `json:"draft_results"`
	Transactions          []Transaction `json:"transactions"`

	Extra map[string]any `json:"-"`
}

// Settings is the configuration block of a league.
type Settings struct {
	DraftType                  string     `json:"draft_type"`
	IsAuctionDraft             FlexBool   `json:"is_auction_draft"`
	ScoringType                string     `json:"scoring_type"`
	UsesPlayoff                FlexBool   `json:"uses_playoff"`
	HasPlayoffConsolationGames FlexBool   `json:"has_playoff_consolation_games"`
	PlayoffStartWeek           FlexString `json:"playoff_start_week"`
	UsesPlayoffReseeding       FlexBool   `json:"uses_playoff_reseeding"`
	UsesLockEliminatedTeams    FlexBool   `json:"uses_lock_eliminated_teams"`
	NumPlayoffTeams            FlexInt    `json:"num_playoff_teams"`
	NumPlayoffConsolationTeams FlexInt    `json:"num_playoff_consolation_teams"`
	HasMultiweekChampionship   FlexBool   `json:"has_multiweek_championship"`
	UsesRosterImport           FlexBool   `json:"uses_roster_import"`
	RosterImportDeadline       string     `json:"roster_import_deadline"`
	WaiverType                 string     `json:"waiver_type"`
	WaiverRule                 string     `json:"waiver_rule"`
	UsesFAAB                   FlexBool   `json:"uses_faab"`
	DraftTime                  FlexString `json:"draft_time"`
	DraftPickTime              FlexString `json:"draft_pick_time"`
	PostDraftPlayers           string     `json:"post_draft_players"`
	MaxTeams                   FlexInt    `json:"max_teams"`
	WaiverTime                 FlexString `json:"waiver_time"`
	TradeEndDate               string     `json:"trade_end_date"`
	TradeRatifyType            string     `json:"trade_ratify_type"`
	TradeRejectTime            FlexString `json:"trade_reject_time"`
	PlayerPool                 string     `json:"player_pool"`
	CantCutList                string     `json:"cant_cut_list"`
	CanTradeDraftPicks         FlexBool   `json:"can_trade_draft_picks"`
	SendbirdChannelURL         string     `json:"sendbird_channel_url"`
	RosterPositions            []RosterPosition `json:"roster_positions"`
	StatCategories             *StatCategories  `json:"stat_categories"`
	StatModifiers              *StatModifiers   `json:"stat_modifiers"`
	Divisions                  []Division       `json:"divisions"`

	Extra map[string]any `json:"-"`
}

// StatModifiers holds the scoring modifiers of a league.
type StatModifiers struct {
	Stats []Stat `json:"stats"`

	Extra map[string]any `json:"-"`
}

// Division is one division of a divisional league.
type Division struct {
	DivisionID FlexInt `json:"division_id"`
	Name       string  `json:"name"`

	Extra map[string]any `json:"-"`
}

// Standings is the ranked team table of a league.
type Standings struct {
	Teams []Team `json:"teams"`

	Extra map[string]any `json:"-"`
}

// Scoreboard is the matchup set of one league week.
type Scoreboard struct {
	Week     FlexString `json:"week"`
	Matchups []Matchup  `json:"matchups"`

	Extra map[string]any `json:"-"`
}

// Matchup is one head-to-head pairing of a week.
type Matchup struct {
	Week                     FlexString `json:"week"`
	WeekStart                string     `json:"week_start"`
	WeekEnd                  string     `json:"week_end"`
	Status                   string     `json:"status"`
	IsPlayoffs               FlexBool   `json:"is_playoffs"`
	IsConsolation            FlexBool   `json:"is_consolation"`
	IsMatchupRecapAvailable  FlexBool   `json:"is_matchup_recap_available"`
	MatchupRecapURL          string     `json:"matchup_recap_url"`
	MatchupRecapTitle        string     `json:"matchup_recap_title"`
	IsTied                   FlexBool   `json:"is_tied"`
	WinnerTeamKey            FlexString `json:"winner_team_key"`
	MatchupGrades            []MatchupGrade `json:"matchup_grades"`
	Teams                    []Team     `json:"teams"`

	Extra map[string]any `json:"-"`
}

// MatchupGrade is Yahoo's letter grade for one team's week.
type MatchupGrade struct {
	TeamKey FlexString `json:"team_key"`
	Grade   string     `json:"grade"`

	Extra map[string]any `json:"-"`
}

// Team is one participant in a league.
type Team struct {
	TeamKey                 FlexString `json:"team_key"`
	TeamID                  FlexString `json:"team_id"`
	Name                    string     `json:"name"`
	IsOwnedByCurrentLogin   FlexBool   `json:"is_owned_by_current_login"`
	URL                     string     `json:"url"`
	TeamLogos               []TeamLogo `json:"team_logos"`
	WaiverPriority          FlexInt    `json:"waiver_priority"`
	FAABBalance             FlexString `json:"faab_balance"`
	NumberOfMoves           FlexInt    `json:"number_of_moves"`
	NumberOfTrades          FlexInt    `json:"number_of_trades"`
	RosterAdds              *RosterAdds `json:"roster_adds"`
	ClinchedPlayoffs        FlexBool   `json:"clinched_playoffs"`
	LeagueScoringType       string     `json:"league_scoring_type"`
	HasDraftGrade           FlexBool   `json:"has_draft_grade"`
	DraftGrade              string     `json:"draft_grade"`
	DraftRecapURL           string     `json:"draft_recap_url"`
	DivisionID              FlexString `json:"division_id"`
	Managers                []Manager  `json:"managers"`
	Roster                  *Roster    `json:"roster"`
	TeamPoints              *TeamPoints `json:"team_points"`
	TeamProjectedPoints     *TeamProjectedPoints `json:"team_projected_points"`
	TeamStandings           *TeamStandings `json:"team_standings"`
	Matchups                []Matchup  `json:"matchups"`
	DraftResults            []DraftResult `json:"draft_results"`

	Extra map[string]any `json:"-"`
}

// TeamLogo is one logo rendition of a team.
type TeamLogo struct {
	Size string `json:"size"`
	URL  string `json:"url"`

	Extra map[string]any `json:"-"`
}

// RosterAdds counts roster moves within a coverage window.
type RosterAdds struct {
	CoverageType  string     `json:"coverage_type"`
	CoverageValue FlexString `json:"coverage_value"`
	Value         FlexInt    `json:"value"`

	Extra map[string]any `json:"-"`
}

// Manager is one manager of a team.
type Manager struct {
	ManagerID      FlexString `json:"manager_id"`
	Nickname       string     `json:"nickname"`
	GUID           string     `json:"guid"`
	IsCommissioner FlexBool   `json:"is_commissioner"`
	IsCurrentLogin FlexBool   `json:"is_current_login"`
	IsComanager    FlexBool   `json:"is_comanager"`
	Email          string     `json:"email"`
	ImageURL       string     `json:"image_url"`
	FeloScore      FlexInt    `json:"felo_score"`
	FeloTier       string     `json:"felo_tier"`

	Extra map[string]any `json:"-"`
}

// TeamPoints is a team's scored points over a coverage window.
type TeamPoints struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Season       FlexString `json:"season"`
	Total        FlexFloat  `json:"total"`

	Extra map[string]any `json:"-"`
}

// TeamProjectedPoints is a team's projected points over a coverage window.
type TeamProjectedPoints struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Total        FlexFloat  `json:"total"`

	Extra map[string]any `json:"-"`
}

// TeamStandings is a team's position in the league table.
type TeamStandings struct {
	Rank                    FlexInt        `json:"rank"`
	PlayoffSeed             FlexString     `json:"playoff_seed"`
	OutcomeTotals           *OutcomeTotals `json:"outcome_totals"`
	DivisionalOutcomeTotals *OutcomeTotals `json:"divisional_outcome_totals"`
	Streak                  *Streak        `json:"streak"`
	PointsFor               FlexFloat      `json:"points_for"`
	PointsAgainst           FlexFloat      `json:"points_against"`

	Extra map[string]any `json:"-"`
}

// OutcomeTotals is a win/loss/tie record.
type OutcomeTotals struct {
	Wins       FlexInt   `json:"wins"`
	Losses     FlexInt   `json:"losses"`
	Ties       FlexInt   `json:"ties"`
	Percentage FlexFloat `json:"percentage"`

	Extra map[string]any `json:"-"`
}

// Streak is a current win or loss streak.
type Streak struct {
	Type  string  `json:"type"`
	Value FlexInt `json:"value"`

	Extra map[string]any `json:"-"`
}

// Roster is the player list of a team for a coverage window.
type Roster struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Date         string     `json:"date"`
	IsEditable   FlexBool   `json:"is_editable"`
	IsPrescoring FlexBool   `json:"is_prescoring"`
	Players      []Player   `json:"players"`

	Extra map[string]any `json:"-"`
}

// Player is one athlete. Which sub-records are populated depends entirely on
// the endpoint that produced the instance.
type Player struct {
	PlayerKey               FlexString `json:"player_key"`
	PlayerID                FlexString `json:"player_id"`
	Name                    *Name      `json:"name"`
	Status                  string     `json:"status"`
	StatusFull              string     `json:"status_full"`
	InjuryNote              string     `json:"injury_note"`
	EditorialPlayerKey      FlexString `json:"editorial_player_key"`
	EditorialTeamKey        FlexString `json:"editorial_team_key"`
	EditorialTeamFullName   string     `json:"editorial_team_full_name"`
	EditorialTeamAbbr       string     `json:"editorial_team_abbr"`
	EditorialTeamURL        string     `json:"editorial_team_url"`
	ByeWeeks                *ByeWeeks  `json:"bye_weeks"`
	IsKeeper                any        `json:"is_keeper"`
	UniformNumber           FlexString `json:"uniform_number"`
	DisplayPosition         string     `json:"display_position"`
	Headshot                *Headshot  `json:"headshot"`
	ImageURL                string     `json:"image_url"`
	IsUndroppable           FlexBool   `json:"is_undroppable"`
	PositionType            string     `json:"position_type"`
	PrimaryPosition         string     `json:"primary_position"`
	EligiblePositions       []FlexString `json:"eligible_positions"`
	HasPlayerNotes          FlexBool   `json:"has_player_notes"`
	HasRecentPlayerNotes    FlexBool   `json:"has_recent_player_notes"`
	PlayerNotesLastTimestamp FlexInt   `json:"player_notes_last_timestamp"`
	SelectedPosition        *SelectedPosition `json:"selected_position"`
	PlayerStats             *PlayerStats  `json:"player_stats"`
	PlayerAdvancedStats     *PlayerStats  `json:"player_advanced_stats"`
	PlayerPoints            *PlayerPoints `json:"player_points"`
	Ownership               *Ownership    `json:"ownership"`
	PercentOwned            *PercentOwned `json:"percent_owned"`
	DraftAnalysis           *DraftAnalysis `json:"draft_analysis"`
	TransactionData         *TransactionPlayerData `json:"transaction_data"`

	Extra map[string]any `json:"-"`
}

// Name is a player's name breakdown.
type Name struct {
	Full       string `json:"full"`
	First      string `json:"first"`
	Last       string `json:"last"`
	ASCIIFirst string `json:"ascii_first"`
	ASCIILast  string `json:"ascii_last"`

	Extra map[string]any `json:"-"`
}

// ByeWeeks lists a player's bye week(s).
type ByeWeeks struct {
	Week FlexString `json:"week"`

	Extra map[string]any `json:"-"`
}

// Headshot is a player photo reference.
type Headshot struct {
	Size string `json:"size"`
	URL  string `json:"url"`

	Extra map[string]any `json:"-"`
}

// SelectedPosition is the roster slot a player occupies in a window.
type SelectedPosition struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Date         string     `json:"date"`
	Position     string     `json:"position"`
	IsFlex       FlexBool   `json:"is_flex"`

	Extra map[string]any `json:"-"`
}

// PlayerStats is a stat line over a coverage window.
type PlayerStats struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Season       FlexString `json:"season"`
	Date         string     `json:"date"`
	Stats        []Stat     `json:"stats"`

	Extra map[string]any `json:"-"`
}

// PlayerPoints is a player's fantasy point total over a coverage window.
type PlayerPoints struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Season       FlexString `json:"season"`
	Total        FlexFloat  `json:"total"`

	Extra map[string]any `json:"-"`
}

// Ownership describes which fantasy team, if any, owns a player.
type Ownership struct {
	OwnershipType string     `json:"ownership_type"`
	OwnerTeamKey  FlexString `json:"owner_team_key"`
	OwnerTeamName string     `json:"owner_team_name"`
	WaiverDate    string     `json:"waiver_date"`

	Extra map[string]any `json:"-"`
}

// PercentOwned is league-wide ownership share of a player.
type PercentOwned struct {
	CoverageType string     `json:"coverage_type"`
	Week         FlexString `json:"week"`
	Value        FlexInt    `json:"value"`
	Delta        FlexFloat  `json:"delta"`

	Extra map[string]any `json:"-"`
}

// DraftAnalysis aggregates league-wide draft behavior for a player.
type DraftAnalysis struct {
	AveragePick    FlexString `json:"average_pick"`
	AverageRound   FlexString `json:"average_round"`
	AverageCost    FlexString `json:"average_cost"`
	PercentDrafted FlexString `json:"percent_drafted"`
	PreseasonAveragePick FlexString `json:"preseason_average_pick"`
	PreseasonAverageRound FlexString `json:"preseason_average_round"`
	PreseasonAverageCost FlexString `json:"preseason_average_cost"`
	PreseasonPercentDrafted FlexString `json:"preseason_percent_drafted"`

	Extra map[string]any `json:"-"`
}

// TransactionPlayerData is the per-player movement detail of a transaction.
type TransactionPlayerData struct {
	Type                string     `json:"type"`
	SourceType          string     `json:"source_type"`
	SourceTeamKey       FlexString `json:"source_team_key"`
	SourceTeamName      string     `json:"source_team_name"`
	DestinationType     string     `json:"destination_type"`
	DestinationTeamKey  FlexString `json:"destination_team_key"`
	DestinationTeamName string     `json:"destination_team_name"`

	Extra map[string]any `json:"-"`
}

// Transaction is one add/drop/trade event in a league.
type Transaction struct {
	TransactionKey  FlexString `json:"transaction_key"`
	TransactionID   FlexString `json:"transaction_id"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Timestamp       FlexInt    `json:"timestamp"`
	FAABBid         FlexInt    `json:"faab_bid"`
	TraderTeamKey   FlexString `json:"trader_team_key"`
	TraderTeamName  string     `json:"trader_team_name"`
	TradeeTeamKey   FlexString `json:"tradee_team_key"`
	TradeeTeamName  string     `json:"tradee_team_name"`
	WaiverPlayerKey FlexString `json:"waiver_player_key"`
	WaiverTeamKey   FlexString `json:"waiver_team_key"`
	WaiverDate      string     `json:"waiver_date"`
	Players         []Player   `json:"players"`

	Extra map[string]any `json:"-"`
}

// DraftResult is one pick of a draft.
type DraftResult struct {
	Pick      FlexInt    `json:"pick"`
	Round     FlexInt    `json:"round"`
	Cost      FlexString `json:"cost"`
	TeamKey   FlexString `json:"team_key"`
	PlayerKey FlexString `json:"player_key"`

	Extra map[string]any `json:"-"`
}
