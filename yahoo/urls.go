package yahoo

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the production Fantasy Sports API endpoint.
const DefaultBaseURL = "https://fantasysports.yahooapis.com/fantasy/v2"

// The API addresses resources as slash-separated segments where each segment
// may carry semicolon-delimited modifiers:
//
//	/league/331.l.729/players;start=25;count=25
//	/users;use_login=1/games;game_codes=nfl;out=teams
//
// seg and mod keep query construction readable without a URL builder type.

// seg renders one path segment with optional ;key=value modifiers.
func seg(name string, modifiers ...string) string {
	if len(modifiers) == 0 {
		return name
	}
	return name + ";" + strings.Join(modifiers, ";")
}

// mod renders a single key=value modifier.
func mod(key string, value any) string {
	return fmt.Sprintf("%s=%v", key, value)
}

func (c *Client) buildURL(segments ...string) string {
	return c.baseURL + "/" + strings.Join(segments, "/")
}
