// Package registry holds the static mapping from abstract (sport, league)
// identifiers to ESPN upstream URLs and path fragments, plus the
// conference/division lookup tables used for scoreboard group filtering.
//
// All tables are loaded once at process start and are read-only afterwards.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Upstream base URLs. Operations pick one of these via Entry paths.
const (
	SiteBaseURL    = "https://site.api.espn.com/apis/site/v2/sports"
	CoreBaseURL    = "https://sports.core.api.espn.com/v2/sports"
	WebBaseURL     = "https://site.web.api.espn.com/apis/common/v3/sports"
	NowBaseURL     = "https://now.core.api.espn.com/v1"
	FantasyBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3"
	GambitBaseURL  = "https://gambit-api.fantasy.espn.com/apis/v1"
)

// ErrUnknownLeague is returned when a (sport, league) pair has no entry.
var ErrUnknownLeague = errors.New("unknown league")

// ErrUnknownConference is returned when a conference name or ID cannot be
// resolved for a sport.
var ErrUnknownConference = errors.New("unknown conference")

// Entry describes one resolvable (sport, league) pair.
type Entry struct {
	// Sport is the canonical sport key, e.g. "football".
	Sport string
	// League is the canonical upstream league code, e.g. "nfl" or "eng.1".
	League string
	// Weekly reports whether the league schedules by week number
	// (NFL, college football) rather than by date alone.
	Weekly bool
}

// SitePath returns the site API path fragment for the entry.
func (e Entry) SitePath() string {
	return e.Sport + "/" + e.League
}

// CorePath returns the core API path fragment (core uses /leagues/).
func (e Entry) CorePath() string {
	return e.Sport + "/leagues/" + e.League
}

// Conference is a static (sport, name, upstream group ID) triple.
type Conference struct {
	Sport   string
	Name    string
	GroupID int
}

// Resolve maps a sport key and league identifier (canonical code or any
// registered alias) to its registry entry. League may be empty for
// single-league sports.
func Resolve(sport, league string) (Entry, error) {
	s := normalize(sport)
	l := normalize(league)

	if alias, ok := sportAliases[s]; ok {
		s = alias.sport
		if l == "" {
			l = alias.league
		}
	}

	if l == "" {
		if def, ok := defaultLeagues[s]; ok {
			l = def
		} else {
			return Entry{}, fmt.Errorf("%w: sport %q requires a league", ErrUnknownLeague, sport)
		}
	}

	if code, ok := leagueAliases[s][l]; ok {
		l = code
	}

	entry, ok := leagues[s][l]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrUnknownLeague, sport, league)
	}
	return entry, nil
}

// Leagues returns the canonical league codes registered for a sport,
// sorted for stable iteration. Unknown sports yield an empty slice.
func Leagues(sport string) []string {
	s := normalize(sport)
	if alias, ok := sportAliases[s]; ok {
		s = alias.sport
	}
	table := leagues[s]
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LookupConference resolves a conference/division by human name or by a
// numeric group ID. Numeric input is accepted as-is when it matches a
// known group for the sport.
func LookupConference(sport, nameOrID string) (Conference, error) {
	key := conferenceKey(sport)
	table, ok := conferences[key]
	if !ok {
		return Conference{}, fmt.Errorf("%w: no conference table for sport %q", ErrUnknownConference, sport)
	}

	if id, err := strconv.Atoi(strings.TrimSpace(nameOrID)); err == nil {
		// Group IDs are not unique across divisions; pick the first name
		// in sorted order so lookups stay deterministic.
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if table[name] == id {
				return Conference{Sport: key, Name: name, GroupID: id}, nil
			}
		}
		return Conference{}, fmt.Errorf("%w: %s group %d", ErrUnknownConference, sport, id)
	}

	name := strings.ToUpper(normalize(nameOrID))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	if gid, ok := table[name]; ok {
		return Conference{Sport: key, Name: name, GroupID: gid}, nil
	}
	return Conference{}, fmt.Errorf("%w: %s %q", ErrUnknownConference, sport, nameOrID)
}

// Conferences returns the full name-to-group table for a sport. The
// returned map is a copy; callers may not mutate registry state.
func Conferences(sport string) map[string]int {
	table, ok := conferences[conferenceKey(sport)]
	if !ok {
		return map[string]int{}
	}
	out := make(map[string]int, len(table))
	for name, id := range table {
		out[name] = id
	}
	return out
}

// conferenceKey maps sport/league spellings onto conference table keys.
func conferenceKey(sport string) string {
	s := normalize(sport)
	if alias, ok := conferenceAliases[s]; ok {
		return alias
	}
	return s
}

// normalize lowercases and collapses the separators callers tend to vary:
// surrounding whitespace, internal runs of spaces, dashes and underscores.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
