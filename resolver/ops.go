package resolver

import (
	"net/url"
	"strings"

	"github.com/fenneh/espn-sports-api/registry"
)

// Operation is one of the fixed set of logical upstream calls.
type Operation string

const (
	OpScoreboard   Operation = "scoreboard"
	OpTeams        Operation = "teams"
	OpTeam         Operation = "team"
	OpRoster       Operation = "roster"
	OpSchedule     Operation = "schedule"
	OpInjuries     Operation = "injuries"
	OpStandings    Operation = "standings"
	OpNews         Operation = "news"
	OpEvent        Operation = "event"
	OpPlayByPlay   Operation = "playbyplay"
	OpAthlete      Operation = "athlete"
	OpAthleteStats Operation = "athlete_stats"
	OpSeasons      Operation = "seasons"
	OpTransactions Operation = "transactions"
	OpStatistics   Operation = "statistics"
	OpLeaders      Operation = "leaders"
	OpVenues       Operation = "venues"
	OpFranchises   Operation = "franchises"
	OpEvents       Operation = "events"
	OpPositions    Operation = "positions"
	OpDraft        Operation = "draft"
	OpDepthCharts  Operation = "depthcharts"
)

// Operations returns the full operation set, for callers that want to
// enumerate supported calls.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	return ops
}

// apiBase selects which upstream API family an operation targets.
type apiBase int

const (
	siteAPI apiBase = iota
	coreAPI
	webAPI
)

// opSpec declares the contract of one operation: which API it hits,
// its path template, and the closed filter set it accepts.
//
// Path templates use {key} for a required path segment filled from
// filters and {?key} for an optional trailing segment. Keys consumed by
// the path never appear in the query string.
type opSpec struct {
	base      apiBase
	path      string
	allowed   []string
	required  []string
	exclusive []exclusion
}

// exclusion is one set of mutually exclusive filter groups. Filters in
// the same inner group belong together (season+week); filters from
// different groups of the set cannot be combined. An operation may carry
// several independent sets.
type exclusion [][]string

func (s opSpec) recognizes(key string) bool {
	for _, k := range s.allowed {
		if k == key {
			return true
		}
	}
	for _, k := range s.required {
		if k == key {
			return true
		}
	}
	return false
}

func (s opSpec) baseURL(entry registry.Entry) string {
	switch s.base {
	case coreAPI:
		return registry.CoreBaseURL + "/" + entry.CorePath()
	case webAPI:
		return registry.WebBaseURL + "/" + entry.CorePath()
	default:
		return registry.SiteBaseURL + "/" + entry.SitePath()
	}
}

// expandPath substitutes path placeholders from the filter set and
// reports which filter keys were consumed by the path. Substituted
// values are path-escaped so a value cannot rewrite the request path.
func (s opSpec) expandPath(op Operation, f Filters) (string, map[string]bool, error) {
	consumed := map[string]bool{}
	segments := strings.Split(s.path, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch {
		case strings.HasPrefix(seg, "{?"):
			key := strings.TrimSuffix(strings.TrimPrefix(seg, "{?"), "}")
			consumed[key] = true
			if v := f[key]; v != "" {
				out = append(out, url.PathEscape(v))
			}
		case strings.HasPrefix(seg, "{"):
			key := strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
			consumed[key] = true
			v := f[key]
			if v == "" {
				return "", nil, invalid(op, key, "required filter is missing")
			}
			out = append(out, url.PathEscape(v))
		default:
			out = append(out, seg)
		}
	}
	return strings.Join(out, "/"), consumed, nil
}

var operations = map[Operation]opSpec{
	OpScoreboard: {
		base:    siteAPI,
		path:    "scoreboard",
		allowed: []string{"dates", "season", "week", "seasontype", "limit", "groups", "conference", "calendar"},
		exclusive: []exclusion{
			{{"dates"}, {"season", "week"}, {"seasontype"}},
			// conference and groups are two spellings of the same upstream
			// parameter; accepting both would make the URL depend on map
			// iteration order.
			{{"conference"}, {"groups"}},
		},
	},
	OpTeams: {
		base:    siteAPI,
		path:    "teams",
		allowed: []string{"limit"},
	},
	OpTeam: {
		base:     siteAPI,
		path:     "teams/{team}",
		required: []string{"team"},
	},
	OpRoster: {
		base:     siteAPI,
		path:     "teams/{team}/roster",
		required: []string{"team"},
	},
	OpSchedule: {
		base:     siteAPI,
		path:     "teams/{team}/schedule",
		required: []string{"team"},
		allowed:  []string{"season", "fixtures"},
	},
	OpInjuries: {
		base:    siteAPI,
		path:    "injuries",
		allowed: []string{"limit", "team"},
	},
	OpStandings: {
		base:    siteAPI,
		path:    "standings",
		allowed: []string{"season", "group"},
	},
	OpNews: {
		base:    siteAPI,
		path:    "news",
		allowed: []string{"limit", "team"},
	},
	OpEvent: {
		base:     siteAPI,
		path:     "summary",
		required: []string{"event"},
	},
	OpPlayByPlay: {
		base:     siteAPI,
		path:     "summary",
		required: []string{"event"},
	},
	OpAthlete: {
		base:     coreAPI,
		path:     "athletes/{athlete}",
		required: []string{"athlete"},
	},
	OpAthleteStats: {
		base:     webAPI,
		path:     "athletes/{athlete}/stats",
		required: []string{"athlete"},
	},
	OpSeasons: {
		base:    coreAPI,
		path:    "seasons/{?year}",
		allowed: []string{"year"},
	},
	OpTransactions: {
		base:    siteAPI,
		path:    "transactions",
		allowed: []string{"limit"},
	},
	OpStatistics: {
		base:    siteAPI,
		path:    "statistics/{?category}",
		allowed: []string{"category"},
	},
	OpLeaders: {
		base:    coreAPI,
		path:    "leaders/{?category}",
		allowed: []string{"category"},
	},
	OpVenues: {
		base:    coreAPI,
		path:    "venues",
		allowed: []string{"limit"},
	},
	OpFranchises: {
		base: coreAPI,
		path: "franchises",
	},
	OpEvents: {
		base:    coreAPI,
		path:    "events",
		allowed: []string{"dates", "limit"},
	},
	OpPositions: {
		base: coreAPI,
		path: "positions",
	},
	OpDraft: {
		base:    coreAPI,
		path:    "draft",
		allowed: []string{"year"},
	},
	OpDepthCharts: {
		base:     coreAPI,
		path:     "teams/{team}/depthcharts",
		required: []string{"team"},
	},
}
