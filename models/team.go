package models

import "github.com/tidwall/gjson"

// Team is a normalized team record.
type Team struct {
	ID             string
	Name           string
	Abbreviation   string
	Location       string
	Nickname       string
	Color          string
	AlternateColor string
	LogoURL        *string
	Record         *string
	Standing       *string
}

// ParseTeams extracts teams from a teams-list or single-team payload.
//
// Probe order:
//  1. sports.#.leagues.#.teams.#.team (site teams list)
//  2. team                            (single team lookup)
//  3. items                           (core franchises/teams)
func ParseTeams(raw []byte) ([]Team, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var nodes []gjson.Result
	for _, sport := range root.Get("sports").Array() {
		for _, league := range sport.Get("leagues").Array() {
			for _, wrapper := range league.Get("teams").Array() {
				node := wrapper.Get("team")
				if !node.Exists() {
					node = wrapper
				}
				nodes = append(nodes, node)
			}
		}
	}
	if len(nodes) == 0 {
		if single := root.Get("team"); single.Exists() {
			nodes = append(nodes, single)
		} else {
			nodes = items(root, "items")
		}
	}

	teams := make([]Team, 0, len(nodes))
	for _, node := range nodes {
		team, err := teamFrom(node)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func teamFrom(node gjson.Result) (Team, error) {
	id := node.Get("id")
	if !id.Exists() {
		return Team{}, missingID("team")
	}
	return Team{
		ID:             id.String(),
		Name:           node.Get("displayName").String(),
		Abbreviation:   node.Get("abbreviation").String(),
		Location:       node.Get("location").String(),
		Nickname:       probe(node, "nickname", "name").String(),
		Color:          node.Get("color").String(),
		AlternateColor: node.Get("alternateColor").String(),
		LogoURL:        strPtr(node.Get("logos.0.href")),
		Record:         strPtr(node.Get("record.items.0.summary")),
		Standing:       strPtr(node.Get("standingSummary")),
	}, nil
}
