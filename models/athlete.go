package models

import "github.com/tidwall/gjson"

// Athlete is a normalized player record.
type Athlete struct {
	ID         string
	Name       string
	FirstName  string
	LastName   string
	Jersey     *string
	Position   string
	Team       string
	Height     string
	Weight     *int
	Age        *int
	College    string
	BirthPlace string
	Experience *int
	Headshot   *string
}

// ParseAthletes extracts athletes from an athlete-list, roster, or
// single-athlete payload.
//
// Probe order:
//  1. items                (core athletes)
//  2. athletes             (flat site list)
//  3. athletes.#.items     (site roster, grouped by position)
//  4. athlete              (single athlete, wrapped)
//  5. the root object      (core single athlete, unwrapped)
func ParseAthletes(raw []byte) ([]Athlete, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var nodes []gjson.Result
	if flat := items(root, "items"); len(flat) > 0 {
		nodes = flat
	} else if groups := root.Get("athletes"); groups.Exists() {
		for _, entry := range groups.Array() {
			if grouped := entry.Get("items"); grouped.IsArray() {
				nodes = append(nodes, grouped.Array()...)
			} else {
				nodes = append(nodes, entry)
			}
		}
	} else if single := root.Get("athlete"); single.Exists() {
		nodes = append(nodes, single)
	} else if root.Get("id").Exists() && probe(root, "displayName", "fullName").Exists() {
		nodes = append(nodes, root)
	}

	athletes := make([]Athlete, 0, len(nodes))
	for _, node := range nodes {
		athlete, err := athleteFrom(node)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, athlete)
	}
	return athletes, nil
}

func athleteFrom(node gjson.Result) (Athlete, error) {
	id := node.Get("id")
	if !id.Exists() {
		return Athlete{}, missingID("athlete")
	}
	return Athlete{
		ID:         id.String(),
		Name:       probe(node, "displayName", "fullName").String(),
		FirstName:  node.Get("firstName").String(),
		LastName:   node.Get("lastName").String(),
		Jersey:     strPtr(node.Get("jersey")),
		Position:   probe(node, "position.abbreviation", "position.name").String(),
		Team:       node.Get("team.displayName").String(),
		Height:     node.Get("displayHeight").String(),
		Weight:     intPtr(node.Get("weight")),
		Age:        intPtr(node.Get("age")),
		College:    node.Get("college.name").String(),
		BirthPlace: birthPlace(node.Get("birthPlace")),
		Experience: intPtr(probe(node, "experience.years", "experience")),
		Headshot:   strPtr(node.Get("headshot.href")),
	}, nil
}

func birthPlace(node gjson.Result) string {
	if !node.Exists() {
		return ""
	}
	city := node.Get("city").String()
	region := probe(node, "state", "country").String()
	switch {
	case city == "":
		return region
	case region == "":
		return city
	default:
		return city + ", " + region
	}
}
