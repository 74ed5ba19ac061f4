package models

import "github.com/tidwall/gjson"

// Injury is a normalized injury-report entry.
type Injury struct {
	AthleteID   string
	AthleteName string
	Team        string
	Position    string
	Status      string
	Type        string
	BodyPart    string
	Description string
	ReturnDate  *string
}

// ParseInjuries extracts injuries from a league-wide or team injury
// payload.
//
// Probe order for the list: items, injuries. League-wide payloads nest
// a second level of team buckets, each with its own injuries array;
// those are flattened.
func ParseInjuries(raw []byte) ([]Injury, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var nodes []gjson.Result
	for _, entry := range items(root, "items", "injuries") {
		if nested := entry.Get("injuries"); nested.IsArray() {
			nodes = append(nodes, nested.Array()...)
			continue
		}
		nodes = append(nodes, entry)
	}

	injuries := make([]Injury, 0, len(nodes))
	for _, node := range nodes {
		injury, err := injuryFrom(node)
		if err != nil {
			return nil, err
		}
		injuries = append(injuries, injury)
	}
	return injuries, nil
}

func injuryFrom(node gjson.Result) (Injury, error) {
	athlete := node.Get("athlete")
	id := athlete.Get("id")
	if !id.Exists() {
		return Injury{}, missingID("injury")
	}
	details := node.Get("details")
	return Injury{
		AthleteID:   id.String(),
		AthleteName: athlete.Get("displayName").String(),
		Team:        athlete.Get("team.displayName").String(),
		Position:    athlete.Get("position.abbreviation").String(),
		Status:      probe(node, "status", "status.type").String(),
		Type:        details.Get("type").String(),
		BodyPart:    details.Get("location").String(),
		Description: probe(node, "longComment", "shortComment").String(),
		ReturnDate:  strPtr(details.Get("returnDate")),
	}, nil
}
