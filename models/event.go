package models

import "github.com/tidwall/gjson"

// Competitor is one side of an event.
type Competitor struct {
	TeamID       string
	Name         string
	Abbreviation string
	HomeAway     string
	Score        *string
	Winner       *bool
}

// EventStatus is the normalized game state.
type EventStatus struct {
	// State is "pre", "in" or "post".
	State  string
	Detail string
	Period *int
	Clock  *string
}

// Event is a normalized scoreboard game.
type Event struct {
	ID          string
	Name        string
	ShortName   string
	Date        string
	Status      EventStatus
	Competitors []Competitor
}

// Live reports whether the event is currently in progress.
func (e Event) Live() bool {
	return e.Status.State == "in"
}

// ParseEvents extracts games from a scoreboard payload.
//
// Probe order for the list: events, then items (core events). Status
// state probes status.type.state; period and clock come from the
// status block when present.
func ParseEvents(raw []byte) ([]Event, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	nodes := items(root, "events", "items")
	events := make([]Event, 0, len(nodes))
	for _, node := range nodes {
		event, err := eventFrom(node)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func eventFrom(node gjson.Result) (Event, error) {
	id := node.Get("id")
	if !id.Exists() {
		return Event{}, missingID("event")
	}

	status := node.Get("status")
	event := Event{
		ID:        id.String(),
		Name:      node.Get("name").String(),
		ShortName: node.Get("shortName").String(),
		Date:      node.Get("date").String(),
		Status: EventStatus{
			State:  status.Get("type.state").String(),
			Detail: probe(status, "type.shortDetail", "type.detail").String(),
			Period: intPtr(status.Get("period")),
			Clock:  strPtr(status.Get("displayClock")),
		},
	}

	for _, competitor := range node.Get("competitions.0.competitors").Array() {
		team := competitor.Get("team")
		event.Competitors = append(event.Competitors, Competitor{
			TeamID:       team.Get("id").String(),
			Name:         team.Get("displayName").String(),
			Abbreviation: team.Get("abbreviation").String(),
			HomeAway:     competitor.Get("homeAway").String(),
			Score:        strPtr(competitor.Get("score")),
			Winner:       boolPtr(competitor.Get("winner")),
		})
	}
	return event, nil
}
