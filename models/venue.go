package models

import "github.com/tidwall/gjson"

// Venue is a normalized stadium/arena record.
type Venue struct {
	ID       string
	Name     string
	City     string
	State    string
	Country  string
	Capacity *int
	Indoor   *bool
	Grass    *bool
}

// Broadcast is a normalized TV broadcast record for an event.
type Broadcast struct {
	EventID  string
	Network  string
	Market   string
	Language string
	Region   string
}

// Weather is a normalized game-day weather record for an event.
type Weather struct {
	EventID     string
	Temperature *int
	Conditions  string
	HighTemp    *int
	LowTemp     *int
}

// ParseVenues extracts venues from a venues payload.
//
// Probe order for the list: items, venues. Name probes fullName then
// name.
func ParseVenues(raw []byte) ([]Venue, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	nodes := items(root, "items", "venues")
	venues := make([]Venue, 0, len(nodes))
	for _, node := range nodes {
		venue, err := venueFrom(node)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}
	return venues, nil
}

func venueFrom(node gjson.Result) (Venue, error) {
	id := node.Get("id")
	if !id.Exists() {
		return Venue{}, missingID("venue")
	}
	address := node.Get("address")
	return Venue{
		ID:       id.String(),
		Name:     probe(node, "fullName", "name").String(),
		City:     address.Get("city").String(),
		State:    address.Get("state").String(),
		Country:  address.Get("country").String(),
		Capacity: intPtr(node.Get("capacity")),
		Indoor:   boolPtr(node.Get("indoor")),
		Grass:    boolPtr(node.Get("grass")),
	}, nil
}

// ParseBroadcasts extracts broadcasts from a scoreboard or event
// summary payload.
//
// Probe order: events.#.competitions.0.broadcasts (scoreboard), then
// header.competitions.0.broadcasts (summary), then broadcasts.
func ParseBroadcasts(raw []byte) ([]Broadcast, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var broadcasts []Broadcast
	events := root.Get("events").Array()
	if len(events) == 0 {
		if header := root.Get("header"); header.Exists() {
			events = []gjson.Result{header}
		} else if root.Get("broadcasts").Exists() {
			events = []gjson.Result{root}
		}
	}

	for _, event := range events {
		eventID := event.Get("id").String()
		nodes := probe(event, "competitions.0.broadcasts", "broadcasts")
		for _, node := range nodes.Array() {
			broadcasts = append(broadcasts, Broadcast{
				EventID:  eventID,
				Network:  probe(node, "names.0", "media.shortName").String(),
				Market:   probe(node, "market.type", "market").String(),
				Language: probe(node, "lang", "language").String(),
				Region:   node.Get("region").String(),
			})
		}
	}
	return broadcasts, nil
}

// ParseWeather extracts per-event weather from a scoreboard payload.
// Events without a weather block are skipped, not errors.
//
// Probe order for conditions: displayValue, conditionId.
func ParseWeather(raw []byte) ([]Weather, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	var reports []Weather
	for _, event := range root.Get("events").Array() {
		node := event.Get("weather")
		if !node.Exists() {
			continue
		}
		reports = append(reports, Weather{
			EventID:     event.Get("id").String(),
			Temperature: intPtr(node.Get("temperature")),
			Conditions:  probe(node, "displayValue", "conditionId").String(),
			HighTemp:    intPtr(node.Get("highTemperature")),
			LowTemp:     intPtr(node.Get("lowTemperature")),
		})
	}
	return reports, nil
}
