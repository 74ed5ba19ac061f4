package models

import (
	"math"

	"github.com/tidwall/gjson"
)

// Spread is the point-spread market for a game.
type Spread struct {
	Favorite     string
	Line         float64
	FavoriteOdds *int
	UnderdogOdds *int
}

// Moneyline is the straight-win market for a game.
type Moneyline struct {
	HomeOdds *int
	AwayOdds *int
}

// Total is the over/under market for a game.
type Total struct {
	Line      float64
	OverOdds  *int
	UnderOdds *int
}

// GameOdds is the normalized betting line for one event. The three
// markets are derived independently; any subset may be absent and an
// event whose odds block carries none of them still yields a valid
// record with all three nil.
type GameOdds struct {
	EventID   string
	HomeTeam  string
	AwayTeam  string
	Provider  string
	Details   string
	Spread    *Spread
	Moneyline *Moneyline
	Total     *Total
}

// ParseOdds extracts odds from a scoreboard or event summary payload.
//
// Probe order for the odds block: events.#.competitions.0.odds.0
// (scoreboard), then pickcenter.0 (summary). Events with no odds block
// at all are skipped.
func ParseOdds(raw []byte) ([]GameOdds, error) {
	root, err := parseRoot(raw)
	if err != nil {
		return nil, err
	}

	events := root.Get("events").Array()
	if len(events) == 0 && root.Get("header").Exists() {
		// Event summary: competition lives under header, odds under
		// pickcenter.
		events = []gjson.Result{root}
	}

	var all []GameOdds
	for _, event := range events {
		odds, ok, err := oddsFromEvent(event)
		if err != nil {
			return nil, err
		}
		if ok {
			all = append(all, odds)
		}
	}
	return all, nil
}

func oddsFromEvent(event gjson.Result) (GameOdds, bool, error) {
	node := probe(event, "competitions.0.odds.0", "pickcenter.0")
	if !node.Exists() {
		return GameOdds{}, false, nil
	}

	id := probe(event, "id", "header.id")
	if !id.Exists() {
		return GameOdds{}, false, missingID("odds")
	}

	competition := probe(event, "competitions.0", "header.competitions.0")
	var home, away string
	for _, competitor := range competition.Get("competitors").Array() {
		name := competitor.Get("team.displayName").String()
		switch competitor.Get("homeAway").String() {
		case "home":
			home = name
		case "away":
			away = name
		}
	}

	return GameOdds{
		EventID:   id.String(),
		HomeTeam:  home,
		AwayTeam:  away,
		Provider:  node.Get("provider.name").String(),
		Details:   node.Get("details").String(),
		Spread:    spreadFrom(node),
		Moneyline: moneylineFrom(node),
		Total:     totalFrom(node),
	}, true, nil
}

// spreadFrom derives the spread market. The favorite comes from the
// leading token of the details string ("KC -3.5"); prices probe
// pointSpread.american.{favorite,underdog}.close.
func spreadFrom(node gjson.Result) *Spread {
	line := node.Get("spread")
	if !line.Exists() {
		return nil
	}
	var favorite string
	if details := node.Get("details").String(); details != "" {
		favorite = firstToken(details)
	}
	ps := node.Get("pointSpread.american")
	return &Spread{
		Favorite:     favorite,
		Line:         math.Abs(line.Float()),
		FavoriteOdds: pricePtr(ps.Get("favorite.close")),
		UnderdogOdds: pricePtr(ps.Get("underdog.close")),
	}
}

// moneylineFrom derives the moneyline market. Prices probe
// moneyline.{home,away}.close, then the flat homeTeamOdds.moneyLine /
// awayTeamOdds.moneyLine shape some sports use.
func moneylineFrom(node gjson.Result) *Moneyline {
	if ml := node.Get("moneyline"); ml.Exists() {
		return &Moneyline{
			HomeOdds: pricePtr(ml.Get("home.close")),
			AwayOdds: pricePtr(ml.Get("away.close")),
		}
	}
	homeFlat := node.Get("homeTeamOdds.moneyLine")
	awayFlat := node.Get("awayTeamOdds.moneyLine")
	if homeFlat.Exists() || awayFlat.Exists() {
		return &Moneyline{
			HomeOdds: pricePtr(homeFlat),
			AwayOdds: pricePtr(awayFlat),
		}
	}
	return nil
}

// totalFrom derives the over/under market from overUnder plus the
// total.{over,under}.close prices.
func totalFrom(node gjson.Result) *Total {
	line := node.Get("overUnder")
	if !line.Exists() {
		return nil
	}
	total := node.Get("total")
	return &Total{
		Line:      line.Float(),
		OverOdds:  pricePtr(total.Get("over.close")),
		UnderOdds: pricePtr(total.Get("under.close")),
	}
}

// pricePtr reads an American price that upstream renders either as a
// bare number or as a quoted string ("-110", "EVEN"). Non-numeric
// strings map to absent.
func pricePtr(r gjson.Result) *int {
	if !r.Exists() {
		return nil
	}
	switch r.Type {
	case gjson.Number:
		n := int(r.Int())
		return &n
	case gjson.String:
		f := r.Float()
		if f == 0 && r.String() != "0" {
			return nil
		}
		n := int(f)
		return &n
	default:
		return nil
	}
}

func firstToken(s string) string {
	for i, c := range s {
		if c == ' ' {
			return s[:i]
		}
	}
	return s
}
