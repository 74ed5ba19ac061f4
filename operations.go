package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fenneh/espn-sports-api/models"
	"github.com/fenneh/espn-sports-api/resolver"
)

// Scoreboard returns the raw scoreboard payload. Accepted filters:
// dates, season+week, seasontype, limit, groups, conference, calendar.
func (c *Client) Scoreboard(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpScoreboard, f)
}

// Games returns the normalized games from a scoreboard call.
func (c *Client) Games(ctx context.Context, f Filters) ([]models.Event, error) {
	raw, err := c.Scoreboard(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.ParseEvents(raw)
}

// Odds returns the normalized betting lines from a scoreboard call.
func (c *Client) Odds(ctx context.Context, f Filters) ([]models.GameOdds, error) {
	raw, err := c.Scoreboard(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.ParseOdds(raw)
}

// Broadcasts returns normalized TV broadcast listings from a
// scoreboard call.
func (c *Client) Broadcasts(ctx context.Context, f Filters) ([]models.Broadcast, error) {
	raw, err := c.Scoreboard(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.ParseBroadcasts(raw)
}

// Weather returns per-game weather from a scoreboard call. Indoor
// events simply have no report.
func (c *Client) Weather(ctx context.Context, f Filters) ([]models.Weather, error) {
	raw, err := c.Scoreboard(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.ParseWeather(raw)
}

// Teams returns all teams in the league.
func (c *Client) Teams(ctx context.Context) ([]models.Team, error) {
	raw, err := c.Do(ctx, resolver.OpTeams, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseTeams(raw)
}

// Team returns one team by ID or abbreviation.
func (c *Client) Team(ctx context.Context, teamID string) (models.Team, error) {
	raw, err := c.Do(ctx, resolver.OpTeam, Filters{"team": teamID})
	if err != nil {
		return models.Team{}, err
	}
	teams, err := models.ParseTeams(raw)
	if err != nil {
		return models.Team{}, err
	}
	if len(teams) == 0 {
		return models.Team{}, fmt.Errorf("%w: no team in payload", models.ErrMalformedResponse)
	}
	return teams[0], nil
}

// Roster returns a team's normalized roster.
func (c *Client) Roster(ctx context.Context, teamID string) ([]models.Athlete, error) {
	raw, err := c.Do(ctx, resolver.OpRoster, Filters{"team": teamID})
	if err != nil {
		return nil, err
	}
	return models.ParseAthletes(raw)
}

// Schedule returns a team's raw schedule. Optional filters: season,
// fixtures.
func (c *Client) Schedule(ctx context.Context, teamID string, f Filters) (json.RawMessage, error) {
	merged := Filters{"team": teamID}
	for k, v := range f {
		merged[k] = v
	}
	return c.Do(ctx, resolver.OpSchedule, merged)
}

// Injuries returns the league-wide normalized injury report.
func (c *Client) Injuries(ctx context.Context) ([]models.Injury, error) {
	raw, err := c.Do(ctx, resolver.OpInjuries, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseInjuries(raw)
}

// Standings returns the raw standings payload. Optional filters:
// season, group.
func (c *Client) Standings(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpStandings, f)
}

// News returns the raw news payload. Optional filters: limit, team.
func (c *Client) News(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpNews, f)
}

// Event returns the raw summary payload for one game.
func (c *Client) Event(ctx context.Context, eventID string) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpEvent, Filters{"event": eventID})
}

// PlayByPlay returns the raw play-by-play payload for one game.
func (c *Client) PlayByPlay(ctx context.Context, eventID string) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpPlayByPlay, Filters{"event": eventID})
}

// Athlete returns one normalized athlete record.
func (c *Client) Athlete(ctx context.Context, athleteID string) (models.Athlete, error) {
	raw, err := c.Do(ctx, resolver.OpAthlete, Filters{"athlete": athleteID})
	if err != nil {
		return models.Athlete{}, err
	}
	athletes, err := models.ParseAthletes(raw)
	if err != nil {
		return models.Athlete{}, err
	}
	if len(athletes) == 0 {
		return models.Athlete{}, fmt.Errorf("%w: no athlete in payload", models.ErrMalformedResponse)
	}
	return athletes[0], nil
}

// AthleteStats returns the raw statistics payload for one athlete.
func (c *Client) AthleteStats(ctx context.Context, athleteID string) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpAthleteStats, Filters{"athlete": athleteID})
}

// Seasons returns raw season metadata, optionally for a single year.
func (c *Client) Seasons(ctx context.Context, year int) (json.RawMessage, error) {
	f := Filters{}
	if year != 0 {
		f["year"] = strconv.Itoa(year)
	}
	return c.Do(ctx, resolver.OpSeasons, f)
}

// Transactions returns normalized roster transactions.
func (c *Client) Transactions(ctx context.Context, f Filters) ([]models.Transaction, error) {
	raw, err := c.Do(ctx, resolver.OpTransactions, f)
	if err != nil {
		return nil, err
	}
	return models.ParseTransactions(raw)
}

// Statistics returns the raw league statistics payload. Optional
// filter: category.
func (c *Client) Statistics(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpStatistics, f)
}

// Leaders returns the raw statistical leaders payload. Optional
// filter: category.
func (c *Client) Leaders(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpLeaders, f)
}

// Venues returns normalized venue records.
func (c *Client) Venues(ctx context.Context, f Filters) ([]models.Venue, error) {
	raw, err := c.Do(ctx, resolver.OpVenues, f)
	if err != nil {
		return nil, err
	}
	return models.ParseVenues(raw)
}

// Franchises returns the raw franchise history payload.
func (c *Client) Franchises(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpFranchises, nil)
}

// Events returns the raw core events payload. Optional filters: dates,
// limit.
func (c *Client) Events(ctx context.Context, f Filters) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpEvents, f)
}

// Positions returns the raw positions payload for the sport.
func (c *Client) Positions(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpPositions, nil)
}

// Draft returns the raw draft payload. Optional year, zero for the
// current draft.
func (c *Client) Draft(ctx context.Context, year int) (json.RawMessage, error) {
	f := Filters{}
	if year != 0 {
		f["year"] = strconv.Itoa(year)
	}
	return c.Do(ctx, resolver.OpDraft, f)
}

// DepthCharts returns the raw depth chart payload for a team.
func (c *Client) DepthCharts(ctx context.Context, teamID string) (json.RawMessage, error) {
	return c.Do(ctx, resolver.OpDepthCharts, Filters{"team": teamID})
}
