package espn

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/fenneh/espn-sports-api/models"
	"github.com/fenneh/espn-sports-api/resolver"
)

// The convenience calls are pure filter derivations over Scoreboard:
// they compute a date filter from the clock and delegate, adding no
// behavior of their own.

// Today returns today's scoreboard.
func (c *Client) Today(ctx context.Context) (json.RawMessage, error) {
	return c.OnDate(ctx, c.clock.Now())
}

// Yesterday returns yesterday's scoreboard.
func (c *Client) Yesterday(ctx context.Context) (json.RawMessage, error) {
	return c.OnDate(ctx, c.clock.Now().AddDate(0, 0, -1))
}

// Tomorrow returns tomorrow's scoreboard.
func (c *Client) Tomorrow(ctx context.Context) (json.RawMessage, error) {
	return c.OnDate(ctx, c.clock.Now().AddDate(0, 0, 1))
}

// OnDate returns the scoreboard for a specific day.
func (c *Client) OnDate(ctx context.Context, day time.Time) (json.RawMessage, error) {
	return c.Scoreboard(ctx, Filters{"dates": resolver.FormatDate(day)})
}

// DateRange returns the scoreboard for an inclusive date range.
func (c *Client) DateRange(ctx context.Context, start, end time.Time) (json.RawMessage, error) {
	return c.Scoreboard(ctx, Filters{"dates": resolver.FormatDateRange(start, end)})
}

// ForWeek returns the scoreboard for a week of a season, for leagues
// that schedule by week.
func (c *Client) ForWeek(ctx context.Context, week, season int) (json.RawMessage, error) {
	return c.Scoreboard(ctx, Filters{
		"week":   strconv.Itoa(week),
		"season": strconv.Itoa(season),
	})
}

// Live returns today's games filtered to those currently in progress.
func (c *Client) Live(ctx context.Context) ([]models.Event, error) {
	raw, err := c.Today(ctx)
	if err != nil {
		return nil, err
	}
	events, err := models.ParseEvents(raw)
	if err != nil {
		return nil, err
	}
	live := events[:0]
	for _, event := range events {
		if event.Live() {
			live = append(live, event)
		}
	}
	return live, nil
}
