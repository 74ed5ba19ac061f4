package espn

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenneh/espn-sports-api/cache"
	"github.com/fenneh/espn-sports-api/models"
	"github.com/fenneh/espn-sports-api/registry"
	"github.com/fenneh/espn-sports-api/resolver"
	"github.com/fenneh/espn-sports-api/transport"
)

// fakeTransport records requests and replays canned responses.
type fakeTransport struct {
	calls   []fakeCall
	payload []byte
	err     error
}

type fakeCall struct {
	url     string
	query   url.Values
	headers http.Header
}

func (f *fakeTransport) Get(_ context.Context, rawURL string, query url.Values, headers http.Header) ([]byte, error) {
	f.calls = append(f.calls, fakeCall{url: rawURL, query: query, headers: headers.Clone()})
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func TestNewRejectsUnknownLeague(t *testing.T) {
	_, err := New("football", "premier-league")
	require.ErrorIs(t, err, registry.ErrUnknownLeague)
}

func TestScoreboardRequestShape(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{"events":[]}`)}
	client, err := New("football", "nfl", WithTransport(ft))
	require.NoError(t, err)

	events, err := client.Games(context.Background(), Filters{"dates": "20240121"})
	require.NoError(t, err)
	assert.Empty(t, events)

	require.Len(t, ft.calls, 1)
	call := ft.calls[0]
	assert.Equal(t, "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard", call.url)
	assert.Equal(t, "20240121", call.query.Get("dates"))
	assert.Len(t, call.query, 1)
}

func TestInvalidFilterNeverHitsTransport(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{}`)}
	client, err := New("basketball", "nba", WithTransport(ft))
	require.NoError(t, err)

	_, err = client.Scoreboard(context.Background(), Filters{"week": "5", "season": "2024"})
	require.ErrorIs(t, err, resolver.ErrInvalidFilter)
	assert.Empty(t, ft.calls, "validation failures must not reach the network")
}

func TestCacheHitSkipsTransport(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{"events":[]}`)}
	client, err := New("football", "nfl",
		WithTransport(ft),
		WithCache(cache.NewMemoryBackend(), time.Minute),
	)
	require.NoError(t, err)

	_, err = client.Scoreboard(context.Background(), Filters{"dates": "20240121"})
	require.NoError(t, err)
	_, err = client.Scoreboard(context.Background(), Filters{"dates": "20240121"})
	require.NoError(t, err)
	assert.Len(t, ft.calls, 1, "second identical call is a cache hit")

	// A different filter set is a different key.
	_, err = client.Scoreboard(context.Background(), Filters{"dates": "20240122"})
	require.NoError(t, err)
	assert.Len(t, ft.calls, 2)
}

func TestFailedFetchIsRetriedNotCached(t *testing.T) {
	ft := &fakeTransport{err: &transport.StatusError{Code: 503, Body: "unavailable"}}
	client, err := New("football", "nfl",
		WithTransport(ft),
		WithCache(cache.NewMemoryBackend(), time.Minute),
	)
	require.NoError(t, err)

	_, err = client.Scoreboard(context.Background(), nil)
	var serr *transport.StatusError
	require.ErrorAs(t, err, &serr)

	// Recovery: the next call goes back upstream and the success is
	// served from cache afterwards.
	ft.err = nil
	ft.payload = []byte(`{"events":[]}`)
	_, err = client.Scoreboard(context.Background(), nil)
	require.NoError(t, err)
	_, err = client.Scoreboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, ft.calls, 2)
}

func TestNonJSONBodyIsMalformedAndNotCached(t *testing.T) {
	ft := &fakeTransport{payload: []byte("<html>maintenance</html>")}
	client, err := New("football", "nfl",
		WithTransport(ft),
		WithCache(cache.NewMemoryBackend(), time.Minute),
	)
	require.NoError(t, err)

	_, err = client.Scoreboard(context.Background(), nil)
	require.ErrorIs(t, err, models.ErrMalformedResponse)

	ft.payload = []byte(`{"events":[]}`)
	_, err = client.Scoreboard(context.Background(), nil)
	require.NoError(t, err, "the error page must not poison the cache")
	assert.Len(t, ft.calls, 2)
}

func TestHeadersPassThrough(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{}`)}
	client, err := New("football", "nfl",
		WithTransport(ft),
		WithHeader("X-Session", "opaque-token-value"),
	)
	require.NoError(t, err)

	_, err = client.Standings(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, ft.calls, 1)
	assert.Equal(t, "opaque-token-value", ft.calls[0].headers.Get("X-Session"))
}

func TestConvenienceDatesUseClock(t *testing.T) {
	now := time.Date(2024, 1, 21, 15, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	ft := &fakeTransport{payload: []byte(`{"events":[]}`)}
	client, err := New("football", "nfl", WithTransport(ft), WithClock(clock))
	require.NoError(t, err)

	_, err = client.Today(context.Background())
	require.NoError(t, err)
	_, err = client.Yesterday(context.Background())
	require.NoError(t, err)
	_, err = client.Tomorrow(context.Background())
	require.NoError(t, err)

	require.Len(t, ft.calls, 3)
	assert.Equal(t, "20240121", ft.calls[0].query.Get("dates"))
	assert.Equal(t, "20240120", ft.calls[1].query.Get("dates"))
	assert.Equal(t, "20240122", ft.calls[2].query.Get("dates"))
}

func TestDateRangeAndForWeek(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{"events":[]}`)}
	client, err := New("football", "nfl", WithTransport(ft))
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = client.DateRange(context.Background(), start, start.AddDate(0, 0, 6))
	require.NoError(t, err)
	assert.Equal(t, "20240101-20240107", ft.calls[0].query.Get("dates"))

	_, err = client.ForWeek(context.Background(), 5, 2023)
	require.NoError(t, err)
	assert.Equal(t, "5", ft.calls[1].query.Get("week"))
	assert.Equal(t, "2023", ft.calls[1].query.Get("season"))
}

func TestLiveFiltersInProgress(t *testing.T) {
	payload := `{
		"events": [
			{"id": "1", "status": {"type": {"state": "in"}}},
			{"id": "2", "status": {"type": {"state": "pre"}}},
			{"id": "3", "status": {"type": {"state": "post"}}}
		]
	}`
	ft := &fakeTransport{payload: []byte(payload)}
	client, err := New("basketball", "nba", WithTransport(ft))
	require.NoError(t, err)

	live, err := client.Live(context.Background())
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "1", live[0].ID)
}

func TestSeasonTypeOptionAppliesToScoreboard(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{"events":[]}`)}
	client, err := New("football", "nfl",
		WithTransport(ft),
		WithSeasonType(resolver.SeasonPost),
	)
	require.NoError(t, err)

	_, err = client.Scoreboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "3", ft.calls[0].query.Get("seasontype"))

	_, err = client.Today(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ft.calls[1].query.Get("seasontype"), "explicit dates win over the default")
}

func TestTypedAccessorsTargetTheirEndpoints(t *testing.T) {
	ft := &fakeTransport{payload: []byte(`{"team": {"id": "12", "displayName": "Kansas City Chiefs"}}`)}
	client, err := New("football", "nfl", WithTransport(ft))
	require.NoError(t, err)

	team, err := client.Team(context.Background(), "KC")
	require.NoError(t, err)
	assert.Equal(t, "Kansas City Chiefs", team.Name)
	assert.Equal(t, "https://site.api.espn.com/apis/site/v2/sports/football/nfl/teams/KC", ft.calls[0].url)

	ft.payload = []byte(`{"athletes":[]}`)
	_, err = client.Roster(context.Background(), "KC")
	require.NoError(t, err)
	assert.Equal(t, "https://site.api.espn.com/apis/site/v2/sports/football/nfl/teams/KC/roster", ft.calls[1].url)

	ft.payload = []byte(`{}`)
	_, err = client.Event(context.Background(), "401547638")
	require.NoError(t, err)
	assert.Equal(t, "https://site.api.espn.com/apis/site/v2/sports/football/nfl/summary", ft.calls[2].url)
	assert.Equal(t, "401547638", ft.calls[2].query.Get("event"))

	_, err = client.DepthCharts(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl/teams/12/depthcharts", ft.calls[3].url)

	_, err = client.Draft(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl/draft", ft.calls[4].url)
	assert.Equal(t, "2024", ft.calls[4].query.Get("year"))
}

func TestClearCache(t *testing.T) {
	backend := cache.NewMemoryBackend()
	ft := &fakeTransport{payload: []byte(`{"events":[]}`)}
	client, err := New("football", "nfl", WithTransport(ft), WithCache(backend, time.Minute))
	require.NoError(t, err)

	_, err = client.Scoreboard(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, backend.Len())

	require.NoError(t, client.ClearCache(context.Background()))
	assert.Equal(t, 0, backend.Len())

	_, err = client.Scoreboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, ft.calls, 2)
}

func TestClearCacheWithoutCacheIsNoop(t *testing.T) {
	client, err := New("football", "nfl", WithTransport(&fakeTransport{payload: []byte(`{}`)}))
	require.NoError(t, err)
	assert.NoError(t, client.ClearCache(context.Background()))
}
