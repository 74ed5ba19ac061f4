package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/fenneh/espn-sports-api/models"
	"github.com/fenneh/espn-sports-api/registry"
	"github.com/fenneh/espn-sports-api/transport"
)

// FantasyLeague accesses one ESPN fantasy league for a season. Sport
// codes follow the upstream convention: "ffl" football, "fba"
// basketball, "flb" baseball, "fhl" hockey.
//
// Private leagues need the SWID and espn_s2 cookies; both are treated
// as opaque values and passed through to the transport unmodified.
type FantasyLeague struct {
	sport     string
	leagueID  int
	season    int
	transport transport.Transport
	headers   http.Header
	log       zerolog.Logger
}

// FantasyOption configures a FantasyLeague.
type FantasyOption func(*FantasyLeague)

// WithFantasyCredentials sets the private-league cookies.
func WithFantasyCredentials(swid, espnS2 string) FantasyOption {
	return func(l *FantasyLeague) {
		l.headers.Set("Cookie", fmt.Sprintf("SWID=%s; espn_s2=%s", swid, espnS2))
	}
}

// WithFantasyTransport substitutes the HTTP capability.
func WithFantasyTransport(t transport.Transport) FantasyOption {
	return func(l *FantasyLeague) { l.transport = t }
}

// WithFantasyLogger attaches a structured logger.
func WithFantasyLogger(log zerolog.Logger) FantasyOption {
	return func(l *FantasyLeague) { l.log = log }
}

// NewFantasyLeague creates access to a fantasy league.
func NewFantasyLeague(sport string, leagueID, season int, opts ...FantasyOption) *FantasyLeague {
	l := &FantasyLeague{
		sport:    sport,
		leagueID: leagueID,
		season:   season,
		headers:  http.Header{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.transport == nil {
		l.transport = transport.New(transport.WithLogger(l.log))
	}
	return l
}

func (l *FantasyLeague) endpoint() string {
	return fmt.Sprintf("%s/games/%s/seasons/%d/segments/0/leagues/%d",
		registry.FantasyBaseURL, l.sport, l.season, l.leagueID)
}

func (l *FantasyLeague) get(ctx context.Context, query url.Values) (json.RawMessage, error) {
	raw, err := l.transport.Get(ctx, l.endpoint(), query, l.headers)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: fantasy API returned a non-JSON body", models.ErrMalformedResponse)
	}
	return raw, nil
}

func view(name string) url.Values {
	return url.Values{"view": []string{name}}
}

// Info returns the league settings and metadata.
func (l *FantasyLeague) Info(ctx context.Context) (json.RawMessage, error) {
	return l.get(ctx, nil)
}

// Teams returns the fantasy teams in the league.
func (l *FantasyLeague) Teams(ctx context.Context) (json.RawMessage, error) {
	return l.get(ctx, view("mTeam"))
}

// Roster returns one fantasy team's roster.
func (l *FantasyLeague) Roster(ctx context.Context, teamID int) (json.RawMessage, error) {
	query := view("mRoster")
	query.Set("forTeamId", strconv.Itoa(teamID))
	return l.get(ctx, query)
}

// Matchups returns matchups, optionally for one scoring period.
func (l *FantasyLeague) Matchups(ctx context.Context, week int) (json.RawMessage, error) {
	query := view("mMatchup")
	if week != 0 {
		query.Set("scoringPeriodId", strconv.Itoa(week))
	}
	return l.get(ctx, query)
}

// Standings returns the league standings.
func (l *FantasyLeague) Standings(ctx context.Context) (json.RawMessage, error) {
	return l.get(ctx, view("mStandings"))
}

// FreeAgents returns available players, optionally filtered by slot.
func (l *FantasyLeague) FreeAgents(ctx context.Context, slot string) (json.RawMessage, error) {
	query := view("kona_player_info")
	if slot != "" {
		query.Set("filterSlotIds", slot)
	}
	return l.get(ctx, query)
}

// Draft returns the league's draft results.
func (l *FantasyLeague) Draft(ctx context.Context) (json.RawMessage, error) {
	return l.get(ctx, view("mDraftDetail"))
}

// Transactions returns league transaction history.
func (l *FantasyLeague) Transactions(ctx context.Context) (json.RawMessage, error) {
	return l.get(ctx, view("mTransactions2"))
}
