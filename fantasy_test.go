package espn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenneh/espn-sports-api/models"
)

func newFantasyFixture(payload string) (*FantasyLeague, *fakeTransport) {
	ft := &fakeTransport{payload: []byte(payload)}
	league := NewFantasyLeague("ffl", 12345678, 2024,
		WithFantasyTransport(ft),
		WithFantasyCredentials("{ABC-123}", "s2tokenvalue"),
	)
	return league, ft
}

func TestFantasyEndpointURL(t *testing.T) {
	league, ft := newFantasyFixture(`{}`)

	_, err := league.Info(context.Background())
	require.NoError(t, err)
	require.Len(t, ft.calls, 1)
	assert.Equal(t,
		"https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl/seasons/2024/segments/0/leagues/12345678",
		ft.calls[0].url)
	assert.Empty(t, ft.calls[0].query)
}

func TestFantasyCredentialsCookie(t *testing.T) {
	league, ft := newFantasyFixture(`{}`)

	_, err := league.Teams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SWID={ABC-123}; espn_s2=s2tokenvalue", ft.calls[0].headers.Get("Cookie"))
}

func TestFantasyViews(t *testing.T) {
	league, ft := newFantasyFixture(`{}`)
	ctx := context.Background()

	_, err := league.Teams(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mTeam", ft.calls[0].query.Get("view"))

	_, err = league.Roster(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "mRoster", ft.calls[1].query.Get("view"))
	assert.Equal(t, "4", ft.calls[1].query.Get("forTeamId"))

	_, err = league.Matchups(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "mMatchup", ft.calls[2].query.Get("view"))
	assert.Equal(t, "7", ft.calls[2].query.Get("scoringPeriodId"))

	_, err = league.Matchups(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, ft.calls[3].query.Get("scoringPeriodId"), "week zero means all scoring periods")

	_, err = league.Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mStandings", ft.calls[4].query.Get("view"))

	_, err = league.FreeAgents(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "kona_player_info", ft.calls[5].query.Get("view"))
	assert.Equal(t, "2", ft.calls[5].query.Get("filterSlotIds"))

	_, err = league.Draft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mDraftDetail", ft.calls[6].query.Get("view"))

	_, err = league.Transactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mTransactions2", ft.calls[7].query.Get("view"))
}

func TestFantasyRejectsNonJSON(t *testing.T) {
	league, _ := newFantasyFixture("<html>login required</html>")
	_, err := league.Info(context.Background())
	require.ErrorIs(t, err, models.ErrMalformedResponse)
}
