package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileTokensRoundTrip(t *testing.T) {
	for _, tile := range TileMenu {
		parsed, err := ParseToken(tile.Token())
		require.NoError(t, err, tile.Token())
		assert.Equal(t, tile, parsed)
	}
}

func TestTileTokens(t *testing.T) {
	tests := []struct {
		tile  Tile
		token string
		shown string
	}{
		{NewTile(3), "3", "3"},
		{NewCompetitor(2), "-2", "-2"},
		{NewCompetitor(0), "0", "(0)"},
		{NewNonProfit(3), ".3", "3*"},
		{NewLawsuit(true), "!+", "+"},
		{NewLawsuit(false), "!-", "-"},
		{EmptyTile, "0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.token, tt.tile.Token())
		assert.Equal(t, tt.shown, tt.tile.String())
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "x", ".", ".0", ".-1", "!", "!x", "1.5"} {
		_, err := ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidCommand, "token %q", token)
	}
}

func TestTileFromInt(t *testing.T) {
	assert.Equal(t, NewTile(4), TileFromInt(4))
	assert.Equal(t, NewCompetitor(3), TileFromInt(-3))
	assert.Equal(t, NewCompetitor(0), TileFromInt(0))
	assert.False(t, TileFromInt(0).IsEmpty())
}

func TestDebt(t *testing.T) {
	assert.Equal(t, 2, NewCompetitor(2).Debt())
	assert.Zero(t, NewCompetitor(0).Debt())
	assert.Zero(t, NewTile(5).Debt())
	assert.Zero(t, NewNonProfit(2).Debt())
}

func TestReachable(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 10, 15, 20}, Reachable(0))
	assert.Equal(t, []int{2, 7, 10, 11, 13, 14, 17, 22}, Reachable(12))
}

func TestDistributionRow(t *testing.T) {
	assert.Equal(t, 0, DistributionRow(-5))
	assert.Equal(t, 0, DistributionRow(99))
	assert.Equal(t, 1, DistributionRow(100))
	assert.Equal(t, 4, DistributionRow(499))
	assert.Equal(t, 5, DistributionRow(500))
	assert.Equal(t, 5, DistributionRow(9999))
}

func TestDistributionRowsNearlySumToOne(t *testing.T) {
	for i, row := range Distribution {
		total := 0.0
		for _, p := range row {
			require.GreaterOrEqual(t, p, 0.0)
			total += p
		}
		assert.InDelta(t, 1.0, total, 0.01, "row %d", i)
	}
}

func TestTileRecordLine(t *testing.T) {
	rec := TileRecord{Tile: NewNonProfit(3), Score: 240}
	assert.Equal(t, ".3 240", rec.String())

	parsed, err := ParseTileRecord(rec.String())
	require.NoError(t, err)
	assert.Equal(t, rec, parsed)

	for _, line := range []string{"", "3", "3 x", "$ 5 3", "q 10"} {
		_, err := ParseTileRecord(line)
		assert.ErrorIs(t, err, ErrInvalidCommand, "line %q", line)
	}
}
