package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/banker/internal/model"
)

func TestParseTiles(t *testing.T) {
	tests := []struct {
		line string
		tile model.Tile
	}{
		{"3", model.NewTile(3)},
		{"  1  ", model.NewTile(1)},
		{"0", model.NewCompetitor(0)},
		{"-2", model.NewCompetitor(2)},
		{"! +", model.NewLawsuit(true)},
		{"! -", model.NewLawsuit(false)},
		{"!+", model.NewLawsuit(true)},
		{". 3", model.NewNonProfit(3)},
		{".2", model.NewNonProfit(2)},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, KindTile, cmd.Kind, tt.line)
		assert.Equal(t, tt.tile, cmd.Tile, tt.line)
	}
}

func TestParseBonus(t *testing.T) {
	cmd, err := Parse("$ 5 12")
	require.NoError(t, err)
	assert.Equal(t, Command{Kind: KindBonus, Amount: 5, Position: 12}, cmd)

	cmd, err = Parse("$0 24")
	require.NoError(t, err)
	assert.Equal(t, Command{Kind: KindBonus, Amount: 0, Position: 24}, cmd)
}

func TestParseDebugCommands(t *testing.T) {
	cmd, err := Parse("p")
	require.NoError(t, err)
	assert.Equal(t, KindPrint, cmd.Kind)

	cmd, err = Parse("d  ct")
	require.NoError(t, err)
	assert.Equal(t, KindTimers, cmd.Kind)

	cmd, err = Parse("q")
	require.NoError(t, err)
	assert.Equal(t, KindQuit, cmd.Kind)

	cmd, err = Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, KindBlank, cmd.Kind)
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, line := range []string{
		"x", "3 4", "1.5", "! x", "!", ". 0", ". -1", ". a",
		"$ 5", "$ -1 3", "$ 5 25", "$ 5 -1", "$ a b", "d", "d timers", "pp",
	} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, model.ErrInvalidCommand, "line %q", line)
	}
}
