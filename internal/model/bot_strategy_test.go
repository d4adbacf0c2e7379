package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBotStrategy(t *testing.T) {
	name, err := ParseBotStrategy(" Expectimax ")
	require.NoError(t, err)
	assert.Equal(t, BotStrategyExpectimax, name)

	_, err = ParseBotStrategy("greedy")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestBotStrategyDisplayName(t *testing.T) {
	assert.Equal(t, "Random", BotStrategyDisplayName(BotStrategyRandom))
	assert.Equal(t, "Expectiminimax", BotStrategyDisplayName(BotStrategyExpectimax))
	assert.Equal(t, "greedy", BotStrategyDisplayName("greedy"))
}
