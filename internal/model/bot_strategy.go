package model

import (
	"fmt"
	"strings"
)

// Move strategies a bot can play with
const (
	BotStrategyRandom     = "random"
	BotStrategyExpectimax = "expectimax"
)

var botStrategyLabels = map[string]string{
	BotStrategyRandom:     "Random",
	BotStrategyExpectimax: "Expectiminimax",
}

// ValidBotStrategies lists the strategy identifiers in a stable order
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyExpectimax}
}

// BotStrategyDisplayName returns the report label for a strategy, or the
// identifier itself when it is unknown
func BotStrategyDisplayName(strategy string) string {
	if label, ok := botStrategyLabels[strategy]; ok {
		return label
	}
	return strategy
}

// ParseBotStrategy normalises a user supplied strategy name
func ParseBotStrategy(name string) (string, error) {
	normalised := strings.ToLower(strings.TrimSpace(name))
	if _, ok := botStrategyLabels[normalised]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return normalised, nil
}
