package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/banker/internal/model"
)

// Kind identifies a command line
type Kind int

const (
	KindBlank  Kind = iota // Empty or whitespace-only line
	KindTile               // An incoming tile to play out
	KindBonus              // Bonus cash dropped on a cell
	KindPrint              // Print the board
	KindTimers             // Print competitor timers
	KindQuit               // End the session
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindTile:
		return "tile"
	case KindBonus:
		return "bonus"
	case KindPrint:
		return "print"
	case KindTimers:
		return "timers"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one parsed input line
type Command struct {
	Kind     Kind
	Tile     model.Tile // KindTile
	Amount   int        // KindBonus
	Position int        // KindBonus
}

// Parse reads one command line:
//
//	N        tile of rank N; zero or negative N is a competitor of that rank
//	! +      positive lawsuit (! - for negative)
//	. V      charitable deduction of rank V
//	$ A P    bonus of A at cell P
//	p        print the board
//	d ct     print competitor timers
//	q        quit
//
// The separating space after '!', '.' and '$' is optional.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: KindBlank}, nil
	}

	rest := strings.TrimSpace(line[1:])
	switch line[0] {
	case '$':
		return parseBonus(line, rest)
	case '!':
		switch rest {
		case "+":
			return tileCommand(model.NewLawsuit(true)), nil
		case "-":
			return tileCommand(model.NewLawsuit(false)), nil
		}
		return Command{}, invalid(line)
	case '.':
		v, err := strconv.Atoi(rest)
		if err != nil || v <= 0 {
			return Command{}, invalid(line)
		}
		return tileCommand(model.NewNonProfit(v)), nil
	}

	switch {
	case line == "p":
		return Command{Kind: KindPrint}, nil
	case line == "q" || line == "quit":
		return Command{Kind: KindQuit}, nil
	case strings.Join(strings.Fields(line), " ") == "d ct":
		return Command{Kind: KindTimers}, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return Command{}, invalid(line)
	}
	return tileCommand(model.TileFromInt(n)), nil
}

func parseBonus(line, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return Command{}, invalid(line)
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil || amount < 0 {
		return Command{}, invalid(line)
	}
	pos, err := strconv.Atoi(fields[1])
	if err != nil || !model.IsValidPosition(pos) {
		return Command{}, invalid(line)
	}
	return Command{Kind: KindBonus, Amount: amount, Position: pos}, nil
}

func tileCommand(t model.Tile) Command {
	return Command{Kind: KindTile, Tile: t}
}

func invalid(line string) error {
	return fmt.Errorf("%w: %q", model.ErrInvalidCommand, line)
}
