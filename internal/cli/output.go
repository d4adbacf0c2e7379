package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/mcoot/banker/internal/model"
	"github.com/mcoot/banker/internal/services/bot"
	"github.com/mcoot/banker/internal/services/game"
	"github.com/mcoot/banker/internal/services/search"
	"github.com/mcoot/banker/internal/services/stats"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer

	competitor *color.Color
	nonProfit  *color.Color
	lawsuit    *color.Color
	bonus      *color.Color
	highlight  *color.Color
}

// NewOutput creates a new Output formatter writing to stdout and stderr
func NewOutput(format string, noColor bool) *Output {
	return newOutputTo(format, os.Stdout, os.Stderr, noColor)
}

func newOutputTo(format string, out, errOut io.Writer, noColor bool) *Output {
	o := &Output{
		format:     format,
		out:        out,
		errOut:     errOut,
		competitor: color.New(color.FgRed, color.Bold),
		nonProfit:  color.New(color.FgYellow),
		lawsuit:    color.New(color.FgMagenta),
		bonus:      color.New(color.FgGreen),
		highlight:  color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{o.competitor, o.nonProfit, o.lawsuit, o.bonus, o.highlight} {
			c.DisableColor()
		}
	}
	return o
}

// TimerGrid wraps a board to print its competitor countdowns
type TimerGrid model.Board

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *game.TurnResult:
		o.printTurn(v)
	case model.Board:
		fmt.Fprint(o.out, o.RenderBoard(v))
		fmt.Fprintf(o.out, "Score: %d  Cash: %d\n", v.Score, v.Cash)
	case TimerGrid:
		fmt.Fprint(o.out, RenderTimers(model.Board(v)))
	case *model.Session:
		o.printSession(v)
	case []model.SessionID:
		for _, id := range v {
			fmt.Fprintln(o.out, id)
		}
	case *bot.Summary:
		o.printSummary(v)
	case []stats.Bracket:
		o.printBrackets(v)
	case search.Stats:
		o.printSearchStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RenderBoard draws the grid with coloured hostile tiles and '$' marked bonus cells
func (o *Output) RenderBoard(b model.Board) string {
	var sb strings.Builder
	for i, t := range b.Cells {
		if i != 0 && i%model.BoardWidth == 0 {
			sb.WriteByte('\n')
		}
		text := t.String()
		if b.Bonus[i] > 0 {
			text = "$" + text
		}
		// Pad before colouring so escape codes do not skew the columns
		sb.WriteString(strings.Repeat(" ", max(0, 4-len(text))))
		if c := o.colorFor(t, b.Bonus[i] > 0); c != nil {
			text = c.Sprint(text)
		}
		sb.WriteString(text)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (o *Output) colorFor(t model.Tile, bonus bool) *color.Color {
	switch {
	case t.IsCompetitor():
		return o.competitor
	case t.IsNonProfit():
		return o.nonProfit
	case t.IsLawsuit():
		return o.lawsuit
	case bonus:
		return o.bonus
	default:
		return nil
	}
}

// MoveDiagram marks the source with A and the destination with B
func MoveDiagram(m model.Move) string {
	var sb strings.Builder
	for i := 0; i < model.BoardSize; i++ {
		switch i {
		case m.Source:
			sb.WriteByte('A')
		case m.Dest:
			sb.WriteByte('B')
		default:
			sb.WriteByte('+')
		}
		if i%model.BoardWidth == model.BoardWidth-1 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// RenderTimers draws each competitor's countdown, '.' elsewhere
func RenderTimers(b model.Board) string {
	var sb strings.Builder
	for i, t := range b.Cells {
		if i != 0 && i%model.BoardWidth == 0 {
			sb.WriteByte('\n')
		}
		cell := "."
		if t.IsCompetitor() {
			cell = fmt.Sprint(b.Timers[i])
		}
		fmt.Fprintf(&sb, "%4s", cell)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (o *Output) printTurn(r *game.TurnResult) {
	for _, step := range r.Steps {
		kind := "walk"
		if !step.Move.IsWalk() {
			kind = "jump"
		}
		fmt.Fprintf(o.out, "%s %s (%s)  value %.2f  took %s\n",
			o.highlight.Sprint("Move"), step.Move, kind, step.Value, step.Elapsed.Round(time.Microsecond))
		fmt.Fprint(o.out, MoveDiagram(step.Move))
		fmt.Fprintf(o.out, "Score: %d  Cash: %d\n", step.Board.Score, step.Board.Cash)
		fmt.Fprintln(o.out, strings.Repeat("-", 20))
	}
	if r.GameOver {
		fmt.Fprintf(o.out, "%s: %s (score %d)\n", o.competitor.Sprint("Game over"), r.Reason, r.Board.Score)
	}
}

func (o *Output) printSession(s *model.Session) {
	fmt.Fprintf(o.out, "Session: %s\n", s.ID)
	fmt.Fprintf(o.out, "Depth: %d  Turns: %d  Moves: %d\n", s.Depth, s.Turns, s.Moves)
	if s.IsOver() {
		fmt.Fprintf(o.out, "Over: %s\n", s.Reason)
	}
	fmt.Fprint(o.out, o.RenderBoard(s.Board))
	fmt.Fprintf(o.out, "Score: %d  Cash: %d\n", s.Board.Score, s.Board.Cash)
}

func (o *Output) printSummary(s *bot.Summary) {
	fmt.Fprintf(o.out, "Strategy: %s\n", model.BotStrategyDisplayName(s.Strategy))
	for _, r := range s.Results {
		reason := string(r.Reason)
		if reason == "" {
			reason = "turn limit"
		}
		fmt.Fprintf(o.out, "Game %d: score %s, cash %s, %d turns, %d moves (%s)\n",
			r.Index+1, humanize.Comma(int64(r.Score)), humanize.Comma(int64(r.Cash)), r.Turns, r.Moves, reason)
	}
	fmt.Fprintf(o.out, "Average score across %d runs: %s\n", len(s.Results), humanize.Commaf(s.AverageScore))
	fmt.Fprintf(o.out, "Best score: %s\n", humanize.Comma(int64(s.MaxScore)))
	fmt.Fprintf(o.out, "Took %s\n", s.Elapsed.Round(time.Millisecond))
}

func (o *Output) printBrackets(brackets []stats.Bracket) {
	if len(brackets) == 0 {
		fmt.Fprintln(o.out, "No tiles recorded")
		return
	}
	for _, b := range brackets {
		fmt.Fprintf(o.out, "score_category: %d (%s tiles)\n", b.Index, humanize.Comma(int64(b.Total)))
		for _, t := range b.Tokens {
			fmt.Fprintf(o.out, "%s: %.3f\n", t.Token, t.Frequency)
		}
	}
}

func (o *Output) printSearchStats(s search.Stats) {
	fmt.Fprintf(o.out, "Nodes: %s max, %s chance, %s leaf, %s cache hits\n",
		humanize.Comma(int64(s.MaxNodes)),
		humanize.Comma(int64(s.ChanceNodes)),
		humanize.Comma(int64(s.LeafNodes)),
		humanize.Comma(int64(s.CacheHits)),
	)
}
