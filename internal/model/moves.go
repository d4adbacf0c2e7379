package model

import "fmt"

// Move relocates the tile at Source onto Dest. Distance 1 is a walk, anything
// longer is a jump along the shared row or column.
type Move struct {
	Source   int `json:"source"`
	Dest     int `json:"dest"`
	Distance int `json:"distance"`
}

// IsWalk returns true for a distance 1 move, the only kind that consumes the
// incoming tile
func (m Move) IsWalk() bool {
	return m.Distance == 1
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.Source, m.Dest)
}

// Distance returns how far apart two aligned cells are. ok is false when the
// cells do not share a row or column, or are the same cell.
func Distance(source, dest int) (dist int, ok bool) {
	if !IsValidPosition(source) || !IsValidPosition(dest) || source == dest {
		return 0, false
	}
	r1, c1 := source/BoardWidth, source%BoardWidth
	r2, c2 := dest/BoardWidth, dest%BoardWidth
	switch {
	case r1 == r2:
		return abs(c1 - c2), true
	case c1 == c2:
		return abs(r1 - r2), true
	default:
		return 0, false
	}
}

// NewMove builds a Move between two aligned cells
func NewMove(source, dest int) (Move, error) {
	dist, ok := Distance(source, dest)
	if !ok {
		return Move{}, fmt.Errorf("%w: %d to %d", ErrInvalidMove, source, dest)
	}
	return Move{Source: source, Dest: dest, Distance: dist}, nil
}

func movable(t Tile) bool {
	return (t.Category == CategoryRegular && t.Rank > 0) || t.IsLawsuit()
}

func (b Board) canMove(source, dest, dist int) bool {
	s, d := b.Cells[source], b.Cells[dest]
	if !movable(s) {
		return false
	}

	// A lawsuit only ever walks onto an occupied, non-lawsuit neighbour
	if s.IsLawsuit() {
		return dist == 1 && !d.IsEmpty() && !d.IsLawsuit()
	}

	if d.IsNonProfit() {
		return false
	}
	if dist == 1 {
		return d.IsEmpty() || d == s || d.IsLawsuit()
	}
	return d == s
}

// LegalMoves enumerates every legal move, ordered by source then destination index
func (b Board) LegalMoves() []Move {
	var moves []Move
	for src := 0; src < BoardSize; src++ {
		if !movable(b.Cells[src]) {
			continue
		}
		for _, dst := range reachable[src] {
			dist, _ := Distance(src, dst)
			if b.canMove(src, dst, dist) {
				moves = append(moves, Move{Source: src, Dest: dst, Distance: dist})
			}
		}
	}
	return moves
}

// IsLegal reports whether m can be played on this board
func (b Board) IsLegal(m Move) bool {
	dist, ok := Distance(m.Source, m.Dest)
	if !ok {
		return false
	}
	return b.canMove(m.Source, m.Dest, dist)
}

// Move plays source->dest with the given incoming tile and returns the resulting
// board. The receiver is left untouched.
func (b Board) Move(source, dest int, incoming Tile) (Board, error) {
	m, err := NewMove(source, dest)
	if err != nil {
		return b, err
	}
	if !b.IsLegal(m) {
		return b, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return b.Apply(m, incoming), nil
}

// Apply plays a move known to be legal (for example one returned by LegalMoves)
func (b Board) Apply(m Move, incoming Tile) Board {
	var next Board
	if m.Distance == 1 {
		next = b.walk(m.Source, m.Dest, incoming)
	} else {
		next = b.jump(m.Source, m.Dest, m.Distance)
	}
	next.decayBonus()
	next.decayTimers()
	return next
}

func (b Board) walk(source, dest int, incoming Tile) Board {
	src, dst := b.Cells[source], b.Cells[dest]

	if src.IsLawsuit() {
		b.sue(dest, src.IsPosLawsuit())
		b.Cash += b.CompetitorCosts()
		b.place(source, incoming)
		return b
	}

	var rank, gain, cost int
	switch {
	case dst == src:
		rank = src.Rank + 1
		gain = rank
	case dst.IsPosLawsuit():
		rank = src.Rank + 1
	case dst.IsNegLawsuit():
		rank = src.Rank - 1
	default:
		rank = src.Rank
		cost = 1
	}

	if bonus := b.Bonus[dest]; bonus > 0 {
		gain += bonus
		cost = 0
		b.Bonus[dest] = 0
	}

	b.Score += gain
	b.Cash += gain - cost

	// Debt is collected before the incoming tile lands, so a new competitor is
	// not charged on the move that placed it
	b.Cash += b.CompetitorCosts()

	b.Cells[dest] = regularOrEmpty(rank)
	b.Timers[dest] = 0
	b.place(source, incoming)
	return b
}

func (b Board) jump(source, dest, dist int) Board {
	rank := b.Cells[source].Rank

	b.clearCell(source)
	b.Cells[dest] = NewTile(rank + 1)
	b.Timers[dest] = 0
	b.Score += rank + 1
	b.Cash += rank + 1

	start, step := source, 1
	if dest < source {
		start = dest
	}
	if source/BoardWidth != dest/BoardWidth {
		step = BoardWidth
	}

	// Competitors that survive being jumped over skip their collection this move
	var spared [BoardSize]bool
	eliminated := 0
	for i := 1; i < dist; i++ {
		pos := start + i*step
		t := b.Cells[pos]
		switch {
		case t.IsCompetitor():
			if rank+t.Rank > 0 {
				b.clearCell(pos)
				eliminated++
			} else {
				spared[pos] = true
			}
		case t.IsNonProfit():
			if t.Rank < rank {
				b.clearCell(pos)
				eliminated++
			}
		}
	}

	if eliminated > 1 {
		combo := 1 << eliminated
		b.Score += combo
		b.Cash += combo
	}

	for pos, t := range b.Cells {
		if t.IsCompetitor() && t.Rank < 0 && !spared[pos] {
			b.Cash += t.Rank
		}
	}
	return b
}

// sue applies a lawsuit to the tile at pos. For competitors the shift applies to
// their debt; a competitor whose debt drops below zero is gone.
func (b *Board) sue(pos int, positive bool) {
	shift := -1
	if positive {
		shift = 1
	}

	t := b.Cells[pos]
	switch t.Category {
	case CategoryCompetitor:
		debt := t.Debt() + shift
		if debt < 0 {
			b.clearCell(pos)
			return
		}
		b.Cells[pos] = NewCompetitor(debt)
	case CategoryNonProfit:
		if t.Rank+shift <= 0 {
			b.clearCell(pos)
			return
		}
		b.Cells[pos] = NewNonProfit(t.Rank + shift)
	case CategoryRegular:
		b.Cells[pos] = regularOrEmpty(t.Rank + shift)
	}
}

func (b *Board) place(pos int, t Tile) {
	if t.IsCompetitor() {
		b.addCompetitor(pos, t)
		return
	}
	b.Cells[pos] = t
	b.Timers[pos] = 0
}

func (b *Board) decayBonus() {
	for i := range b.Bonus {
		if b.Bonus[i] > 0 {
			b.Bonus[i]--
		}
	}
}

// decayTimers counts every competitor down; one that has run out takes on another
// unit of debt and starts over
func (b *Board) decayTimers() {
	for i, t := range b.Cells {
		if !t.IsCompetitor() {
			continue
		}
		if b.Timers[i] == 0 {
			b.Cells[i] = Tile{Rank: t.Rank - 1, Category: CategoryCompetitor}
			b.Timers[i] = CompetitorRenewTimer
			continue
		}
		b.Timers[i]--
	}
}

func regularOrEmpty(rank int) Tile {
	if rank <= 0 {
		return EmptyTile
	}
	return NewTile(rank)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
