package model

// Board geometry
const (
	BoardWidth = 5
	BoardSize  = BoardWidth * BoardWidth
	CenterCell = 12
)

// Starting position and competitor countdowns
const (
	StartingScore = 10
	StartingCash  = 10

	// CompetitorTimer is the countdown given to a freshly placed competitor
	CompetitorTimer = 17
	// CompetitorRenewTimer is the countdown after a competitor grows its debt
	CompetitorRenewTimer = 18
)

// Corners are the cells hardest to reach from the rest of the board
var Corners = [4]int{0, 4, 20, 24}

// IsCorner reports whether pos is one of the four corner cells
func IsCorner(pos int) bool {
	for _, c := range Corners {
		if c == pos {
			return true
		}
	}
	return false
}

// reachable lists, for each cell, the 8 other cells sharing its row or column in
// ascending index order. Move enumeration order (and so search tie-breaking) follows it.
var reachable = buildReachable()

func buildReachable() [BoardSize][2 * (BoardWidth - 1)]int {
	var table [BoardSize][2 * (BoardWidth - 1)]int
	for pos := 0; pos < BoardSize; pos++ {
		row, col := pos/BoardWidth, pos%BoardWidth
		n := 0
		for other := 0; other < BoardSize; other++ {
			if other == pos {
				continue
			}
			if other/BoardWidth == row || other%BoardWidth == col {
				table[pos][n] = other
				n++
			}
		}
	}
	return table
}

// Reachable returns the cells a tile at pos may move to, geometry permitting
func Reachable(pos int) []int {
	cells := reachable[pos]
	return cells[:]
}

// TileMenu is the fixed, ordered set of tiles the game can draw
var TileMenu = [...]Tile{
	NewTile(2),
	NewTile(1),
	NewCompetitor(0),
	NewCompetitor(1),
	NewCompetitor(2),
	NewCompetitor(3),
	NewNonProfit(2),
	NewNonProfit(3),
	NewLawsuit(true),
	NewLawsuit(false),
}

// TileTypes is the size of TileMenu
const TileTypes = len(TileMenu)

// Distribution holds per score bracket probabilities for each TileMenu entry.
// Rows are observed frequencies and do not all sum to exactly 1.
var Distribution = [...][TileTypes]float64{
	//  2,     1,     0,    -1,    -2,    -3,    .2,    .3,    +,     -
	{0.428, 0.373, 0.175, 0.024, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000}, // score < 100
	{0.337, 0.393, 0.192, 0.078, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000}, // score < 200
	{0.322, 0.357, 0.193, 0.110, 0.013, 0.000, 0.000, 0.000, 0.000, 0.000}, // score < 300
	{0.208, 0.370, 0.195, 0.156, 0.032, 0.000, 0.013, 0.006, 0.006, 0.013}, // score < 400
	{0.309, 0.309, 0.134, 0.155, 0.062, 0.010, 0.000, 0.010, 0.000, 0.010}, // score < 500
	{0.412, 0.235, 0.059, 0.176, 0.118, 0.000, 0.000, 0.000, 0.000, 0.000}, // otherwise
}

// ProbabilityIntervals is the number of score brackets in Distribution
const ProbabilityIntervals = len(Distribution)

// DistributionRow returns the Distribution row index for a score
func DistributionRow(score int) int {
	row := score / 100
	if row < 0 {
		return 0
	}
	if row >= ProbabilityIntervals {
		return ProbabilityIntervals - 1
	}
	return row
}

// Probabilities returns the tile probabilities for a score
func Probabilities(score int) [TileTypes]float64 {
	return Distribution[DistributionRow(score)]
}
