package pathcount

// Move is a single step of a candidate path.
type Move uint8

const (
	// Down increments the row. Encoded as a clear bit.
	Down Move = iota
	// Right increments the column. Encoded as a set bit.
	Right
)

// MaxEncodableMoves is the longest move sequence the uint64 encoding can
// enumerate: 2^63 candidates is the largest range a uint64 loop bound holds.
const MaxEncodableMoves = 63

// String implements fmt.Stringer.
func (m Move) String() string {
	if m == Right {
		return "right"
	}
	return "down"
}

// MoveAt decodes the i-th move of the candidate encoded by bits. Bit 0 is
// the first move taken.
func MoveAt(bits uint64, i int) Move {
	if (bits>>uint(i))&1 == 1 {
		return Right
	}
	return Down
}

// RequiredMoves is the length of every monotone path between the corners of
// a rows x cols grid.
func RequiredMoves(rows, cols int) int {
	return rows + cols - 2
}
