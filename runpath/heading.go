package runpath

// Heading is one of the four cardinal movement directions.
// Y grows with the row index, so South moves to the next row.
type Heading uint8

const (
	// East moves to x+1.
	East Heading = iota
	// South moves to y+1.
	South
	// West moves to x-1.
	West
	// North moves to y-1.
	North

	numHeadings = 4
)

var headingDelta = [numHeadings][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

var headingNames = [numHeadings]string{"East", "South", "West", "North"}

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool { return h < numHeadings }

// CW returns h rotated 90° clockwise (East→South→West→North).
func (h Heading) CW() Heading { return (h + 1) % numHeadings }

// CCW returns h rotated 90° counter-clockwise.
func (h Heading) CCW() Heading { return (h + numHeadings - 1) % numHeadings }

// Reverse returns the opposite heading. Reversal is never a legal move.
func (h Heading) Reverse() Heading { return (h + 2) % numHeadings }

// Step returns the neighbor of (x,y) one cell along h.
func (h Heading) Step(x, y int) (int, int) {
	d := headingDelta[h]
	return x + d[0], y + d[1]
}

// Letter returns the compass letter used in move strings: E, S, W or N.
func (h Heading) Letter() byte {
	return "ESWN"[h]
}

func (h Heading) String() string {
	if !h.Valid() {
		return "Heading(?)"
	}
	return headingNames[h]
}
