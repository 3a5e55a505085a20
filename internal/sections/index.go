package sections

// Position is a measured section top. Absent sections are not rendered.
type Position struct {
	Top     int
	Present bool
}

// IndexAt returns the index of the last present section whose top, minus
// tolerance, is at or above scroll. It returns Undetermined when none qualify.
func IndexAt(scroll int, positions []Position, tolerance int) int {
	idx := Undetermined
	for i, p := range positions {
		if !p.Present {
			continue
		}
		if p.Top-tolerance <= scroll {
			idx = i
		}
	}
	return idx
}
