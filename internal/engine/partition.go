package engine

import "fmt"

// RowRange is an inclusive range of grid rows assigned to one worker.
type RowRange struct {
	Start int
	End   int
}

// Empty reports whether the range contains no rows.
func (r RowRange) Empty() bool { return r.End < r.Start }

// Rows returns the number of rows in the range.
func (r RowRange) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Partition divides height rows into workers contiguous ranges. Every row is
// assigned exactly once, range sizes differ by at most one, and the extra
// rows go to the lowest-numbered workers. When workers exceeds height the
// surplus workers receive empty ranges.
func Partition(height, workers int) ([]RowRange, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("engine: worker count must be positive, got %d", workers)
	}
	base := height / workers
	rem := height % workers
	ranges := make([]RowRange, workers)
	row := 0
	for i := range ranges {
		rows := base
		if i < rem {
			rows = base + 1
		}
		ranges[i] = RowRange{Start: row, End: row + rows - 1}
		row += rows
	}
	return ranges, nil
}
