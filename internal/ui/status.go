package ui

// Status summarizes the run state shown by the overlay.
type Status struct {
	Turn       int
	Population int
	Workers    int
	Done       bool
}
