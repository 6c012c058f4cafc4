package listupdate

// The outcome of serving a single request.
type AccessResult[T comparable] struct {
	Element T
	// 1 + the element's position before the update rule was applied
	Cost int
	// Whether the element was moved to the front
	Promoted bool
	// A copy of the configuration after the update rule was applied
	Configuration []T
}

// The outcome of serving a whole request sequence.
type SequenceResult[T comparable] struct {
	Sequence  []T
	TotalCost int
	Accesses  []AccessResult[T]
}

// A chosen sequence for a configuration and length, with its MTF cost.
type Optimization[T comparable] struct {
	Sequence []T
	Cost     int
	Minimal  bool
}

// The same sequence served by both engines.
type Comparison[T comparable] struct {
	MTF  *SequenceResult[T]
	IMTF *SequenceResult[T]
}

// IMTF's total cost minus MTF's. Negative when IMTF did better.
func (c *Comparison[T]) Difference() int {
	return c.IMTF.TotalCost - c.MTF.TotalCost
}
