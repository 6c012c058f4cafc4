package listupdate

// BestCase requests the first element of initial length times. With MTF every
// access is at position 0, so the cost is length.
func BestCase[T comparable](initial []T, length int) (*Optimization[T], error) {
	return repeated(initial, 0, length, true)
}

// WorstCase requests the last element of initial length times: the first
// access costs len(initial), every following one costs 1.
func WorstCase[T comparable](initial []T, length int) (*Optimization[T], error) {
	return repeated(initial, len(initial)-1, length, false)
}

func repeated[T comparable](initial []T, index int, length int, minimal bool) (*Optimization[T], error) {
	if length <= 0 {
		return &Optimization[T]{Sequence: []T{}, Minimal: minimal}, nil
	}
	if len(initial) == 0 {
		var zero T
		return nil, elementNotFound(zero)
	}

	sequence := make([]T, length)
	for i := range sequence {
		sequence[i] = initial[index]
	}
	result, err := NewMTF(initial).Process(sequence)
	if err != nil {
		return nil, err
	}
	return &Optimization[T]{
		Sequence: result.Sequence,
		Cost:     result.TotalCost,
		Minimal:  minimal,
	}, nil
}

// Compare serves sequence with fresh MTF and IMTF engines built from initial.
func Compare[T comparable](initial []T, sequence []T) (*Comparison[T], error) {
	mtf, err := NewMTF(initial).Process(sequence)
	if err != nil {
		return nil, err
	}
	imtf, err := NewIMTF(initial).Process(sequence)
	if err != nil {
		return nil, err
	}
	return &Comparison[T]{MTF: mtf, IMTF: imtf}, nil
}
