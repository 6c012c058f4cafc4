package listupdate

// Engine is what Run drives. Both MTF and IMTF implement it.
type Engine[T comparable] interface {
	Reset()
	Access(element T) (AccessResult[T], error)
}

// Engines implementing Binder get the sequence bound before a run.
type Binder[T comparable] interface {
	Bind(sequence []T)
}

// Run resets engine, binds sequence when the engine supports lookahead, and
// serves every request in order. The first failing access aborts the run:
// the error is returned and no partial result is.
func Run[T comparable](engine Engine[T], sequence []T) (*SequenceResult[T], error) {
	engine.Reset()
	if binder, ok := engine.(Binder[T]); ok {
		binder.Bind(sequence)
	}

	result := &SequenceResult[T]{
		Sequence: copyOf(sequence),
		Accesses: make([]AccessResult[T], 0, len(sequence)),
	}
	for _, request := range sequence {
		access, err := engine.Access(request)
		if err != nil {
			return nil, err
		}
		result.Accesses = append(result.Accesses, access)
		result.TotalCost += access.Cost
	}
	return result, nil
}
