package observability

// Collector receives facade-level events. Implementations must be safe for
// concurrent use; the facade may be shared across goroutines.
type Collector interface {
	// CompareObserved fires once per comparison with the aggregate result.
	CompareObserved(totalChanges int, sectionsWithChanges []string)
	// ReconstructObserved fires once per topology reconstruction.
	ReconstructObserved(strategy string, groups, tools int)
}

// Nop is the default collector; it discards everything.
type Nop struct{}

func (Nop) CompareObserved(int, []string)         {}
func (Nop) ReconstructObserved(string, int, int)  {}
