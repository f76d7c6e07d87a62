package common

// Set builds a membership set from the given slices.
func Set[S ~[]E, E comparable](slices ...S) map[E]struct{} {
	set := make(map[E]struct{})
	for _, s := range slices {
		for _, e := range s {
			set[e] = struct{}{}
		}
	}

	return set
}
