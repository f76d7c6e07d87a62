package common

import "strconv"

// NewStem creates a new Stem instance with the provided stem and namespace.
// The nil namespace is treated as a free namespace, meaning all names are available.
// Names handed out are added to the namespace.
func NewStem(stem string, namespace map[string]struct{}) *Stem {
	if namespace == nil {
		namespace = make(map[string]struct{})
	}

	return &Stem{
		taken: namespace,
		stem:  stem,
	}
}

// Stem allocates identifiers that are not yet taken in a namespace.
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// Claim returns the stem itself when it is free, otherwise the next numbered
// variant.
func (s *Stem) Claim() string {
	if _, ok := s.taken[s.stem]; !ok {
		s.taken[s.stem] = struct{}{}
		return s.stem
	}

	return s.Next()
}

// Next returns the first free name of the form stem1, stem2, ...
func (s *Stem) Next() string {
	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
