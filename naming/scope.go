package naming

import "strconv"

// Scope tracks identifiers claimed inside one namespace (a container for type
// names, a generated type for its field names, an enumeration for its
// members) and disambiguates collisions deterministically.
type Scope struct {
	byName map[string]string // normalized name -> owner key
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{byName: map[string]string{}}
}

// Claim reserves name for owner. Claiming the same name again with the same
// owner is idempotent and returns the identical result. A collision with a
// different owner is resolved by appending "_2", "_3", ... in claim order.
func (s *Scope) Claim(name, owner string) string {
	if cur, ok := s.byName[name]; !ok || cur == owner {
		s.byName[name] = owner
		return name
	}
	for i := 2; ; i++ {
		cand := name + "_" + strconv.Itoa(i)
		if cur, ok := s.byName[cand]; !ok || cur == owner {
			s.byName[cand] = owner
			return cand
		}
	}
}

// ClaimIndexed reserves name for owner using the declaration index as the
// disambiguating suffix, which keeps enum member names stable across runs.
// Index idx is used directly ("NAME_2" for idx 2); if that is also taken the
// suffix keeps growing from there.
func (s *Scope) ClaimIndexed(name, owner string, idx int) string {
	if cur, ok := s.byName[name]; !ok || cur == owner {
		s.byName[name] = owner
		return name
	}
	for i := idx; ; i++ {
		cand := name + "_" + strconv.Itoa(i)
		if cur, ok := s.byName[cand]; !ok || cur == owner {
			s.byName[cand] = owner
			return cand
		}
	}
}

// Taken reports whether name is already claimed.
func (s *Scope) Taken(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Owner returns the owner key that claimed name, if any.
func (s *Scope) Owner(name string) (string, bool) {
	o, ok := s.byName[name]
	return o, ok
}
