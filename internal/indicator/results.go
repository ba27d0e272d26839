package indicator

// ResultSet keeps the latest Result per reference code. Codes are listed in
// the order they were first stored. A ResultSet is owned by one caller and is
// not safe for concurrent writes.
type ResultSet struct {
	byCode map[string]Result
	order  []string
}

// NewResultSet returns an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{byCode: make(map[string]Result)}
}

// Put stores r, replacing any earlier result for the same code.
func (s *ResultSet) Put(r Result) {
	if _, ok := s.byCode[r.ReferenceCode]; !ok {
		s.order = append(s.order, r.ReferenceCode)
	}
	s.byCode[r.ReferenceCode] = r
}

// Get returns the stored result for code.
func (s *ResultSet) Get(code string) (Result, bool) {
	r, ok := s.byCode[code]
	return r, ok
}

// Len returns the number of distinct codes stored.
func (s *ResultSet) Len() int {
	return len(s.order)
}

// Values returns one result per code in first-stored order.
func (s *ResultSet) Values() []Result {
	out := make([]Result, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, s.byCode[code])
	}
	return out
}
