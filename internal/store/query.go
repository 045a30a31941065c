package store

// Predicate is a store-agnostic filter condition. Adapters translate a
// predicate tree into their native query representation.
type Predicate interface {
	predicate()
}

// Equals matches documents whose field holds exactly the given value.
type Equals struct {
	Field string
	Value any
}

// In matches documents whose array field contains the given value.
type In struct {
	Field string
	Value any
}

// Range matches documents whose numeric field lies within the given
// bounds. A nil bound leaves that side open.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

// And matches documents satisfying every child predicate.
type And []Predicate

// Or matches documents satisfying at least one child predicate.
type Or []Predicate

func (Equals) predicate() {}
func (In) predicate()     {}
func (Range) predicate()  {}
func (And) predicate()    {}
func (Or) predicate()     {}
