package domain

// Student is an append-only record: no uniqueness rule and no timestamps.
type Student struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}
