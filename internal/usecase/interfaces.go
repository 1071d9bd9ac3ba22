package usecase

// IDGenerator produces unique identifiers for newly created records.
type IDGenerator interface {
	Generate() string
}
