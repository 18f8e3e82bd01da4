package entity

// Team is the sole domain entity: an immutable (id, name) pair seeded at
// process startup.
type Team struct {
	ID   int
	Name string
}
