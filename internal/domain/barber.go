package domain

// Barber is a member of the shop's staff who serves clients.
type Barber struct {
	ID   int64
	Name string
}
