package domain

// Address is a postal address attached to a client.
type Address struct {
	ID           int64
	ClientID     int64
	Street       string
	Number       string
	Neighborhood string
	City         string
	Complement   string
}
