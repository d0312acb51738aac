package dto

// AddressRequest is used for both create and full replace.
type AddressRequest struct {
	ClientID     int64  `json:"client_id" validate:"required,gt=0"`
	Street       string `json:"street" validate:"required,max=45"`
	Number       string `json:"number" validate:"required,max=45"`
	Neighborhood string `json:"neighborhood" validate:"max=45"`
	City         string `json:"city" validate:"required,max=45"`
	Complement   string `json:"complement" validate:"max=45"`
}

type AddressResponse struct {
	ID           int64  `json:"id"`
	ClientID     int64  `json:"client_id"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Complement   string `json:"complement"`
}
