package dto

type BarberRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type BarberResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
