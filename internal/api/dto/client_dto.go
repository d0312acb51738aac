package dto

// CreateClientRequest payload for POST /clients.
type CreateClientRequest struct {
	CPF   string `json:"cpf" validate:"required,len=11,numeric"`
	Name  string `json:"name" validate:"required,max=60"`
	Phone string `json:"phone" validate:"omitempty,max=12"`
}

// UpdateClientRequest payload for PATCH /clients/:id. Absent fields are kept.
type UpdateClientRequest struct {
	CPF   *string `json:"cpf" validate:"omitempty,len=11,numeric"`
	Name  *string `json:"name" validate:"omitempty,min=1,max=60"`
	Phone *string `json:"phone" validate:"omitempty,max=12"`
}

type ClientResponse struct {
	ID    int64  `json:"id"`
	CPF   string `json:"cpf"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
