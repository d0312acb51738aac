package dto

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CreateSubscriptionRequest payload for POST /subscriptions.
type CreateSubscriptionRequest struct {
	ClientID      int64  `json:"client_id" validate:"required,gt=0"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Duration      int    `json:"duration" validate:"gte=0"`
	PaymentMethod string `json:"payment_method" validate:"required,max=45"`
}

// UpdateSubscriptionRequest payload for PATCH /subscriptions/:id.
type UpdateSubscriptionRequest struct {
	ClientID      *int64  `json:"client_id" validate:"omitempty,gt=0"`
	StartDate     *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Duration      *int    `json:"duration" validate:"omitempty,gte=0"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,min=1,max=45"`
}

type SubscriptionResponse struct {
	ID            int64  `json:"id"`
	ClientID      int64  `json:"client_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Duration      int    `json:"duration"`
	PaymentMethod string `json:"payment_method"`
}
