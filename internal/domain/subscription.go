package domain

import "time"

// PaymentMethod is free text as entered at the counter (e.g. "pix", "credit_card").
type PaymentMethod string

// Subscription is a client's prepaid plan. Duration is the plan length as recorded by the shop.
type Subscription struct {
	ID            int64
	ClientID      int64
	StartDate     time.Time
	EndDate       time.Time
	Duration      int
	PaymentMethod PaymentMethod
}

// SubscriptionPatch carries the fields of a partial subscription update.
type SubscriptionPatch struct {
	ClientID      *int64
	StartDate     *time.Time
	EndDate       *time.Time
	Duration      *int
	PaymentMethod *PaymentMethod
}

// Apply copies the set fields onto s.
func (p SubscriptionPatch) Apply(s *Subscription) {
	if p.ClientID != nil {
		s.ClientID = *p.ClientID
	}
	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		s.EndDate = *p.EndDate
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
}

// Fields names the fields the patch sets.
func (p SubscriptionPatch) Fields() []string {
	var out []string
	if p.ClientID != nil {
		out = append(out, "client_id")
	}
	if p.StartDate != nil {
		out = append(out, "start_date")
	}
	if p.EndDate != nil {
		out = append(out, "end_date")
	}
	if p.Duration != nil {
		out = append(out, "duration")
	}
	if p.PaymentMethod != nil {
		out = append(out, "payment_method")
	}
	return out
}
