package dto

import "time"

type PurchaseRequest struct {
	PlanID  string `json:"plan_id" validate:"required"`
	Receipt string `json:"receipt,omitempty"`
}

func (r PurchaseRequest) Validate() error {
	return GetValidator().Struct(r)
}

type PurchaseResponse struct {
	Active    bool       `json:"active"`
	Plan      string     `json:"plan"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
