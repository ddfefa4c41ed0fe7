package models

import "github.com/go-playground/validator/v10"

// GhlAccount is the last-fetched business profile snapshot for a location.
// It is replaced wholesale on every successful profile fetch, never merged.
type GhlAccount struct {
	LocationID string `json:"locationId" validate:"required"`
	CompanyID  string `json:"companyId,omitempty"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Country    string `json:"country,omitempty"`
}

func (a *GhlAccount) Validate() error {
	v := validator.New()

	return v.Struct(a)
}
