package models

import "time"

// EmployeeLink is a short link attributing review clicks to one employee.
//
// Destination is copied from the location's review link at creation time and
// never updated afterwards: changing the canonical review link later does not
// touch links that already exist. That staleness is intentional, existing
// printed/shared QR material must keep resolving to what it was created for.
type EmployeeLink struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeeName"`
	LocationID   string    `json:"locationId"`
	Destination  string    `json:"destination"`
	Clicks       int64     `json:"clicks"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateEmployeeLinkRequest is the body of POST /employee-links/create.
type CreateEmployeeLinkRequest struct {
	EmployeeName string `json:"employeeName" validate:"required,min=1"`
	LocationID   string `json:"locationId" validate:"required,min=1"`
}

// SetReviewLinkRequest is the body of POST /reviews/set-link.
type SetReviewLinkRequest struct {
	LocationID string `json:"locationId" validate:"required,min=1"`
	Link       string `json:"link" validate:"required,url"`
}
