// Package reviewlinks manages the canonical Google review destination for a
// location (persisted as a GHL custom value) and the employee short links
// derived from it.
package reviewlinks

import (
	"context"
	"errors"
	"strings"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/app/repository"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/apperror"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/env"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/ghl"
)

// ReviewLinkFieldKey is the custom value under which the canonical review
// destination is stored on the provider.
const ReviewLinkFieldKey = "AVALINX_GMB_REVIEW_LINK"

const defaultRedirectDomain = "http://localhost:5000"

// CustomValuesAPI is the slice of the provider client this service needs.
type CustomValuesAPI interface {
	ListCustomValues(ctx context.Context, accessToken, locationID string) ([]ghl.CustomValue, error)
	CreateCustomValue(ctx context.Context, accessToken, locationID, key, value string) (*ghl.CustomValue, error)
	UpdateCustomValue(ctx context.Context, accessToken, locationID, id, key, value string) (*ghl.CustomValue, error)
}

// SaveResult reports whether saving the review link created a new custom
// value or updated the existing one in place.
type SaveResult struct {
	Created bool             `json:"created,omitempty"`
	Updated bool             `json:"updated,omitempty"`
	Data    *ghl.CustomValue `json:"data"`
}

// Service orchestrates review destinations and employee links.
type Service struct {
	provider CustomValuesAPI
	links    repository.EmployeeLinkRepository

	// scheme+host prefixed to generated short link paths
	baseRedirectDomain string
}

func NewService(provider CustomValuesAPI, links repository.EmployeeLinkRepository, baseRedirectDomain string) *Service {
	if baseRedirectDomain == "" {
		baseRedirectDomain = defaultRedirectDomain
	}
	return &Service{
		provider:           provider,
		links:              links,
		baseRedirectDomain: strings.TrimRight(baseRedirectDomain, "/"),
	}
}

// BaseRedirectDomainFromEnv resolves the public domain short links are
// served under.
func BaseRedirectDomainFromEnv() string {
	return env.GetEnv("BASE_REDIRECT_DOMAIN", defaultRedirectDomain)
}

// SaveReviewLink stores link as the location's canonical review destination.
// It always reads the full custom value list first so an existing field is
// updated in place instead of duplicated.
func (s *Service) SaveReviewLink(ctx context.Context, accessToken, locationID, link string) (*SaveResult, error) {
	existing, err := s.findReviewLinkValue(ctx, accessToken, locationID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		data, err := s.provider.UpdateCustomValue(ctx, accessToken, locationID, existing.ID, ReviewLinkFieldKey, link)
		if err != nil {
			return nil, err
		}
		return &SaveResult{Updated: true, Data: data}, nil
	}

	data, err := s.provider.CreateCustomValue(ctx, accessToken, locationID, ReviewLinkFieldKey, link)
	if err != nil {
		return nil, err
	}
	return &SaveResult{Created: true, Data: data}, nil
}

// GetReviewLink returns the canonical destination and whether it has ever
// been configured. An unset link is not an error.
func (s *Service) GetReviewLink(ctx context.Context, accessToken, locationID string) (string, bool, error) {
	existing, err := s.findReviewLinkValue(ctx, accessToken, locationID)
	if err != nil {
		return "", false, err
	}
	if existing == nil {
		return "", false, nil
	}
	return existing.Value, true, nil
}

func (s *Service) findReviewLinkValue(ctx context.Context, accessToken, locationID string) (*ghl.CustomValue, error) {
	values, err := s.provider.ListCustomValues(ctx, accessToken, locationID)
	if err != nil {
		return nil, err
	}
	// exact match on the symbolic key, never on the numeric id
	for i := range values {
		if values[i].Key == ReviewLinkFieldKey || values[i].Name == ReviewLinkFieldKey {
			return &values[i], nil
		}
	}
	return nil, nil
}

// CreateEmployeeLink derives a short link for one employee. The current
// review destination is frozen into the record; later destination changes do
// not propagate to links that already exist.
func (s *Service) CreateEmployeeLink(ctx context.Context, accessToken, locationID, employeeName string) (*models.EmployeeLink, string, error) {
	destination, ok, err := s.GetReviewLink(ctx, accessToken, locationID)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", apperror.NewPrecondition("Google Review link not found for this location. Please save the main review link first.")
	}

	link := &models.EmployeeLink{
		EmployeeName: employeeName,
		LocationID:   locationID,
		Destination:  destination,
	}
	if err := s.links.Create(link); err != nil {
		return nil, "", err
	}

	return link, s.ShortURL(link.ID), nil
}

// ListEmployeeLinks returns all employee links in insertion order.
func (s *Service) ListEmployeeLinks() ([]models.EmployeeLink, error) {
	return s.links.List()
}

// ResolveClick counts one click on the link and returns its destination.
func (s *Service) ResolveClick(id string) (string, error) {
	link, err := s.links.IncrementClicks(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperror.NewNotFound("employee link not found")
		}
		return "", err
	}
	return link.Destination, nil
}

// ShortURL builds the public redirect URL for a link id.
func (s *Service) ShortURL(id string) string {
	return s.baseRedirectDomain + "/employee-links/go/" + id
}
