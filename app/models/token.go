package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// GhlToken is one authorized connection to GoHighLevel, exactly as returned
// by the token endpoint plus our own CreatedAt stamp. LocationID is the
// primary key; at most one token exists per location.
type GhlToken struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
	ExpiresIn    int64  `json:"expires_in" validate:"gt=0"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	LocationID   string `json:"locationId" validate:"required"`
	CompanyID    string `json:"companyId,omitempty"`
	CreatedAt    int64  `json:"created_at"` // unix milliseconds, stamped at issuance
}

func (t *GhlToken) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// Age returns how long ago the token was issued.
func (t *GhlToken) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-t.CreatedAt) * time.Millisecond
}

// IsExpired reports whether the validity window has elapsed. Expiry is
// checked lazily on use, there is no background sweep.
func (t *GhlToken) IsExpired(now time.Time) bool {
	return t.Age(now) >= time.Duration(t.ExpiresIn)*time.Second
}

// ExpiresInMinutes returns the whole minutes remaining, clamped at zero.
func (t *GhlToken) ExpiresInMinutes(now time.Time) int64 {
	remaining := time.Duration(t.ExpiresIn)*time.Second - t.Age(now)
	minutes := int64(remaining.Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// MaskedAccessToken returns a display-safe prefix of the access token.
func (t *GhlToken) MaskedAccessToken() string {
	const visible = 20
	if len(t.AccessToken) <= visible {
		return t.AccessToken + "..."
	}
	return t.AccessToken[:visible] + "..."
}
