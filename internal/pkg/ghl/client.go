// Package ghl talks to the GoHighLevel (LeadConnector) REST API: the OAuth2
// code exchange, location profiles and location custom values.
package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/apperror"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/env"
)

const (
	defaultBaseURL      = "https://services.leadconnectorhq.com"
	defaultAuthorizeURL = "https://marketplace.gohighlevel.com/oauth/chooselocation"
	defaultRedirectURI  = "http://localhost:5000/auth/callback"

	// API version header GHL requires on every authenticated call
	apiVersion = "2021-07-28"

	oauthScope = "locations.readonly contacts.readonly"
)

// Client performs all outbound calls to GoHighLevel.
type Client struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	AuthorizeEndpoint string
	BaseURL           string

	HTTPClient *http.Client
}

// NewClientFromEnv builds a client from GHL_* environment variables. Missing
// credentials are tolerated at startup (every OAuth call will fail instead).
func NewClientFromEnv() *Client {
	clientID := strings.TrimSpace(env.GetEnv("GHL_CLIENT_ID", ""))
	clientSecret := strings.TrimSpace(env.GetEnv("GHL_CLIENT_SECRET", ""))
	if clientID == "" || clientSecret == "" {
		log.Println("[ghl] OAuth credentials not found in environment, OAuth calls will fail")
	}

	return &Client{
		ClientID:          clientID,
		ClientSecret:      clientSecret,
		RedirectURI:       strings.TrimSpace(env.GetEnv("GHL_REDIRECT_URI", defaultRedirectURI)),
		AuthorizeEndpoint: strings.TrimSpace(env.GetEnv("GHL_AUTHORIZE_URL", defaultAuthorizeURL)),
		BaseURL:           strings.TrimRight(env.GetEnv("GHL_API_BASE_URL", defaultBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// AuthorizeURL returns the provider's location-chooser URL the browser is
// redirected to. Pure, no side effects.
func (c *Client) AuthorizeURL() string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.ClientID)
	params.Set("redirect_uri", c.RedirectURI)
	params.Set("scope", oauthScope)

	return c.AuthorizeEndpoint + "?" + params.Encode()
}

// tokenResponse mirrors the provider's token payload. The location id field
// name is not consistent across GHL app types, both spellings are accepted.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	LocationID   string `json:"locationId"`
	LocationIDLC string `json:"location_id"`
	CompanyID    string `json:"companyId"`
}

// ExchangeCode posts the authorization code grant and returns a validated
// token stamped with the issuance time.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*models.GhlToken, error) {
	form := url.Values{}
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.RedirectURI)

	body, err := c.do(ctx, http.MethodPost, c.BaseURL+"/oauth/token", "", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	var raw tokenResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.NewValidation("provider returned a malformed token response", err.Error())
	}

	locationID := raw.LocationID
	if locationID == "" {
		locationID = raw.LocationIDLC
	}
	if locationID == "" {
		locationID = "unknown"
	}

	token := &models.GhlToken{
		AccessToken:  raw.AccessToken,
		RefreshToken: raw.RefreshToken,
		ExpiresIn:    raw.ExpiresIn,
		TokenType:    raw.TokenType,
		Scope:        raw.Scope,
		LocationID:   locationID,
		CompanyID:    raw.CompanyID,
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := token.Validate(); err != nil {
		return nil, apperror.NewValidation("provider token response failed validation", err.Error())
	}

	log.Printf("[ghl] token exchange successful for location: %s", token.LocationID)
	return token, nil
}

// GetLocation fetches the business profile for one location and normalizes
// it into a GhlAccount.
func (c *Client) GetLocation(ctx context.Context, accessToken, locationID string) (*models.GhlAccount, error) {
	body, err := c.do(ctx, http.MethodGet, c.BaseURL+"/locations/"+url.PathEscape(locationID), accessToken, nil, "")
	if err != nil {
		return nil, err
	}

	type locationPayload struct {
		ID           string `json:"id"`
		CompanyID    string `json:"companyId"`
		Name         string `json:"name"`
		BusinessName string `json:"businessName"`
		Address      string `json:"address"`
		Timezone     string `json:"timezone"`
		Country      string `json:"country"`
	}
	var raw struct {
		locationPayload
		Location *locationPayload `json:"location"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.NewValidation("provider returned a malformed location response", err.Error())
	}

	// some endpoints wrap the location in an envelope, some return it flat
	loc := raw.locationPayload
	if raw.Location != nil {
		loc = *raw.Location
	}

	name := loc.Name
	if name == "" {
		name = loc.BusinessName
	}
	if name == "" {
		name = "Unknown Business"
	}
	id := loc.ID
	if id == "" {
		id = locationID
	}

	account := &models.GhlAccount{
		LocationID: id,
		CompanyID:  loc.CompanyID,
		Name:       name,
		Address:    loc.Address,
		Timezone:   loc.Timezone,
		Country:    loc.Country,
	}
	if err := account.Validate(); err != nil {
		return nil, apperror.NewValidation("provider location response failed validation", err.Error())
	}

	return account, nil
}

// CustomValue is one provider-side named key/value attached to a location.
type CustomValue struct {
	ID         string `json:"id"`
	Key        string `json:"key"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	LocationID string `json:"locationId"`
}

// ListCustomValues returns all custom values for a location.
func (c *Client) ListCustomValues(ctx context.Context, accessToken, locationID string) ([]CustomValue, error) {
	body, err := c.do(ctx, http.MethodGet, c.customValuesURL(locationID), accessToken, nil, "")
	if err != nil {
		return nil, err
	}

	var raw struct {
		CustomValues []CustomValue `json:"customValues"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.NewValidation("provider returned malformed custom values", err.Error())
	}
	return raw.CustomValues, nil
}

// CreateCustomValue creates a new custom value for a location.
func (c *Client) CreateCustomValue(ctx context.Context, accessToken, locationID, key, value string) (*CustomValue, error) {
	payload, err := json.Marshal(map[string]string{"name": key, "value": value})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, c.customValuesURL(locationID), accessToken, bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}

	log.Printf("[ghl] custom value created: %s for location %s", key, locationID)
	return decodeCustomValue(body)
}

// UpdateCustomValue updates an existing custom value in place, keyed by its
// provider-assigned id.
func (c *Client) UpdateCustomValue(ctx context.Context, accessToken, locationID, id, key, value string) (*CustomValue, error) {
	payload, err := json.Marshal(map[string]string{"name": key, "value": value})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPut, c.customValuesURL(locationID)+"/"+url.PathEscape(id), accessToken, bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}

	log.Printf("[ghl] custom value updated: %s for location %s", key, locationID)
	return decodeCustomValue(body)
}

func (c *Client) customValuesURL(locationID string) string {
	return c.BaseURL + "/locations/" + url.PathEscape(locationID) + "/customValues"
}

func decodeCustomValue(body []byte) (*CustomValue, error) {
	// write responses are sometimes wrapped in a customValue envelope
	var raw struct {
		CustomValue
		Wrapped *CustomValue `json:"customValue"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.NewValidation("provider returned a malformed custom value", err.Error())
	}
	if raw.Wrapped != nil {
		return raw.Wrapped, nil
	}
	cv := raw.CustomValue
	return &cv, nil
}

// do executes one provider request with the standard headers and returns the
// response body. Transport errors, timeouts and non-2xx statuses all come
// back as provider errors carrying the upstream message.
func (c *Client) do(ctx context.Context, method, rawURL, accessToken string, reqBody io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, apperror.NewProvider("failed to build provider request", err.Error())
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("Version", apiVersion)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperror.NewProvider("provider request failed", err.Error())
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.NewProvider(
			fmt.Sprintf("GHL API error: status=%d", resp.StatusCode),
			upstreamMessage(body),
		)
	}
	return body, nil
}

// upstreamMessage pulls the provider's message field out of an error body,
// falling back to the raw body.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
