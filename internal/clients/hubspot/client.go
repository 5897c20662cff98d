package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voice-crm/internal/observability"
)

// Object types as they appear in HubSpot paths.
const (
	ObjectContacts = "contacts"
	ObjectNotes    = "notes"
	ObjectDeals    = "deals"
	ObjectTasks    = "tasks"

	// Singular names used by the v4 association API.
	TypeContact = "contact"
	TypeNote    = "note"
	TypeDeal    = "deal"
	TypeTask    = "task"
)

const defaultTimeout = 30 * time.Second

var contactSearchProperties = []string{"email", "firstname", "lastname", "phone"}

// Config configures a Client. Nothing is read from the environment.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// APIError is returned for any non-2xx response and carries the raw body.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsAPIError reports whether err wraps an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Object is a CRM object as returned by the v3 objects API.
type Object struct {
	ID         string         `json:"id"`
	Properties map[string]any `json:"properties"`
	CreatedAt  *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time     `json:"updatedAt,omitempty"`
	Archived   bool           `json:"archived,omitempty"`
}

// Property returns a property as a string, or "" when absent.
func (o Object) Property(name string) string {
	v, ok := o.Properties[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type propertiesBody struct {
	Properties map[string]any `json:"properties"`
}

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchFilterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	FilterGroups []searchFilterGroup `json:"filterGroups"`
	Properties   []string            `json:"properties"`
}

type searchResponse struct {
	Total   int      `json:"total"`
	Results []Object `json:"results"`
}

// Client is a thin, stateless HubSpot REST client. It does not retry.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a HubSpot client from explicit configuration.
func NewClient(cfg Config, logger *observability.Logger) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("hubspot access token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.hubapi.com"
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid hubspot base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// SearchContactByEmail returns the first contact whose email equals email, or nil.
// More than one match is silently truncated to the first.
func (c *Client) SearchContactByEmail(ctx context.Context, email string) (*Object, error) {
	body := searchRequest{
		FilterGroups: []searchFilterGroup{{
			Filters: []searchFilter{{PropertyName: "email", Operator: "EQ", Value: email}},
		}},
		Properties: contactSearchProperties,
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	first := resp.Results[0]
	return &first, nil
}

// CreateContact creates a contact with the given properties.
func (c *Client) CreateContact(ctx context.Context, properties map[string]any) (Object, error) {
	return c.createObject(ctx, ObjectContacts, properties)
}

// UpdateContact patches the given properties onto an existing contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, properties map[string]any) (Object, error) {
	var obj Object
	path := "/crm/v3/objects/contacts/" + url.PathEscape(contactID)
	if err := c.do(ctx, http.MethodPatch, path, propertiesBody{Properties: properties}, &obj); err != nil {
		return Object{}, err
	}
	return obj, nil
}

// CreateNote creates a note engagement.
func (c *Client) CreateNote(ctx context.Context, properties map[string]any) (Object, error) {
	return c.createObject(ctx, ObjectNotes, properties)
}

// CreateDeal creates a deal.
func (c *Client) CreateDeal(ctx context.Context, properties map[string]any) (Object, error) {
	return c.createObject(ctx, ObjectDeals, properties)
}

// CreateTask creates a task engagement.
func (c *Client) CreateTask(ctx context.Context, properties map[string]any) (Object, error) {
	return c.createObject(ctx, ObjectTasks, properties)
}

// Associate creates the default (unlabeled) association from one object to another.
func (c *Client) Associate(ctx context.Context, fromType, fromID, toType, toID string) error {
	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/default/%s/%s",
		url.PathEscape(fromType), url.PathEscape(fromID), url.PathEscape(toType), url.PathEscape(toID))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) createObject(ctx context.Context, objectType string, properties map[string]any) (Object, error) {
	var obj Object
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/"+objectType, propertiesBody{Properties: properties}, &obj); err != nil {
		return Object{}, err
	}
	if obj.ID == "" {
		return Object{}, fmt.Errorf("hubspot create %s returned no id", objectType)
	}
	return obj, nil
}

func (c *Client) do(ctx context.Context, method, path string, reqBody any, out any) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "hubspot_method", Value: method},
		observability.Field{Key: "hubspot_path", Value: path},
	)

	var body io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal hubspot request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build hubspot request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "hubspot request failed", err)
		return fmt.Errorf("hubspot %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read hubspot response: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "hubspot_status", Value: resp.StatusCode},
		observability.Field{Key: "hubspot_latency_ms", Value: time.Since(start).Milliseconds()},
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(respBody)}
		c.logger.Error(ctx, "hubspot returned an error status", apiErr)
		return apiErr
	}
	c.logger.Debug(ctx, "hubspot request succeeded")

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode hubspot response: %w", err)
	}
	return nil
}
