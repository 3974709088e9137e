package visits

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 30 * time.Second

// Client is a typed HTTP client for the visit endpoints. The zero
// value is not usable, construct it with NewClient.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for the given server and bearer token.
// An empty token is allowed, calls will then fail with ErrNoSession.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// envelope mirrors the server's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error,omitempty"`
}

// ScheduleVisitInput is the payload for requesting a visit.
type ScheduleVisitInput struct {
	PublicationID uuid.UUID `json:"publicationId"`
	VisitDate     string    `json:"visitDate"`
	VisitTime     string    `json:"visitTime"`
	UserMessage   string    `json:"userMessage,omitempty"`
}

// ScheduleVisit requests a visit slot on a publication.
func (c *Client) ScheduleVisit(ctx context.Context, input *ScheduleVisitInput) (*entity.VisitRequest, error) {
	var visit entity.VisitRequest
	if err := c.do(ctx, http.MethodPost, "/visits/request", input, &visit); err != nil {
		return nil, err
	}

	return &visit, nil
}

// MyVisits fetches one page of the visits the user requested.
func (c *Client) MyVisits(ctx context.Context, page, size int) (*usecase.Page[*entity.VisitRequest], error) {
	return c.fetchPage(ctx, "/visits/my-visits", page, size)
}

// MyPropertyVisits fetches one page of the visits requested on the
// user's publications.
func (c *Client) MyPropertyVisits(ctx context.Context, page, size int) (*usecase.Page[*entity.VisitRequest], error) {
	return c.fetchPage(ctx, "/visits/my-property-visits", page, size)
}

func (c *Client) fetchPage(ctx context.Context, path string, page, size int) (*usecase.Page[*entity.VisitRequest], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var result usecase.Page[*entity.VisitRequest]
	if err := c.do(ctx, http.MethodGet, path+"?"+query.Encode(), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Accept accepts a pending visit request as the publication owner.
func (c *Client) Accept(ctx context.Context, visitID uuid.UUID, meetingLocation, additionalMessage string) (*entity.VisitRequest, error) {
	payload := map[string]string{
		"meetingLocation":   meetingLocation,
		"additionalMessage": additionalMessage,
	}

	var visit entity.VisitRequest
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/visits/%s/accept", visitID), payload, &visit); err != nil {
		return nil, err
	}

	return &visit, nil
}

// Reject rejects a pending visit request as the publication owner.
func (c *Client) Reject(ctx context.Context, visitID uuid.UUID, rejectionReason string) (*entity.VisitRequest, error) {
	payload := map[string]string{
		"rejectionReason": rejectionReason,
	}

	var visit entity.VisitRequest
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/visits/%s/reject", visitID), payload, &visit); err != nil {
		return nil, err
	}

	return &visit, nil
}

// Cancel withdraws a pending visit request as the visitor.
func (c *Client) Cancel(ctx context.Context, visitID uuid.UUID) (*entity.VisitRequest, error) {
	var visit entity.VisitRequest
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/visits/%s/cancel", visitID), nil, &visit); err != nil {
		return nil, err
	}

	return &visit, nil
}

// Notifications fetches the aggregated visit inbox.
func (c *Client) Notifications(ctx context.Context) (*usecase.VisitNotifications, error) {
	var notifications usecase.VisitNotifications
	if err := c.do(ctx, http.MethodGet, "/visits/notifications", nil, &notifications); err != nil {
		return nil, err
	}

	return &notifications, nil
}

// MarkNotificationsRead resets one unread counter kind.
func (c *Client) MarkNotificationsRead(ctx context.Context, kind usecase.NotificationKind) error {
	path := "/visits/notifications/mark-read?type=" + url.QueryEscape(string(kind))

	return c.do(ctx, http.MethodPut, path, nil, nil)
}

// GetPublication fetches a single publication, used by the store to
// validate a requested slot against the availability windows.
func (c *Client) GetPublication(ctx context.Context, id uuid.UUID) (*entity.Publication, error) {
	var publication entity.Publication
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/publications/%s", id), nil, &publication); err != nil {
		return nil, err
	}

	return &publication, nil
}

// do performs one API call and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if c.token == "" {
		return ErrNoSession
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	if !env.Success {
		return apiError(resp.StatusCode, &env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}

// apiError maps a failed envelope to the client error taxonomy.
func apiError(statusCode int, env *envelope) error {
	if statusCode == http.StatusConflict {
		return ErrInvalidTransition
	}
	if statusCode == http.StatusUnauthorized {
		return ErrNoSession
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    env.Message,
	}
	if env.Error != nil {
		apiErr.Code = env.Error.Code
		if env.Error.Details != "" {
			apiErr.Message = env.Error.Details
		}
	}

	return apiErr
}
