package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	authdomain "github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain"
	memberdomain "github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
)

// TokenSource supplies the bearer credential for protected calls. The
// session store satisfies it.
type TokenSource interface {
	Token() string
}

// Client is the typed request boundary to the remote record-keeping
// service. Every protected call carries the bearer token from the token
// source unless an explicit token is supplied; every failure surfaces as
// a single normalized message. No retries: transient failures propagate
// to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

type validateTokenResponse struct {
	IsValid bool `json:"is_valid"`
}

// ValidateToken checks a token with the record service. The token under
// test doubles as the bearer credential since the store is not populated
// yet at this point.
func (c *Client) ValidateToken(ctx context.Context, token string) (bool, error) {
	var resp validateTokenResponse
	err := c.do(ctx, http.MethodPost, constant.EndpointValidateToken, validateTokenRequest{Token: token}, token, &resp)
	if err != nil {
		return false, err
	}

	return resp.IsValid, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status  string `json:"status"`
	UserID  string `json:"user_id"`
	Details struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Username   string `json:"username"`
		ProfilePic string `json:"profile_pic"`
		Role       string `json:"role"`
	} `json:"details"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*authdomain.LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, constant.EndpointLogin, loginRequest{Email: email, Password: password}, "", &resp)
	if err != nil {
		return nil, err
	}

	return &authdomain.LoginResult{
		UserID: resp.UserID,
		Name:   resp.Details.Name,
		Email:  resp.Details.Email,
		Role:   resp.Role,
		Token:  resp.Token,
	}, nil
}

type membersResponse struct {
	Data []memberdomain.Member `json:"data"`
	Meta struct {
		Pagination struct {
			Start int `json:"start"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

func (c *Client) GetMembers(ctx context.Context, page, pageSize int) ([]memberdomain.Member, memberdomain.PageWindow, error) {
	query := url.Values{}
	query.Set("pagination[page]", strconv.Itoa(page))
	query.Set("pagination[pageSize]", strconv.Itoa(pageSize))

	var resp membersResponse
	err := c.do(ctx, http.MethodGet, constant.EndpointMembers+"?"+query.Encode(), nil, "", &resp)
	if err != nil {
		return nil, memberdomain.PageWindow{}, err
	}

	window := memberdomain.PageWindow{
		Page:     page,
		PageSize: pageSize,
		Total:    resp.Meta.Pagination.Total,
	}

	return resp.Data, window, nil
}

type memberEnvelope struct {
	Data memberdomain.Member `json:"data"`
}

type draftEnvelope struct {
	Data memberdomain.MemberDraft `json:"data"`
}

func (c *Client) AddMember(ctx context.Context, draft memberdomain.MemberDraft) (*memberdomain.Member, error) {
	var resp memberEnvelope
	err := c.do(ctx, http.MethodPost, constant.EndpointMembers, draftEnvelope{Data: draft}, "", &resp)
	if err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) UpdateMember(ctx context.Context, documentID string, patch memberdomain.MemberDraft) (*memberdomain.Member, error) {
	var resp memberEnvelope
	path := constant.EndpointMembers + "/" + url.PathEscape(documentID)
	err := c.do(ctx, http.MethodPut, path, draftEnvelope{Data: patch}, "", &resp)
	if err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) DeleteMember(ctx context.Context, documentID string) error {
	path := constant.EndpointMembers + "/" + url.PathEscape(documentID)

	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func (c *Client) GetStats(ctx context.Context) (*memberdomain.Stats, error) {
	var resp memberdomain.Stats
	if err := c.do(ctx, http.MethodGet, constant.EndpointMemberStats, nil, "", &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

type recentResponse struct {
	Data []memberdomain.Member `json:"data"`
}

// GetLatestRegistrations returns the most recent members, newest first,
// in the order the server sends them.
func (c *Client) GetLatestRegistrations(ctx context.Context) ([]memberdomain.Member, error) {
	var resp recentResponse
	if err := c.do(ctx, http.MethodGet, constant.EndpointMemberRecent, nil, "", &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// do performs one request. An empty token means "use the session
// store"; an explicit token overrides it (pre-authentication
// validation). out may be nil for calls without a response body.
func (c *Client) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token == "" {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("record service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		normalized := normalizeError(respBody)
		c.log.Warn("record service call failed",
			"method", method, "path", path, "status", resp.StatusCode, "error", normalized)

		return normalized
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

const fallbackErrorMessage = "something went wrong"

type errorPayload struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// normalizeError collapses a backend error body into a single
// human-readable message.
func normalizeError(body []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return errors.New(payload.Error.Message)
	}

	return errors.New(fallbackErrorMessage)
}
