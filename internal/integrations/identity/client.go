package identity

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
)

// Client клиент GoTrue-совместимого API аутентификации (Supabase Auth)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера идентификации
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SignInWithPassword POST /token?grant_type=password
func (c *Client) SignInWithPassword(ctx context.Context, creds Credentials) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/token?grant_type=password", "", creds, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("%w: SignInWithPassword - empty access token", ErrInvalidResponse)
	}
	return &session, nil
}

// SignUp POST /signup
func (c *Client) SignUp(ctx context.Context, creds Credentials) (*SignUpResult, error) {
	var resp signUpResponse
	if err := c.do(ctx, http.MethodPost, "/signup", "", creds, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		session := resp.Session
		return &SignUpResult{User: session.User, Session: &session}, nil
	}

	return &SignUpResult{User: User{ID: resp.ID, Email: resp.Email}}, nil
}

// SignOut POST /logout, отзывает refresh token'ы сессии
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

// GetUser GET /user
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// OAuthURL адрес, на который браузер перенаправляется для входа через провайдера (google и т.п.)
func (c *Client) OAuthURL(provider, redirectTo string) string {
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return c.baseURL + "/authorize?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.providerError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) providerError(method, path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var parsed errorResponse
	_ = json.Unmarshal(body, &parsed)

	pe := &ProviderError{
		StatusCode: resp.StatusCode,
		Code:       parsed.code(),
		Message:    parsed.message(),
	}
	if pe.Message == "" {
		pe.Message = strings.TrimSpace(string(body))
	}
	if pe.Message == "" {
		pe.Message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusInternalServerError && !isRateLimit(resp.StatusCode, pe.Code, pe.Message) {
		c.log.Error("identity: %s %s failed with status %d: %s", method, path, resp.StatusCode, pe.Message)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInternal, resp.StatusCode, pe.Message)
	}

	pe = NewProviderError(pe.StatusCode, pe.Code, pe.Message)
	if errors.Is(pe, ErrRateLimited) {
		c.log.Warn("identity: rate limited on %s %s: code=%s", method, path, pe.Code)
	}
	return pe
}
