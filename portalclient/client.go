// Package portalclient is the Go client for the hotspot portal API. It
// mirrors the behavior the captive-portal front-end relies on: the shared
// response envelope, an explicit login session, and a local snapshot cache
// that keeps settings usable when the portal is unreachable.
package portalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// APIError is a domain error reported by the portal inside the envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal error (status %d): %s", e.Status, e.Message)
}

// Client talks to the portal API.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *CacheStore
}

// New builds a Client. cache may be nil, in which case settings resolution
// skips the cache tier and degrades straight to the built-in defaults.
func New(baseURL string, cache *CacheStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// do issues one request and decodes the envelope. A nil session (or one
// without a token) omits the Authorization header entirely; the request is
// anonymous, not rejected client-side.
func (c *Client) do(ctx context.Context, method, path string, session *Session, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "portal unreachable")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "decode response")
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode response data")
		}
	}
	return nil
}

type adminLoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResult struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// AdminLogin authenticates an operator and returns the session carrying the
// issued token. The token is mirrored to the cache so a restarted console can
// resume without logging in again.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*Session, error) {
	var result adminLoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/admin/login", nil, adminLoginPayload{
		Username: username,
		Password: password,
	}, &result); err != nil {
		return nil, err
	}

	session := &Session{token: result.Token, user: result.User}
	if c.cache != nil {
		_ = c.cache.Put(cacheKeyToken, result.Token)
	}
	return session, nil
}

// ResumeSession restores a session from the cached token, if one exists.
func (c *Client) ResumeSession() *Session {
	if c.cache == nil {
		return nil
	}
	var token string
	if err := c.cache.Get(cacheKeyToken, &token); err != nil || token == "" {
		return nil
	}
	return &Session{token: token}
}

// Logout destroys the session and drops the cached token.
func (c *Client) Logout(session *Session) {
	if session != nil {
		session.token = ""
		session.user = AdminUser{}
	}
	if c.cache != nil {
		_ = c.cache.Delete(cacheKeyToken)
	}
}

type voucherLoginPayload struct {
	Code       string `json:"code"`
	IPAddress  string `json:"ipAddress,omitempty"`
	MACAddress string `json:"macAddress,omitempty"`
}

// VoucherLogin redeems a voucher code at the guest portal.
func (c *Client) VoucherLogin(ctx context.Context, code, ipAddress, macAddress string) (VoucherGrant, error) {
	var grant VoucherGrant
	err := c.do(ctx, http.MethodPost, "/api/auth/voucher/login", nil, voucherLoginPayload{
		Code:       code,
		IPAddress:  ipAddress,
		MACAddress: macAddress,
	}, &grant)
	return grant, err
}

type memberLoginPayload struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	IPAddress  string `json:"ipAddress,omitempty"`
	MACAddress string `json:"macAddress,omitempty"`
}

// MemberLogin authenticates a subscriber at the guest portal.
func (c *Client) MemberLogin(ctx context.Context, username, password, ipAddress, macAddress string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/member/login", nil, memberLoginPayload{
		Username:   username,
		Password:   password,
		IPAddress:  ipAddress,
		MACAddress: macAddress,
	}, nil)
}
