// Package api implements the remote sync client for the QPR records service.
// It translates the HTTP/JSON boundary into typed calls and sentinel errors;
// callers never see transport details.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/common"
	"github.com/psharma-dev/qprdesk/internal/logging"
)

const (
	recordsPath     = "/api/records"
	requestEditPath = "/api/request-edit/"
	loginPath       = "/login/"
	logoutPath      = "/logout/"
)

// Client talks to the QPR service. Authentication is an opaque session
// cookie issued by the login endpoint and held in the client's jar; a 401 on
// any call maps to common.ErrUnauthorized, the signal to send the user back
// to the login prompt.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds a Client for the service at baseURL (scheme://host[:port]).
func New(baseURL string, timeout time.Duration, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
			// Login success is signalled by a redirect; never follow it.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}, nil
}

// Login authenticates with an employee code, role and password against the
// form login endpoint. The service answers a successful login with a
// redirect to the role dashboard and re-renders the login page on bad
// credentials; the latter maps to common.ErrUnauthorized.
func (c *Client) Login(ctx context.Context, employeeCode, role string, password []byte) error {
	form := url.Values{}
	form.Set("employee_code", employeeCode)
	form.Set("role", role)
	form.Set("password", string(password))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login: %w", common.ErrUnavailable)
	}
	defer drain(resp)

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		c.log.Info(ctx, "login succeeded", "employee_code", employeeCode, "role", role)
		return nil
	}
	return fmt.Errorf("login rejected: %w", common.ErrUnauthorized)
}

// Logout drops the server-side session. Errors are reported but the local
// cookie becomes useless either way.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+logoutPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout: %w", common.ErrUnavailable)
	}
	drain(resp)
	return nil
}

// FetchAll retrieves the full record list in server order. A 401 is the
// boundary signal to redirect to login, distinct from an empty list.
func (c *Client) FetchAll(ctx context.Context) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+recordsPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", common.ErrUnavailable)
	}
	defer drain(resp)

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// FetchOne retrieves a single record by id, with the same permission fields
// the list carries.
func (c *Client) FetchOne(ctx context.Context, id int64) (models.Record, error) {
	u := fmt.Sprintf("%s%s/%d/", c.baseURL, recordsPath, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Record{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Record{}, fmt.Errorf("fetch record: %w", common.ErrUnavailable)
	}
	defer drain(resp)

	if err := c.checkStatus(resp); err != nil {
		return models.Record{}, err
	}

	var rec models.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return models.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// saveResponse is the acknowledgement body of a successful save.
type saveResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Save persists the payload as a full overwrite and returns the record id
// (server-assigned on create). The client performs no optimistic update; on
// success the caller must refresh via FetchAll before trusting the cache.
func (c *Client) Save(ctx context.Context, payload models.SavePayload) (int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recordsPath,
		bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("save: %w", common.ErrUnavailable)
	}
	defer drain(resp)

	if err := c.checkStatus(resp); err != nil {
		c.log.Warn(ctx, "save rejected", "request_id", requestID, "err", err)
		return 0, err
	}

	var ack saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return 0, fmt.Errorf("decode save response: %w", err)
	}
	c.log.Info(ctx, "record saved", "request_id", requestID, "record", ack.ID, "status", payload.Status)
	return ack.ID, nil
}

// Delete removes the record with the given id. Deleting an id the store does
// not know is whatever the server makes of it; the outcome is forwarded
// unchanged.
func (c *Client) Delete(ctx context.Context, id int64) error {
	u := fmt.Sprintf("%s%s?id=%d", c.baseURL, recordsPath, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete: %w", common.ErrUnavailable)
	}
	defer drain(resp)

	if err := c.checkStatus(resp); err != nil {
		c.log.Warn(ctx, "delete rejected", "request_id", requestID, "record", id, "err", err)
		return err
	}
	c.log.Info(ctx, "record deleted", "request_id", requestID, "record", id)
	return nil
}

// RequestEdit files an edit request for a submitted record; an administrator
// must approve it before the record unlocks.
func (c *Client) RequestEdit(ctx context.Context, id int64, reason string) error {
	body, err := json.Marshal(map[string]any{
		"request_type": "qpr",
		"record_id":    id,
		"reason":       reason,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+requestEditPath,
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request edit: %w", common.ErrUnavailable)
	}
	defer drain(resp)

	return c.checkStatus(resp)
}

// checkStatus maps a non-2xx response to a sentinel error, extracting the
// server-provided reason when one is present.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return common.ErrNotFound
	}

	var body struct {
		Error string `json:"error"`
	}
	reason := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		reason = body.Error
	}
	return fmt.Errorf("%s: %w", reason, common.ErrRejected)
}

// drain discards and closes the response body so the connection can be
// reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
