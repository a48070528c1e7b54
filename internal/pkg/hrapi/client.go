package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hrsystem/hr-gateway/internal/config"
	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

// Client talks to the HR REST API the gateway fronts. It attaches the
// bearer token when one is present and maps the upstream's auth statuses
// onto the auth domain errors: 401 becomes ErrUnauthenticated (which
// callers escalate to a session clear), 403 becomes ErrForbidden (which
// they surface without touching the session). Requests are never retried.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError is a non-auth upstream failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error [%d]: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return auth.ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return auth.ErrForbidden
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "unexpected upstream response"
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return "unexpected upstream response"
}

// listEnvelope matches the attendance, leave, and payroll list endpoints,
// which wrap collections in a data field. The employee and department
// endpoints return bare arrays; the inconsistency is the upstream's, and
// the gateway absorbs it here so nothing else has to know.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// Login exchanges credentials for a token and profile. A 401 here means
// bad credentials, not an expired session, so it maps differently than
// every other call.
func (c *Client) Login(ctx context.Context, email, password string) (auth.LoginResponse, error) {
	var res auth.LoginResponse
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &res)
	if err != nil {
		if err == auth.ErrUnauthenticated {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}
	res.User.Role = user.ParseRole(string(res.User.Role))
	return res, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// CurrentUser re-fetches the signed-in profile. Used only on explicit
// refresh; the cached profile in the session is authoritative otherwise.
func (c *Client) CurrentUser(ctx context.Context, token string) (user.Profile, error) {
	var profile user.Profile
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &profile); err != nil {
		return user.Profile{}, err
	}
	profile.Role = user.ParseRole(string(profile.Role))
	return profile, nil
}

func (c *Client) Employees(ctx context.Context, token string) ([]hr.Employee, error) {
	var out []hr.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Departments(ctx context.Context, token string) ([]hr.Department, error) {
	var out []hr.Department
	if err := c.do(ctx, http.MethodGet, "/departments", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Attendance(ctx context.Context, token string) ([]hr.Attendance, error) {
	var env listEnvelope[hr.Attendance]
	if err := c.do(ctx, http.MethodGet, "/attendance", token, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) LeaveRequests(ctx context.Context, token string) ([]hr.LeaveRequest, error) {
	var env listEnvelope[hr.LeaveRequest]
	if err := c.do(ctx, http.MethodGet, "/leaves", token, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) PayrollRecords(ctx context.Context, token string) ([]hr.PayrollRecord, error) {
	var env listEnvelope[hr.PayrollRecord]
	if err := c.do(ctx, http.MethodGet, "/payroll", token, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) CheckIn(ctx context.Context, token string, employeeID hr.ID) (hr.Attendance, error) {
	var env struct {
		Data hr.Attendance `json:"data"`
	}
	body := map[string]hr.ID{"employeeId": employeeID}
	if err := c.do(ctx, http.MethodPost, "/attendance/checkin", token, body, &env); err != nil {
		return hr.Attendance{}, err
	}
	return env.Data, nil
}

func (c *Client) CheckOut(ctx context.Context, token string, employeeID hr.ID) (hr.Attendance, error) {
	var env struct {
		Data hr.Attendance `json:"data"`
	}
	body := map[string]hr.ID{"employeeId": employeeID}
	if err := c.do(ctx, http.MethodPost, "/attendance/checkout", token, body, &env); err != nil {
		return hr.Attendance{}, err
	}
	return env.Data, nil
}

func (c *Client) CreateLeaveRequest(ctx context.Context, token string, req hr.LeaveRequest) (hr.LeaveRequest, error) {
	var env struct {
		Data hr.LeaveRequest `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/leaves", token, req, &env); err != nil {
		return hr.LeaveRequest{}, err
	}
	return env.Data, nil
}

func (c *Client) UpdateLeaveStatus(ctx context.Context, token string, id hr.ID, status, comments string) (hr.LeaveRequest, error) {
	var env struct {
		Data hr.LeaveRequest `json:"data"`
	}
	body := map[string]string{"status": status, "comments": comments}
	if err := c.do(ctx, http.MethodPut, "/leaves/"+id.String(), token, body, &env); err != nil {
		return hr.LeaveRequest{}, err
	}
	return env.Data, nil
}

func (c *Client) CreateEmployee(ctx context.Context, token string, emp hr.Employee) (hr.Employee, error) {
	var out hr.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", token, emp, &out); err != nil {
		return hr.Employee{}, err
	}
	return out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, token string, id hr.ID, emp hr.Employee) (hr.Employee, error) {
	var out hr.Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+id.String(), token, emp, &out); err != nil {
		return hr.Employee{}, err
	}
	return out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, token string, id hr.ID) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+id.String(), token, nil, nil)
}

func (c *Client) CreateDepartment(ctx context.Context, token string, dept hr.Department) (hr.Department, error) {
	var out hr.Department
	if err := c.do(ctx, http.MethodPost, "/departments", token, dept, &out); err != nil {
		return hr.Department{}, err
	}
	return out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, token string, id hr.ID, dept hr.Department) (hr.Department, error) {
	var out hr.Department
	if err := c.do(ctx, http.MethodPut, "/departments/"+id.String(), token, dept, &out); err != nil {
		return hr.Department{}, err
	}
	return out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, token string, id hr.ID) error {
	return c.do(ctx, http.MethodDelete, "/departments/"+id.String(), token, nil, nil)
}

func (c *Client) CreatePayrollRecord(ctx context.Context, token string, rec hr.PayrollRecord) (hr.PayrollRecord, error) {
	var env struct {
		Data hr.PayrollRecord `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/payroll", token, rec, &env); err != nil {
		return hr.PayrollRecord{}, err
	}
	return env.Data, nil
}
