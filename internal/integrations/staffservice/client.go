package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client клиент справочника персонала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника персонала
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaff получает сотрудника по ID
func (c *Client) GetStaff(ctx context.Context, staffID int64) (*Staff, error) {
	url := fmt.Sprintf("%s/internal/staff/%d", c.baseURL, staffID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Info("StaffService: staff id=%d not found", staffID)
		return nil, ErrStaffNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Warn("StaffService: unexpected status %d for staff id=%d", resp.StatusCode, staffID)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var staff Staff
	if err := json.NewDecoder(resp.Body).Decode(&staff); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &staff, nil
}
