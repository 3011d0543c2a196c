package kzapi

import (
	"context"
	"fmt"
	"time"

	"schnose/models"
)

// DefaultStatusURL is the GlobalAPI status page summary
const DefaultStatusURL = "https://status.global-api.com/api/v2/summary.json"

// StatusPage reads the GlobalAPI status page
type StatusPage struct {
	requester
	url string
}

// NewStatusPage creates a status page client for the full summary URL
func NewStatusPage(url string, timeout time.Duration, observer Observer) *StatusPage {
	return &StatusPage{
		requester: newRequester("status_page", "", timeout, observer),
		url:       url,
	}
}

// Summary returns the overall status and per-component states
func (c *StatusPage) Summary(ctx context.Context) (*models.APIStatus, error) {
	var status models.APIStatus
	if err := c.get(ctx, "summary", c.url, &status, nil); err != nil {
		return nil, err
	}

	if status.Status.Description == "" {
		return nil, fmt.Errorf("status summary: %w", ErrMalformedPayload)
	}
	return &status, nil
}
