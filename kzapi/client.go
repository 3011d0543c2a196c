// Package kzapi holds the HTTP clients for the KZ GlobalAPI, the KZ:GO map
// metadata service and the GlobalAPI status page.
package kzapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const userAgent = "schnose-discord-bot"

// ErrMalformedPayload is returned when a response decodes but does not have
// the fields the bot relies on
var ErrMalformedPayload = errors.New("malformed payload")

// StatusError is returned for non-2xx responses
type StatusError struct {
	API        string
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.API, e.Endpoint, e.StatusCode)
}

// Observer receives one call per finished request. metrics.Metrics satisfies it.
type Observer interface {
	ObserveRequest(api, endpoint string, status int, elapsed time.Duration)
}

// requester is the resty plumbing shared by every client in this package
type requester struct {
	api      string
	client   *resty.Client
	observer Observer
}

func newRequester(api, baseURL string, timeout time.Duration, observer Observer) requester {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetLogger(log.StandardLogger())

	return requester{api: api, client: client, observer: observer}
}

// get issues GET path and decodes a JSON body into result. endpoint is the
// low-cardinality name used for metrics and errors.
func (r requester) get(ctx context.Context, endpoint, path string, result any, configure func(*resty.Request)) error {
	req := r.client.R().
		SetContext(ctx).
		SetResult(result).
		ForceContentType("application/json")
	if configure != nil {
		configure(req)
	}

	start := time.Now()
	resp, err := req.Get(path)
	if r.observer != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode()
		}
		r.observer.ObserveRequest(r.api, endpoint, status, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", r.api, endpoint, err)
	}
	if resp.IsError() {
		return &StatusError{API: r.api, Endpoint: endpoint, StatusCode: resp.StatusCode()}
	}

	return nil
}
