package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/huh-boost/storefront/collection"
	"github.com/valyala/fasthttp"
)

const collectionsPath = "/api/collections"

var (
	// ErrStatus is returned when the endpoint answers with anything but 200.
	ErrStatus = errors.New("unexpected status from collections endpoint")
	// ErrParse is returned when the body is not a collections payload.
	ErrParse = errors.New("unparseable collections payload")
)

// Payload is the body served by GET /api/collections.
type Payload struct {
	Collections []collection.Collection `json:"collections"`
}

// Client fetches the collection list from the commerce endpoint.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http: &fasthttp.Client{
			Name:                "huh-storefront",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 90 * time.Second,
		},
	}
}

type fetchResult struct {
	status int
	body   []byte
	err    error
}

// Fetch issues a single GET and decodes the payload. fasthttp has no context
// support, so the request runs in its own goroutine and ctx only abandons it.
func (c *Client) Fetch(ctx context.Context) ([]collection.Collection, error) {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	ch := make(chan fetchResult, 1)
	go func() {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(c.baseURL + collectionsPath)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set(fasthttp.HeaderAccept, "application/json")

		if err := c.http.DoDeadline(req, resp, deadline); err != nil {
			ch <- fetchResult{err: err}
			return
		}
		ch <- fetchResult{
			status: resp.StatusCode(),
			body:   append([]byte(nil), resp.Body()...),
		}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("error fetching collections: %w", r.err)
		}
		if r.status != fasthttp.StatusOK {
			return nil, fmt.Errorf("%w: %d", ErrStatus, r.status)
		}
		return Decode(r.body)
	}
}

// Decode parses a collections payload and drops entries that break the list
// invariants.
func Decode(body []byte) ([]collection.Collection, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	list, dropped := collection.Sanitize(payload.Collections)
	if dropped > 0 {
		log.Printf("[loader] dropped %d invalid collections from payload", dropped)
	}
	return list, nil
}
