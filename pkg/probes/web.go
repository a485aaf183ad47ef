package probes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// WebClient makes the two kinds of HTTP fetch the checks need: a
// status-only GET and a header dump. Redirects are never followed - the
// whole point is to look at the 301s themselves.
type WebClient struct {
	status  *http.Client
	headers *http.Client
}

func NewWebClient(statusTimeout, headerTimeout time.Duration) *WebClient {
	noFollow := func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &WebClient{
		status: &http.Client{
			Timeout:       statusTimeout,
			CheckRedirect: noFollow,
		},
		headers: &http.Client{
			Timeout:       headerTimeout,
			CheckRedirect: noFollow,
		},
	}
}

// Status fetches url and returns the status code as text, eg "200".
// Transport failure of any kind returns "", which no numeric comparison
// will ever match.
func (c *WebClient) Status(url string) string {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return ""
	}

	resp, err := c.status.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	return strconv.Itoa(resp.StatusCode)
}

// Headers fetches url with a HEAD request and returns the raw response
// header lines, status line first - the same shape `curl -sI` gives.
// Empty on any transport failure.
func (c *WebClient) Headers(url string) []string {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodHead, url, nil)
	if err != nil {
		return nil
	}

	resp, err := c.headers.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	lines := []string{fmt.Sprintf("%s %s", resp.Proto, resp.Status)}
	for _, k := range []string{"Location", "Server", "Content-Type", "Cache-Control", "Strict-Transport-Security"} {
		if v := resp.Header.Get(k); v != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", k, v))
		}
	}
	for k, vs := range resp.Header {
		switch k {
		case "Location", "Server", "Content-Type", "Cache-Control", "Strict-Transport-Security":
			continue
		}
		for _, v := range vs {
			lines = append(lines, fmt.Sprintf("%s: %s", k, v))
		}
	}

	return lines
}
