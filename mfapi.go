package mfreport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the mfapi.in NAV history API.

const mfapiBase = "https://api.mfapi.in/mf/"

// fetchTimeout bounds a single NAV history call. A timeout is a per-item
// fetch failure under the runner's isolation policy, never a fatal one.
const fetchTimeout = 30 * time.Second

// Fetcher retrieves the published NAV history for one scheme code.
type Fetcher interface {
	Fetch(code string) ([]NavRecord, error)
}

// Client fetches NAV histories from the public mfapi.in API.
type Client struct {
	base   string
	client *http.Client
}

// NewClient returns a Client against the public mfapi.in endpoint.
func NewClient() *Client {
	return &Client{base: mfapiBase, client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch returns the raw NAV rows for a scheme code.
// Transport failures, non-200 statuses and empty payloads are all fetch
// errors; the caller treats them uniformly.
func (c *Client) Fetch(code string) ([]NavRecord, error) {
	// {"meta": {...}, "data": [{"date": "31-01-2024", "nav": "104.3200"}], "status": "SUCCESS"}
	var payload struct {
		Data []NavRecord `json:"data"`
	}
	if err := jwget(c.client, c.base+url.PathEscape(code), &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("no NAV data returned for scheme %s", code)
	}
	return payload.Data, nil
}

// SchemeName returns the scheme's published name, used for log lines and
// history titles only.
func (c *Client) SchemeName(code string) (string, error) {
	var jobj any
	if err := jwget(c.client, c.base+url.PathEscape(code), &jobj); err != nil {
		return "", err
	}
	path := "$.meta.scheme_name"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing scheme %s meta: %q %w", code, path, err)
	}
	// jsonpath may return a list of one answer instead of a single answer,
	// keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	name, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing scheme %s meta: %q is not a string: %v", code, path, jval)
	}
	return name, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
