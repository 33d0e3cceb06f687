// Command checkstatus probes a deployed backend and prints a summary of its
// diagnostic payload and public endpoints. It exits non-zero when any check
// fails.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type endpointCheck struct {
	Path        string
	Status      int
	Description string
}

var endpoints = []endpointCheck{
	{"/", http.StatusOK, "Health Check"},
	{"/api/health", http.StatusOK, "Liveness"},
	{"/test/", http.StatusOK, "Test Endpoint"},
	{"/favicon.ico", http.StatusNoContent, "Favicon"},
	{"/api/support/tickets/", http.StatusOK, "Support Tickets API"},
}

type diagnostic struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	Debug          bool     `json:"debug"`
	DatabaseStatus string   `json:"database_status"`
	AllowedHosts   []string `json:"allowed_hosts"`
	CORSOrigins    []string `json:"cors_origins"`
}

type checker struct {
	base   string
	client *http.Client
	out    io.Writer
}

func (c *checker) get(ctx context.Context, path string) (*http.Response, error) {
	u, err := url.JoinPath(c.base, path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(u, "/") {
		u += "/"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

func (c *checker) health(ctx context.Context) bool {
	resp, err := c.get(ctx, "/")
	if err != nil {
		fmt.Fprintf(c.out, "FAIL health check error: %v\n", err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(c.out, "FAIL health check failed: %d\n", resp.StatusCode)
		return false
	}
	var d diagnostic
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		fmt.Fprintf(c.out, "FAIL health payload: %v\n", err)
		return false
	}
	fmt.Fprintln(c.out, "Health Check Results:")
	fmt.Fprintf(c.out, "  Status: %s\n", d.Status)
	fmt.Fprintf(c.out, "  Message: %s\n", d.Message)
	fmt.Fprintf(c.out, "  Debug Mode: %t\n", d.Debug)
	fmt.Fprintf(c.out, "  Database Status: %s\n", d.DatabaseStatus)
	fmt.Fprintf(c.out, "  Allowed Hosts: %s\n", strings.Join(d.AllowedHosts, ", "))
	fmt.Fprintf(c.out, "  CORS Origins: %s\n", strings.Join(d.CORSOrigins, ", "))
	return d.DatabaseStatus == "connected"
}

func (c *checker) endpoint(ctx context.Context, e endpointCheck) bool {
	resp, err := c.get(ctx, e.Path)
	if err != nil {
		fmt.Fprintf(c.out, "FAIL %s: error - %v\n", e.Path, err)
		return false
	}
	resp.Body.Close()
	if resp.StatusCode != e.Status {
		fmt.Fprintf(c.out, "FAIL %s: %d (expected %d)\n", e.Path, resp.StatusCode, e.Status)
		return false
	}
	fmt.Fprintf(c.out, "OK   %s: %d\n", e.Path, resp.StatusCode)
	return true
}

// run performs every check and reports whether all passed.
func (c *checker) run(ctx context.Context) bool {
	fmt.Fprintf(c.out, "Jevelon Backend Status Check: %s\n", c.base)
	if !c.health(ctx) {
		fmt.Fprintln(c.out, "Health check failed. Backend may not be running properly.")
		return false
	}

	passed := 0
	for _, e := range endpoints {
		if c.endpoint(ctx, e) {
			passed++
		}
	}
	fmt.Fprintf(c.out, "Summary: %d/%d endpoints working\n", passed, len(endpoints))
	return passed == len(endpoints)
}

func main() {
	base := flag.String("base", "http://localhost:8000", "base URL of the deployed backend")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	c := &checker{
		base:   strings.TrimRight(*base, "/"),
		client: &http.Client{Timeout: *timeout},
		out:    os.Stdout,
	}
	if !c.run(context.Background()) {
		os.Exit(1)
	}
}
