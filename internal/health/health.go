// Package health checks whether app URLs still respond, for the check
// subcommand.
package health

import (
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Status represents the health of a URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Dead                      // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, connection refused, etc.
)

// Result holds the check outcome for a single app.
type Result struct {
	ID         string // app ID
	Name       string
	URL        string
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // error message for unreachable URLs
}

// Target is one URL to check.
type Target struct {
	ID   string
	Name string
	URL  string
}

// ProgressFunc is called after each URL is checked.
type ProgressFunc func(completed, total int)

// CheckURLs checks all targets concurrently and returns results in input order.
func CheckURLs(targets []Target, concurrency int, timeout time.Duration, onProgress ProgressFunc) []Result {
	if len(targets) == 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	results := make([]Result, len(targets))
	jobs := make(chan int, len(targets))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkURL(client, targets[idx])

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, len(targets))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range targets {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// checkURL checks a single URL.
func checkURL(client *http.Client, target Target) Result {
	result := Result{ID: target.ID, Name: target.Name, URL: target.URL}

	// Try HEAD first, falling back to GET for servers that reject it
	resp, err := client.Head(target.URL)
	if err != nil {
		resp, err = client.Get(target.URL)
		if err != nil {
			result.Status = Unreachable
			result.Error = normalizeError(err.Error())
			return result
		}
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Status = Classify(resp.StatusCode)
	if result.Status == Unreachable {
		result.Error = http.StatusText(resp.StatusCode)
	}

	return result
}

// Classify maps an HTTP status code to a health status.
func Classify(statusCode int) Status {
	switch {
	case statusCode >= 200 && statusCode < 400:
		return Healthy
	case statusCode == 404 || statusCode == 410:
		return Dead
	default:
		// 500s, 403s and friends could be temporary or auth-required
		return Unreachable
	}
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	default:
		return errStr
	}
}
