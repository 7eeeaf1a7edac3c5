package config

import (
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// TestConfig holds all configuration for E2E tests against the OntoFlow platform.
type TestConfig struct {
	BaseURL       string
	Timeout       time.Duration
	Headless      bool
	SlowMo        int
	Screenshots   bool
	Videos        bool
	AdminEmail    string
	AdminPassword string
	APIToken      string
}

var loadOnce sync.Once

// GetConfig returns the test configuration from environment variables.
// A .env file in the working directory is loaded once as an overlay;
// variables already set in the environment take precedence.
func GetConfig() *TestConfig {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})

	baseURL := os.Getenv("BASE_URL")
	if forced := os.Getenv("RAW_BASE_URL"); forced != "" { // explicit injection hook for tests
		baseURL = forced
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if os.Getenv("E2E_BASEURL_AUTODETECT") != "false" {
		baseURL = detectReachableBaseURL(baseURL)
	}

	slowMo := 0
	if v := os.Getenv("SLOW_MO"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			slowMo = parsed
		} else {
			slowMo = 100
		}
	}

	timeout := 30 * time.Second
	if v := os.Getenv("E2E_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	return &TestConfig{
		BaseURL:       baseURL,
		Timeout:       timeout,
		Headless:      os.Getenv("HEADLESS") != "false",
		SlowMo:        slowMo,
		Screenshots:   os.Getenv("SCREENSHOTS") != "false",
		Videos:        os.Getenv("VIDEOS") == "true",
		AdminEmail:    os.Getenv("E2E_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("E2E_ADMIN_PASSWORD"),
		APIToken:      os.Getenv("E2E_API_TOKEN"),
	}
}

// detectReachableBaseURL probes the configured base URL and, when it does not
// respond, tries localhost variants on the usual OntoFlow ports before giving
// up and returning the original value.
func detectReachableBaseURL(initial string) string {
	start := time.Now()
	if reachable(initial) {
		return initial
	}

	candidates := []string{}
	if u, err := url.Parse(initial); err == nil {
		host := u.Hostname()
		port := u.Port()
		if port == "" {
			port = "8080"
		}
		ports := []string{port, "8080", "18080"}
		if host != "localhost" && host != "127.0.0.1" {
			for _, p := range ports {
				candidates = append(candidates, "http://localhost:"+p)
			}
			for _, p := range ports {
				candidates = append(candidates, "http://127.0.0.1:"+p)
			}
		}
	}
	candidates = append(candidates, "http://localhost:8080")

	seen := map[string]struct{}{initial: {}}
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if reachable(c) {
			log.Printf("[e2e-config] switched BaseURL %s -> %s (%.0fms)", initial, c, time.Since(start).Seconds()*1000)
			return c
		}
	}
	log.Printf("[e2e-config] kept unreachable BaseURL=%s (no reachable candidates)", initial)
	return initial
}

func reachable(base string) bool {
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	host := u.Host
	if _, _, splitErr := net.SplitHostPort(host); splitErr != nil {
		host += ":80"
	}
	d := net.Dialer{Timeout: 250 * time.Millisecond}
	conn, err := d.Dial("tcp", host)
	if err != nil {
		return false
	}
	_ = conn.Close()

	client := &http.Client{Timeout: 800 * time.Millisecond}
	resp, err := client.Get(base + "/health")
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}
