//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// baseURL is BASE_URL when set, otherwise the in-process server started
// by TestFeatures.
var baseURL string

// scenario is the state one godog scenario steps through: the last
// response status and body.
type scenario struct {
	client *http.Client
	status int
	body   []byte
}

// InitializeScenario binds the step vocabulary of test/features.
func InitializeScenario(sc *godog.ScenarioContext) {
	s := &scenario{client: &http.Client{Timeout: 10 * time.Second}}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s.status, s.body = 0, nil
		return ctx, nil
	})

	sc.Step(`^the service is running$`, s.serviceIsRunning)
	sc.Step(`^I request (GET|HEAD|DELETE) "([^"]*)"$`, s.request)
	sc.Step(`^I request POST "([^"]*)" with:$`, s.post)
	sc.Step(`^the response status should be (\d+)$`, s.statusIs)
	sc.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, s.fieldIs)
	sc.Step(`^the JSON field "([^"]*)" should be approximately ([-+.eE\d]+)$`, s.fieldIsNear)
	sc.Step(`^no listed unit should start with "([^"]*)"$`, s.noItemHasPrefix)
}

func (s *scenario) serviceIsRunning(ctx context.Context) error {
	if err := s.request(ctx, http.MethodGet, "/-/live"); err != nil {
		return fmt.Errorf("service is not running at %s: %w", baseURL, err)
	}

	return s.statusIs(http.StatusOK)
}

func (s *scenario) request(ctx context.Context, method, path string) error {
	status, body, err := send(ctx, s.client, method, baseURL+path, "")
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	s.status, s.body = status, body

	return nil
}

func (s *scenario) post(ctx context.Context, path string, doc *godog.DocString) error {
	status, body, err := send(ctx, s.client, http.MethodPost, baseURL+path, doc.Content)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	s.status, s.body = status, body

	return nil
}

func (s *scenario) statusIs(want int) error {
	if s.status != want {
		return fmt.Errorf("status is %d, want %d\n%s", s.status, want, s.body)
	}

	return nil
}

func (s *scenario) fieldIs(path, want string) error {
	v, err := s.field(path)
	if err != nil {
		return err
	}

	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("field %q is %q, want %q", path, got, want)
	}

	return nil
}

// fieldIsNear compares a number within a relative tolerance of 1e-9.
func (s *scenario) fieldIsNear(path, want string) error {
	expected, err := strconv.ParseFloat(want, 64)
	if err != nil {
		return err
	}

	v, err := s.field(path)
	if err != nil {
		return err
	}

	got, ok := v.(float64)
	if !ok {
		return fmt.Errorf("field %q is %T, not a number", path, v)
	}

	if math.Abs(got-expected) > 1e-9*math.Abs(expected) {
		return fmt.Errorf("field %q is %v, want %v", path, got, expected)
	}

	return nil
}

func (s *scenario) noItemHasPrefix(prefix string) error {
	v, err := s.field("items")
	if err != nil {
		return err
	}

	items, _ := v.([]any)
	if len(items) == 0 {
		return errors.New("no units listed")
	}

	for _, item := range items {
		if name, _ := item.(string); strings.HasPrefix(name, prefix) {
			return fmt.Errorf("unit %q starts with %q", name, prefix)
		}
	}

	return nil
}

// field walks a dotted path through the JSON body.
func (s *scenario) field(path string) (any, error) {
	var doc any
	if err := json.Unmarshal(s.body, &doc); err != nil {
		return nil, fmt.Errorf("body is not JSON: %w\n%s", err, s.body)
	}

	for key := range strings.SplitSeq(path, ".") {
		obj, ok := doc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot read %q of %T", key, doc)
		}

		if doc, ok = obj[key]; !ok {
			return nil, fmt.Errorf("field %q missing\n%s", path, s.body)
		}
	}

	return doc, nil
}

// TestFeatures runs test/features against BASE_URL or an in-process
// server. GODOG_TAGS filters scenarios.
func TestFeatures(t *testing.T) {
	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		server := newServer(t)
		defer server.Close()

		baseURL = server.URL
	}

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
