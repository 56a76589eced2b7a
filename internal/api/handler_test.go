package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/landing/internal/content"
	"github.com/eugenenazirov/landing/internal/editable"
	"github.com/eugenenazirov/landing/internal/navigate"
	"github.com/eugenenazirov/landing/internal/render"
	"github.com/eugenenazirov/landing/internal/storage"
)

type controllableClock struct {
	mu  sync.RWMutex
	now time.Time
}

func newControllableClock(initial time.Time) *controllableClock {
	return &controllableClock{now: initial}
}

func (c *controllableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *controllableClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestHandler(t *testing.T, opts ...HandlerOption) *Handler {
	t.Helper()
	h, _ := newTestHandlerWithStore(t, nil, opts...)
	return h
}

func newTestHandlerWithStore(t *testing.T, storeOpts []storage.Option, opts ...HandlerOption) (*Handler, *storage.MemoryStorage) {
	t.Helper()

	origin, err := navigate.ParseOrigin("https://example.com")
	if err != nil {
		t.Fatalf("failed to parse origin: %v", err)
	}
	resolver := navigate.NewResolver(origin)
	renderer, err := render.New(resolver)
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	store := storage.NewMemoryStorage(resolver, storeOpts...)
	return NewHandler(store, renderer, resolver, opts...), store
}

func setupTestRouter(t *testing.T) (http.Handler, *controllableClock) {
	t.Helper()
	router, clock, _ := setupTestRouterWithStore(t)
	return router, clock
}

func setupTestRouterWithStore(t *testing.T) (http.Handler, *controllableClock, *storage.MemoryStorage) {
	t.Helper()

	clock := newControllableClock(time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC))
	handler, store := newTestHandlerWithStore(t, []storage.Option{storage.WithClock(clock.Now)}, WithClock(clock.Now))
	router := NewRouter(handler, zaptest.NewLogger(t), WithLogging(false))

	return router, clock, store
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func fieldTarget(section, path string) string {
	return "/api/sections/" + section + "/field?path=" + url.QueryEscape(path)
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := contextWithRequestID(context.Background(), "abc")
	if got := requestIDFromContext(ctx); got != "abc" {
		t.Fatalf("expected abc, got %s", got)
	}
	resp := httptest.NewRecorder()
	writeInternalError(resp, assertError("boom"))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 status, got %d", resp.Code)
	}
}

type assertError string

func (a assertError) Error() string { return string(a) }

func TestHealthEndpoint(t *testing.T) {
	router, clock := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %s", body.Status)
	}
	if !body.Timestamp.Equal(clock.Now()) {
		t.Fatalf("expected timestamp %s, got %s", clock.Now(), body.Timestamp)
	}
}

func TestPageEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	body := rec.Body.String()
	for _, s := range content.Sections() {
		if !strings.Contains(body, `data-section="`+string(s)+`"`) {
			t.Fatalf("page lacks section %s", s)
		}
	}
	if !strings.Contains(body, `data-price="99"`) {
		t.Fatalf("expected monthly growth price")
	}

	yearly := doRequest(t, router, http.MethodGet, "/?billing=yearly", nil)
	if !strings.Contains(yearly.Body.String(), `data-price="79"`) {
		t.Fatalf("expected yearly growth price")
	}

	if rec := doRequest(t, router, http.MethodGet, "/missing", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown page, got %d", rec.Code)
	}
}

func TestSectionFragmentEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/sections/hero", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `data-section="hero"`) || strings.Contains(body, `data-section="pricing"`) {
		t.Fatalf("expected only the hero fragment, got %s", body)
	}

	if rec := doRequest(t, router, http.MethodGet, "/sections/sidebar", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown section, got %d", rec.Code)
	}
}

func TestListSections(t *testing.T) {
	router, clock := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/sections", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Sections  []string  `json:"sections"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"navigation", "hero", "pricing", "footer"}
	if strings.Join(body.Sections, ",") != strings.Join(want, ",") {
		t.Fatalf("expected sections %v, got %v", want, body.Sections)
	}
	if !body.UpdatedAt.Equal(clock.Now()) {
		t.Fatalf("expected updatedAt %s, got %s", clock.Now(), body.UpdatedAt)
	}
}

func TestGetSectionReturnsEffectiveConfig(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/sections/pricing", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body content.PricingConfig
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Plans) != 3 || body.Plans[1].ID != "growth" || body.Plans[1].Price != 99 {
		t.Fatalf("unexpected pricing config %#v", body.Plans)
	}

	if rec := doRequest(t, router, http.MethodGet, "/api/sections/sidebar", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown section, got %d", rec.Code)
	}
}

func TestListFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/sections/footer/fields", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Section string `json:"section"`
		Fields  []struct {
			Path  string `json:"path"`
			Value string `json:"value"`
			Kind  string `json:"kind"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Section != "footer" {
		t.Fatalf("expected section footer, got %s", body.Section)
	}

	byPath := map[string]string{}
	for _, f := range body.Fields {
		byPath[f.Path] = f.Value
		if strings.HasSuffix(f.Path, ".icon") {
			t.Fatalf("icon identifiers must not be listed: %s", f.Path)
		}
	}
	if got := byPath["socialLinks[2].href"]; got != "https://facebook.com/yourstartup" {
		t.Fatalf("expected Facebook href, got %q", got)
	}
}

func TestGetField(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, fieldTarget("pricing", "plans[1].features[2]"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var field editable.Field
	if err := json.NewDecoder(rec.Body).Decode(&field); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if field.Value != "Priority support" || field.Kind != editable.KindText {
		t.Fatalf("unexpected field %#v", field)
	}

	if rec := doRequest(t, router, http.MethodGet, fieldTarget("pricing", "plans[1]."), nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed path, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, fieldTarget("pricing", "plans[9].name"), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for out of range path, got %d", rec.Code)
	}
	var errBody struct {
		Suggestion string `json:"suggestion"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&errBody); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if errBody.Suggestion == "" {
		t.Fatalf("expected suggestion to be populated")
	}
}

func TestPutFieldUpdatesPage(t *testing.T) {
	router, clock := setupTestRouter(t)

	clock.Advance(time.Hour)

	rec := doRequest(t, router, http.MethodPut, "/api/sections/pricing/field", map[string]string{
		"path":  "plans[1].features[2]",
		"value": "Phone <b>support</b>",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Field     editable.Field `json:"field"`
		UpdatedAt time.Time      `json:"updatedAt"`
		Message   string         `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message == "" {
		t.Fatalf("expected success message, got empty string")
	}
	if body.Field.Value != "Phone support" {
		t.Fatalf("expected sanitized value, got %q", body.Field.Value)
	}
	if body.Field.Path.String() != "plans[1].features[2]" {
		t.Fatalf("unexpected path %s", body.Field.Path)
	}
	if !body.UpdatedAt.Equal(clock.Now()) {
		t.Fatalf("expected updatedAt %s, got %s", clock.Now(), body.UpdatedAt)
	}

	page := doRequest(t, router, http.MethodGet, "/", nil)
	if !strings.Contains(page.Body.String(), ">Phone support</span>") {
		t.Fatalf("edited text not rendered")
	}
}

func TestPutFieldHref(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/sections/footer/field", map[string]string{
		"path":  "socialLinks[2].href",
		"value": "https://facebook.com/acme",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	get := doRequest(t, router, http.MethodGet, fieldTarget("footer", "socialLinks[2].href"), nil)
	var field editable.Field
	if err := json.NewDecoder(get.Body).Decode(&field); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if field.Value != "https://facebook.com/acme" || field.Kind != editable.KindHref {
		t.Fatalf("unexpected field %#v", field)
	}

	rec = doRequest(t, router, http.MethodPut, "/api/sections/hero/field", map[string]string{
		"path":  "ctaHref",
		"value": "javascript:alert(1)",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unusable href, got %d", rec.Code)
	}
}

func TestPutFieldErrors(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name    string
		section string
		body    any
		want    int
	}{
		{name: "BadJSON", section: "hero", body: "{", want: http.StatusBadRequest},
		{name: "MalformedPath", section: "hero", body: map[string]string{"path": "[0]", "value": "x"}, want: http.StatusBadRequest},
		{name: "UnknownField", section: "hero", body: map[string]string{"path": "tagline", "value": "x"}, want: http.StatusNotFound},
		{name: "OutOfRange", section: "pricing", body: map[string]string{"path": "plans[3].name", "value": "x"}, want: http.StatusNotFound},
		{name: "NotEditable", section: "pricing", body: map[string]string{"path": "plans[0].id", "value": "x"}, want: http.StatusUnprocessableEntity},
		{name: "NotString", section: "pricing", body: map[string]string{"path": "plans[0].price", "value": "1"}, want: http.StatusUnprocessableEntity},
		{name: "UnknownSection", section: "sidebar", body: map[string]string{"path": "title", "value": "x"}, want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPut, "/api/sections/"+tc.section+"/field", tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestResetSection(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/sections/hero/field", map[string]string{
		"path":  "headline",
		"value": "Edited",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if rec := doRequest(t, router, http.MethodDelete, "/api/sections/hero/overrides", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	get := doRequest(t, router, http.MethodGet, fieldTarget("hero", "headline"), nil)
	var field editable.Field
	if err := json.NewDecoder(get.Body).Decode(&field); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if field.Value != content.DefaultHero().Headline {
		t.Fatalf("expected default headline after reset, got %q", field.Value)
	}
}

func TestNavigateEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		target   string
		kind     string
		href     string
		external bool
	}{
		{target: "#pricing", kind: "anchor", href: "#pricing"},
		{target: "/signup?plan=growth", kind: "route", href: "/signup?plan=growth"},
		{target: "https://twitter.com/x", kind: "external", href: "https://twitter.com/x", external: true},
		{target: "https://example.com/about", kind: "route", href: "/about"},
		{target: "", kind: "none"},
	}

	for _, tc := range tests {
		rec := doRequest(t, router, http.MethodGet, "/api/navigate?target="+url.QueryEscape(tc.target), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: expected status 200, got %d", tc.target, rec.Code)
		}
		var body struct {
			Target   string `json:"target"`
			Kind     string `json:"kind"`
			Href     string `json:"href"`
			External bool   `json:"external"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Target != tc.target || body.Kind != tc.kind || body.Href != tc.href || body.External != tc.external {
			t.Fatalf("%q: unexpected response %#v", tc.target, body)
		}
	}
}

func TestGoEndpointRedirects(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		to       string
		status   int
		location string
	}{
		{to: "#pricing", status: http.StatusSeeOther, location: "/#pricing"},
		{to: "/signup?plan=growth", status: http.StatusSeeOther, location: "/signup?plan=growth"},
		{to: "https://twitter.com/x", status: http.StatusSeeOther, location: "https://twitter.com/x"},
		{to: "", status: http.StatusNoContent},
		{to: "javascript:alert(1)", status: http.StatusNoContent},
	}

	for _, tc := range tests {
		rec := doRequest(t, router, http.MethodGet, "/go?to="+url.QueryEscape(tc.to), nil)
		if rec.Code != tc.status {
			t.Fatalf("%q: expected status %d, got %d", tc.to, tc.status, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tc.location {
			t.Fatalf("%q: expected Location %q, got %q", tc.to, tc.location, got)
		}
	}
}

func TestCorsPreflight(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/sections/hero/field", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "PUT")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected Access-Control-Allow-Origin header to be set")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PUT") {
		t.Fatalf("expected PUT to be allowed")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "test-request-id")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-request-id" {
		t.Fatalf("expected X-Request-ID header to be echoed, got %s", got)
	}
}

func TestUpdatedAtFollowsContentReload(t *testing.T) {
	router, clock, store := setupTestRouterWithStore(t)

	fieldsUpdatedAt := func() (time.Time, string) {
		t.Helper()
		rec := doRequest(t, router, http.MethodGet, "/api/sections/hero/fields", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var body struct {
			Fields    []editable.Field `json:"fields"`
			UpdatedAt time.Time        `json:"updatedAt"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		for _, f := range body.Fields {
			if f.Path.String() == "headline" {
				return body.UpdatedAt, f.Value
			}
		}
		t.Fatalf("headline missing from fields")
		return time.Time{}, ""
	}

	before, _ := fieldsUpdatedAt()

	clock.Advance(time.Minute)
	ov := content.Overrides{}
	ov.Hero.Headline = content.String("Reloaded")
	store.Replace(ov)

	after, headline := fieldsUpdatedAt()
	if headline != "Reloaded" {
		t.Fatalf("expected reloaded headline, got %q", headline)
	}
	if !after.After(before) || !after.Equal(clock.Now()) {
		t.Fatalf("expected updatedAt to advance from %s to %s, got %s", before, clock.Now(), after)
	}
}

func TestPutFieldStripsEncodedMarkup(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/sections/hero/field", map[string]string{
		"path":  "headline",
		"value": "&lt;script&gt;alert(1)&lt;/script&gt;Hi",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	get := doRequest(t, router, http.MethodGet, "/api/sections/hero", nil)
	if strings.Contains(get.Body.String(), "alert(1)") {
		t.Fatalf("encoded markup survived sanitising: %s", get.Body.String())
	}
}
