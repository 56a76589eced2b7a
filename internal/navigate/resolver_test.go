package navigate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordingHandler struct {
	scrolled []string
	pushed   []string
	opened   []string
}

func (h *recordingHandler) ScrollTo(_ context.Context, fragment string) {
	h.scrolled = append(h.scrolled, fragment)
}

func (h *recordingHandler) Push(_ context.Context, href string) {
	h.pushed = append(h.pushed, href)
}

func (h *recordingHandler) Open(_ context.Context, href string) {
	h.opened = append(h.opened, href)
}

func (h *recordingHandler) calls() int {
	return len(h.scrolled) + len(h.pushed) + len(h.opened)
}

func TestResolveDispatchesExactlyOnce(t *testing.T) {
	t.Parallel()

	r := NewResolver(mustOrigin(t, "https://example.com"))

	tests := []struct {
		raw   string
		check func(*recordingHandler) bool
		calls int
	}{
		{raw: "#pricing", calls: 1, check: func(h *recordingHandler) bool {
			return len(h.scrolled) == 1 && h.scrolled[0] == "pricing"
		}},
		{raw: "/signup?plan=growth", calls: 1, check: func(h *recordingHandler) bool {
			return len(h.pushed) == 1 && h.pushed[0] == "/signup?plan=growth"
		}},
		{raw: "https://twitter.com/x", calls: 1, check: func(h *recordingHandler) bool {
			return len(h.opened) == 1 && h.opened[0] == "https://twitter.com/x"
		}},
		{raw: "https://example.com/about", calls: 1, check: func(h *recordingHandler) bool {
			return len(h.pushed) == 1 && h.pushed[0] == "/about"
		}},
		{raw: "", calls: 0, check: func(*recordingHandler) bool { return true }},
		{raw: "#", calls: 0, check: func(*recordingHandler) bool { return true }},
		{raw: "javascript:void(0)", calls: 0, check: func(*recordingHandler) bool { return true }},
	}

	for _, tc := range tests {
		h := &recordingHandler{}
		r.Resolve(context.Background(), tc.raw, h)
		if h.calls() != tc.calls {
			t.Fatalf("Resolve(%q): expected %d handler calls, got %d", tc.raw, tc.calls, h.calls())
		}
		if !tc.check(h) {
			t.Fatalf("Resolve(%q): unexpected dispatch %#v", tc.raw, h)
		}
	}
}

func TestResolveNilHandler(t *testing.T) {
	t.Parallel()

	got := NewResolver(nil).Resolve(context.Background(), "#hero", nil)
	if got.Kind != Anchor {
		t.Fatalf("expected anchor, got %s", got.Kind)
	}
}

func TestHandlerFuncs(t *testing.T) {
	t.Parallel()

	var pushed string
	h := HandlerFuncs{PushFunc: func(_ context.Context, href string) { pushed = href }}

	r := NewResolver(nil)
	r.Resolve(context.Background(), "/demo", h)
	r.Resolve(context.Background(), "#hero", h)
	r.Resolve(context.Background(), "https://example.org", h)

	if pushed != "/demo" {
		t.Fatalf("expected push /demo, got %q", pushed)
	}
}

func TestResolverOriginIsCopied(t *testing.T) {
	t.Parallel()

	origin := mustOrigin(t, "https://example.com")
	r := NewResolver(origin)
	origin.Host = "evil.example"

	if got := r.Origin().Host; got != "example.com" {
		t.Fatalf("resolver origin changed with caller's copy: %s", got)
	}
	r.Origin().Host = "other.example"
	if got := r.Origin().Host; got != "example.com" {
		t.Fatalf("Origin must return a copy, got %s", got)
	}
	if NewResolver(nil).Origin() != nil {
		t.Fatalf("expected nil origin")
	}
}

func TestRedirector(t *testing.T) {
	t.Parallel()

	r := NewResolver(mustOrigin(t, "https://example.com"))

	tests := []struct {
		raw      string
		location string
	}{
		{raw: "#pricing", location: "/#pricing"},
		{raw: "/signup?plan=growth", location: "/signup?plan=growth"},
		{raw: "https://twitter.com/x", location: "https://twitter.com/x"},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/go", nil)
		rec := httptest.NewRecorder()
		r.Resolve(req.Context(), tc.raw, NewRedirector(rec, req, "/"))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected status %d, got %d", tc.raw, http.StatusSeeOther, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tc.location {
			t.Fatalf("%s: expected Location %q, got %q", tc.raw, tc.location, got)
		}
	}
}
