package navigate

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

var errNotAbsolute = errors.New("origin must be an absolute scheme://host URL")

// Handler performs the navigation chosen by a Resolver. Exactly one method is
// called per resolution.
type Handler interface {
	// ScrollTo brings the in-page element with the given id into view.
	ScrollTo(ctx context.Context, fragment string)
	// Push performs a same-origin transition to href.
	Push(ctx context.Context, href string)
	// Open follows an external link.
	Open(ctx context.Context, href string)
}

// HandlerFuncs adapts plain functions to Handler. Nil functions are no-ops.
type HandlerFuncs struct {
	ScrollFunc func(ctx context.Context, fragment string)
	PushFunc   func(ctx context.Context, href string)
	OpenFunc   func(ctx context.Context, href string)
}

func (h HandlerFuncs) ScrollTo(ctx context.Context, fragment string) {
	if h.ScrollFunc != nil {
		h.ScrollFunc(ctx, fragment)
	}
}

func (h HandlerFuncs) Push(ctx context.Context, href string) {
	if h.PushFunc != nil {
		h.PushFunc(ctx, href)
	}
}

func (h HandlerFuncs) Open(ctx context.Context, href string) {
	if h.OpenFunc != nil {
		h.OpenFunc(ctx, href)
	}
}

// Resolver is the single entry point every clickable element goes through.
// Closing transient UI such as a mobile menu stays with the caller.
type Resolver struct {
	origin *url.URL
}

// NewResolver creates a Resolver for a site served at origin (nil when unknown).
func NewResolver(origin *url.URL) *Resolver {
	var o *url.URL
	if origin != nil {
		copied := *origin
		o = &copied
	}
	return &Resolver{origin: o}
}

// Origin returns the site origin, or nil.
func (r *Resolver) Origin() *url.URL {
	if r == nil || r.origin == nil {
		return nil
	}
	copied := *r.origin
	return &copied
}

// Classify is Classify bound to the resolver's origin.
func (r *Resolver) Classify(raw string) Target {
	return Classify(raw, r.Origin())
}

// Resolve classifies raw and hands it to h. Unusable targets are a no-op; the
// returned Target reports what was done.
func (r *Resolver) Resolve(ctx context.Context, raw string, h Handler) Target {
	t := r.Classify(raw)
	if h == nil {
		return t
	}
	switch t.Kind {
	case Anchor:
		h.ScrollTo(ctx, t.Fragment)
	case Route:
		h.Push(ctx, t.Href)
	case External:
		h.Open(ctx, t.Href)
	}
	return t
}

// Redirector performs navigation for a plain HTTP client by redirecting: an
// anchor goes to the landing page scrolled to the fragment, routes and
// external links go to their destination.
type Redirector struct {
	w    http.ResponseWriter
	r    *http.Request
	home string
}

// NewRedirector creates a Redirector answering req through w. Anchors are
// resolved against home, the path of the landing page.
func NewRedirector(w http.ResponseWriter, req *http.Request, home string) *Redirector {
	if home == "" {
		home = "/"
	}
	return &Redirector{w: w, r: req, home: home}
}

func (d *Redirector) ScrollTo(_ context.Context, fragment string) {
	dest := url.URL{Path: d.home, Fragment: fragment}
	http.Redirect(d.w, d.r, dest.String(), http.StatusSeeOther)
}

func (d *Redirector) Push(_ context.Context, href string) {
	http.Redirect(d.w, d.r, href, http.StatusSeeOther)
}

func (d *Redirector) Open(_ context.Context, href string) {
	http.Redirect(d.w, d.r, href, http.StatusSeeOther)
}
