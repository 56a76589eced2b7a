package navigate

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// Kind is the navigation behaviour a target string calls for.
type Kind int

const (
	// None marks empty or unusable targets; resolving them does nothing.
	None Kind = iota
	// Anchor scrolls to an element on the current page.
	Anchor
	// Route is a same-origin transition.
	Route
	// External leaves the site.
	External
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Route:
		return "route"
	case External:
		return "external"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Target is a classified navigation target.
type Target struct {
	Raw  string
	Kind Kind
	// Fragment is the element id for Anchor targets.
	Fragment string
	// Href is the normalised destination: "#id" for anchors, an absolute path
	// for routes, the full URL for external targets. Empty for None.
	Href string
}

// Classify decides how raw should be navigated. It depends only on the shape
// of raw and on origin, the site's own scheme://host[:port], which may be nil.
func Classify(raw string, origin *url.URL) Target {
	t := Target{Raw: raw}
	s := strings.TrimSpace(raw)
	if s == "" {
		return t
	}

	if strings.HasPrefix(s, "#") {
		frag := s[1:]
		if frag == "" {
			return t
		}
		t.Kind = Anchor
		t.Fragment = frag
		t.Href = "#" + frag
		return t
	}

	u, err := url.Parse(s)
	if err != nil {
		return t
	}

	switch strings.ToLower(u.Scheme) {
	case "":
		if u.Host != "" {
			// protocol-relative //host/path
			u.Scheme = "https"
			if origin != nil && origin.Scheme != "" {
				u.Scheme = origin.Scheme
			}
			return classifyAbsolute(t, u, origin)
		}
		return route(t, u)
	case "http", "https":
		if u.Host == "" {
			return t
		}
		return classifyAbsolute(t, u, origin)
	case "mailto", "tel":
		if u.Opaque == "" {
			return t
		}
		t.Kind = External
		t.Href = u.String()
		return t
	default:
		return t
	}
}

func classifyAbsolute(t Target, u *url.URL, origin *url.URL) Target {
	if SameOrigin(u, origin) {
		local := *u
		local.Scheme = ""
		local.Host = ""
		local.User = nil
		return route(t, &local)
	}
	t.Kind = External
	t.Href = u.String()
	return t
}

func route(t Target, u *url.URL) Target {
	if u.Path != "" && !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	if u.Path == "" {
		u.Path = "/"
	}
	t.Kind = Route
	t.Href = u.String()
	return t
}

// SameOrigin reports whether u and origin share scheme, host and port. Hosts
// are compared in their IDNA ASCII form.
func SameOrigin(u, origin *url.URL) bool {
	if u == nil || origin == nil || origin.Host == "" {
		return false
	}
	if !strings.EqualFold(u.Scheme, origin.Scheme) {
		return false
	}
	h1, ok1 := normalizeHost(u.Hostname())
	h2, ok2 := normalizeHost(origin.Hostname())
	if !ok1 || !ok2 || h1 != h2 {
		return false
	}
	return effectivePort(u) == effectivePort(origin)
}

func normalizeHost(host string) (string, bool) {
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", false
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String(), true
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", false
	}
	return strings.ToLower(ascii), true
}

func effectivePort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	switch strings.ToLower(u.Scheme) {
	case "http":
		return "80"
	case "https":
		return "443"
	default:
		return ""
	}
}

// ParseOrigin parses a site origin such as https://example.com. An empty
// string yields nil, meaning every absolute URL is external.
func ParseOrigin(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse origin", URL: raw, Err: errNotAbsolute}
	}
	return &url.URL{Scheme: strings.ToLower(u.Scheme), Host: u.Host}, nil
}
