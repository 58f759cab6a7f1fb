package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

// originChecker enforces the configured allowed-origin policy on websocket
// upgrades. An empty Origin header (non-browser client or same-origin
// request) is allowed.
type originChecker struct {
	allowed  map[string]struct{}
	allowAll bool
}

func newOriginChecker(origins []string) *originChecker {
	c := &originChecker{allowed: make(map[string]struct{})}

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			c.allowAll = true
			continue
		}
		normalized, ok := normalizeOrigin(trimmed)
		if !ok {
			log.L().Warn().Str("origin", origin).Msg("ignoring invalid origin in configuration")
			continue
		}
		c.allowed[normalized] = struct{}{}
	}

	return c
}

func (c *originChecker) check(r *http.Request) bool {
	originHeader := r.Header.Get("Origin")
	if originHeader == "" {
		return true
	}

	if c.allowAll {
		return true
	}

	normalized, ok := normalizeOrigin(originHeader)
	if !ok {
		return false
	}

	if _, exists := c.allowed[normalized]; exists {
		return true
	}

	log.L().Warn().Str("origin", originHeader).Msg("blocked websocket connection from disallowed origin")
	return false
}

func normalizeOrigin(origin string) (string, bool) {
	parsed, err := url.Parse(origin)
	if err != nil {
		return "", false
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", false
	}
	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host), true
}
