// Package gate decides where a navigation may go given the caller's session
// flags. Decisions are recomputed from the flags on every request and have no
// side effects.
package gate

import (
	"net/url"
	"strings"
)

// Flags is the session state the gate reads. The zero value is a visitor
// without a session.
type Flags struct {
	Authenticated       bool
	OnboardingCompleted bool
	PaywallCompleted    bool
}

type State int

const (
	StateUnauthenticated State = iota
	StateOnboardingPending
	StatePaywallPending
	StateActive
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateOnboardingPending:
		return "onboarding_pending"
	case StatePaywallPending:
		return "paywall_pending"
	case StateActive:
		return "active"
	}
	return "unknown"
}

// State checks authentication first, then onboarding, then paywall.
func (f Flags) State() State {
	switch {
	case !f.Authenticated:
		return StateUnauthenticated
	case !f.OnboardingCompleted:
		return StateOnboardingPending
	case !f.PaywallCompleted:
		return StatePaywallPending
	}
	return StateActive
}

type Action int

const (
	Allow Action = iota
	Redirect
)

type Decision struct {
	Action           Action
	Target           string
	PreserveCallback bool
	// Path is the requested path, kept for the callback.
	Path string
}

// Location renders the redirect target, with callbackUrl when the decision
// preserves the requested path.
func (d Decision) Location() string {
	if d.Action != Redirect {
		return ""
	}
	if !d.PreserveCallback {
		return d.Target
	}
	return d.Target + "?callbackUrl=" + escapeCallback(d.Path)
}

type Rules struct {
	SignInPath     string
	OnboardingPath string
	PaywallPath    string
	HomePath       string
	AuthPagePrefix string
	// Always reachable, whatever the session.
	AssetPaths []string
	// Reachable without a session.
	PublicPaths []string
	// Reachable before onboarding is completed.
	OnboardingPassthrough []string
	// Reachable before the paywall is completed.
	PaywallPassthrough []string
}

func DefaultRules() Rules {
	return Rules{
		SignInPath:     "/auth/signin",
		OnboardingPath: "/onboarding",
		PaywallPath:    "/paywall",
		HomePath:       "/",
		AuthPagePrefix: "/auth",
		AssetPaths: []string{
			"/static",
			"/images",
			"/uploads",
			"/favicon.ico",
			"/sw.js",
			"/manifest.json",
		},
		PublicPaths: []string{
			"/auth/signin",
			"/auth/signup",
			"/auth/verify-request",
			"/auth/error",
			"/api/auth",
		},
		OnboardingPassthrough: []string{
			"/onboarding",
			"/api",
			"/auth",
		},
		PaywallPassthrough: []string{
			"/onboarding",
			"/paywall",
			"/api",
			"/auth",
		},
	}
}

func (r Rules) Decide(path string, flags Flags) Decision {
	if path == "" {
		path = "/"
	}
	if matchesAny(path, r.AssetPaths) {
		return Decision{Action: Allow, Path: path}
	}
	if !flags.Authenticated {
		if matchesAny(path, r.PublicPaths) {
			return Decision{Action: Allow, Path: path}
		}
		return Decision{
			Action:           Redirect,
			Target:           r.SignInPath,
			PreserveCallback: path != r.HomePath,
			Path:             path,
		}
	}
	if strings.HasPrefix(path, r.AuthPagePrefix+"/") {
		return Decision{Action: Redirect, Target: r.HomePath, Path: path}
	}
	if !flags.OnboardingCompleted && !matchesAny(path, r.OnboardingPassthrough) {
		return Decision{Action: Redirect, Target: r.OnboardingPath, Path: path}
	}
	if !flags.PaywallCompleted && !matchesAny(path, r.PaywallPassthrough) {
		return Decision{Action: Redirect, Target: r.PaywallPath, Path: path}
	}
	return Decision{Action: Allow, Path: path}
}

// SafeCallback returns raw when it is a local absolute path and "/"
// otherwise, so a callbackUrl can't send the user to another host.
func SafeCallback(raw string) string {
	if raw == "" {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	return raw
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func escapeCallback(path string) string {
	return strings.ReplaceAll(url.QueryEscape(path), "%2F", "/")
}
