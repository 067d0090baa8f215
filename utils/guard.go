package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// DefaultFallback is where under-privileged callers are sent.
const DefaultFallback = "/"

// LoginPath is where unauthenticated callers are sent.
const LoginPath = "/auth/login"

// AccessDecision is the outcome of a route guard check. Callers inspect
// it and act (render, redirect, 403) instead of the guard hijacking
// navigation itself.
type AccessDecision struct {
	Authorized bool
	RedirectTo string
	Reason     string
}

// RoleLookup resolves the stored role for a user id. An error means the
// profile could not be loaded; the guard treats that the same as absent.
type RoleLookup func(userID uint) (string, error)

// GuardPage admits any authenticated session.
func GuardPage(claims *AccessToken) AccessDecision {
	if claims == nil || claims.ID == 0 {
		return AccessDecision{RedirectTo: LoginPath, Reason: "unauthenticated"}
	}
	return AccessDecision{Authorized: true}
}

// GuardAdmin admits sessions whose stored profile carries an admin role.
// A lookup failure fails closed: the caller is redirected, not errored.
func GuardAdmin(claims *AccessToken, lookup RoleLookup, fallback string) AccessDecision {
	if fallback == "" {
		fallback = DefaultFallback
	}

	if page := GuardPage(claims); !page.Authorized {
		return page
	}

	role, err := lookup(claims.ID)
	if err != nil {
		return AccessDecision{RedirectTo: fallback, Reason: "profile lookup failed"}
	}
	if role != "admin" && role != "super_admin" {
		return AccessDecision{RedirectTo: fallback, Reason: "not an admin"}
	}

	return AccessDecision{Authorized: true}
}

// GuardSuperAdmin admits super admins only.
func GuardSuperAdmin(claims *AccessToken, lookup RoleLookup, fallback string) AccessDecision {
	if fallback == "" {
		fallback = DefaultFallback
	}

	if page := GuardPage(claims); !page.Authorized {
		return page
	}

	role, err := lookup(claims.ID)
	if err != nil {
		return AccessDecision{RedirectTo: fallback, Reason: "profile lookup failed"}
	}
	if role != "super_admin" {
		return AccessDecision{RedirectTo: fallback, Reason: "not a super admin"}
	}

	return AccessDecision{Authorized: true}
}

// accessTokenFromCtx pulls verified claims out of the iris JWT middleware.
func accessTokenFromCtx(ctx iris.Context) *AccessToken {
	tok := jwt.Get(ctx)
	if tok == nil {
		return nil
	}
	claims, ok := tok.(*AccessToken)
	if !ok {
		return nil
	}
	return claims
}
