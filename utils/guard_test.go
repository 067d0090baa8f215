package utils

import (
	"errors"
	"testing"
)

func roleLookup(role string, err error) RoleLookup {
	return func(userID uint) (string, error) {
		return role, err
	}
}

func TestGuardPage(t *testing.T) {
	if d := GuardPage(nil); d.Authorized || d.RedirectTo != LoginPath {
		t.Errorf("nil claims: got %+v, want redirect to login", d)
	}
	if d := GuardPage(&AccessToken{ID: 0}); d.Authorized {
		t.Errorf("zero user id: got %+v, want unauthorized", d)
	}
	if d := GuardPage(&AccessToken{ID: 42}); !d.Authorized {
		t.Errorf("valid session: got %+v, want authorized", d)
	}
}

func TestGuardAdmin(t *testing.T) {
	claims := &AccessToken{ID: 42}

	// Unauthenticated -> login redirect, before any lookup
	d := GuardAdmin(nil, roleLookup("", errors.New("must not be called")), "")
	if d.Authorized || d.RedirectTo != LoginPath {
		t.Errorf("unauthenticated: got %+v, want redirect to login", d)
	}

	// Non-admin -> fallback redirect
	d = GuardAdmin(claims, roleLookup("user", nil), "")
	if d.Authorized || d.RedirectTo != DefaultFallback {
		t.Errorf("non-admin: got %+v, want redirect to %q", d, DefaultFallback)
	}

	// Custom fallback honored
	d = GuardAdmin(claims, roleLookup("user", nil), "/accueil")
	if d.RedirectTo != "/accueil" {
		t.Errorf("custom fallback: got %q, want /accueil", d.RedirectTo)
	}

	// Admin and super_admin pass
	if d := GuardAdmin(claims, roleLookup("admin", nil), ""); !d.Authorized {
		t.Errorf("admin: got %+v, want authorized", d)
	}
	if d := GuardAdmin(claims, roleLookup("super_admin", nil), ""); !d.Authorized {
		t.Errorf("super_admin: got %+v, want authorized", d)
	}
}

// A profile lookup failure fails closed: redirected, not errored.
func TestGuardAdminFailsClosedOnLookupError(t *testing.T) {
	d := GuardAdmin(&AccessToken{ID: 42}, roleLookup("", errors.New("store down")), "")
	if d.Authorized {
		t.Fatal("lookup failure must not authorize")
	}
	if d.RedirectTo != DefaultFallback {
		t.Errorf("got redirect %q, want %q", d.RedirectTo, DefaultFallback)
	}
}

func TestGuardSuperAdmin(t *testing.T) {
	claims := &AccessToken{ID: 7}

	if d := GuardSuperAdmin(claims, roleLookup("admin", nil), ""); d.Authorized {
		t.Errorf("plain admin: got %+v, want unauthorized", d)
	}
	if d := GuardSuperAdmin(claims, roleLookup("super_admin", nil), ""); !d.Authorized {
		t.Errorf("super_admin: got %+v, want authorized", d)
	}
}
