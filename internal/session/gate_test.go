package session

import "testing"

func containsAction(actions []Action, want Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

func TestVisibleActions_Anonymous(t *testing.T) {
	actions := VisibleActions(Session{})

	if !containsAction(actions, ActionBrowseListings) {
		t.Fatalf("anonymous cannot browse listings")
	}
	if !containsAction(actions, ActionLogin) || !containsAction(actions, ActionRegister) {
		t.Fatalf("anonymous missing login/register: %v", actions)
	}
	if containsAction(actions, ActionSignOut) || containsAction(actions, ActionAdminDashboard) {
		t.Fatalf("anonymous granted privileged actions: %v", actions)
	}
}

func TestVisibleActions_Unresolved(t *testing.T) {
	actions := VisibleActions(Session{UserID: "u1"})

	if !containsAction(actions, ActionSignOut) {
		t.Fatalf("unresolved session cannot sign out")
	}
	if containsAction(actions, ActionLogin) {
		t.Fatalf("unresolved session offered login: %v", actions)
	}
	if containsAction(actions, ActionBookListing) || containsAction(actions, ActionManageUsers) {
		t.Fatalf("unresolved session granted privileged actions: %v", actions)
	}
}

func TestVisibleActions_User(t *testing.T) {
	actions := VisibleActions(Session{UserID: "u1", Role: "user"})

	for _, want := range []Action{ActionBookListing, ActionRateListing, ActionViewOwnBookings, ActionSignOut} {
		if !containsAction(actions, want) {
			t.Fatalf("user missing %s: %v", want, actions)
		}
	}
	if containsAction(actions, ActionAdminDashboard) || containsAction(actions, ActionManageUsers) {
		t.Fatalf("user granted admin actions: %v", actions)
	}
}

func TestVisibleActions_Admin(t *testing.T) {
	actions := VisibleActions(Session{UserID: "u1", Role: "admin"})

	for _, want := range []Action{ActionAdminDashboard, ActionManageListings, ActionManageUsers, ActionViewAllBookings, ActionViewAnalytics} {
		if !containsAction(actions, want) {
			t.Fatalf("admin missing %s: %v", want, actions)
		}
	}
	if containsAction(actions, ActionBookListing) {
		t.Fatalf("admin offered booking: %v", actions)
	}
}

func TestPrimaryListingAction(t *testing.T) {
	cases := []struct {
		name string
		sess Session
		want Action
	}{
		{"anonymous", Session{}, ActionLogin},
		{"unresolved", Session{UserID: "u1"}, ActionLogin},
		{"user", Session{UserID: "u1", Role: "user"}, ActionBookListing},
		{"admin", Session{UserID: "u1", Role: "admin"}, ActionManageListings},
	}
	for _, tc := range cases {
		if got := PrimaryListingAction(tc.sess); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestSessionState(t *testing.T) {
	cases := []struct {
		sess Session
		want State
	}{
		{Session{}, StateAnonymous},
		{Session{UserID: "u1"}, StateUnresolved},
		{Session{UserID: "u1", Role: "something-else"}, StateUnresolved},
		{Session{UserID: "u1", Role: "user"}, StateUser},
		{Session{UserID: "u1", Role: "admin"}, StateAdmin},
	}
	for _, tc := range cases {
		if got := tc.sess.State(); got != tc.want {
			t.Fatalf("%+v: expected %s, got %s", tc.sess, tc.want, got)
		}
	}
}
