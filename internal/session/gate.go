package session

// Action identifies a navigation destination or primary call-to-action the
// current session may use.
type Action string

const (
	ActionBrowseListings  Action = "browse-listings"
	ActionLogin           Action = "login"
	ActionRegister        Action = "register"
	ActionBookListing     Action = "book-listing"
	ActionRateListing     Action = "rate-listing"
	ActionViewOwnBookings Action = "view-own-bookings"
	ActionSignOut         Action = "sign-out"
	ActionAdminDashboard  Action = "admin-dashboard"
	ActionManageListings  Action = "manage-listings"
	ActionManageUsers     Action = "manage-users"
	ActionViewAllBookings Action = "view-all-bookings"
	ActionViewAnalytics   Action = "view-analytics"
)

// VisibleActions maps a session snapshot to the set of enabled actions.
// Pure and deterministic: no I/O, no side effects, no caching — it must be
// re-evaluated on every store change, never memoized across snapshots.
//
// An unresolved session gets the same restrictive set as anonymous for
// privileged actions; the only difference is sign-out instead of login.
func VisibleActions(s Session) []Action {
	switch s.State() {
	case StateAdmin:
		return []Action{
			ActionBrowseListings,
			ActionAdminDashboard,
			ActionManageListings,
			ActionManageUsers,
			ActionViewAllBookings,
			ActionViewAnalytics,
			ActionSignOut,
		}
	case StateUser:
		return []Action{
			ActionBrowseListings,
			ActionBookListing,
			ActionRateListing,
			ActionViewOwnBookings,
			ActionSignOut,
		}
	case StateUnresolved:
		return []Action{ActionBrowseListings, ActionSignOut}
	default:
		return []Action{ActionBrowseListings, ActionLogin, ActionRegister}
	}
}

// PrimaryListingAction is the single call-to-action a listing card offers:
// manage for administrators, book for users, a login redirect otherwise.
func PrimaryListingAction(s Session) Action {
	switch s.State() {
	case StateAdmin:
		return ActionManageListings
	case StateUser:
		return ActionBookListing
	default:
		return ActionLogin
	}
}
