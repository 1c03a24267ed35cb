package domain

// SessionState represents where a browser session stands after the last
// auth-relevant action. It only drives UI navigation; the verification
// middleware remains the actual security boundary.
type SessionState string

const (
	SessionUnauthenticated         SessionState = "unauthenticated"
	SessionAuthenticatedIncomplete SessionState = "authenticated_incomplete"
	SessionAuthenticatedComplete   SessionState = "authenticated_complete"
)

// validSessionTransitions defines the allowed session transitions.
var validSessionTransitions = map[SessionState][]SessionState{
	SessionUnauthenticated:         {SessionAuthenticatedIncomplete, SessionAuthenticatedComplete},
	SessionAuthenticatedIncomplete: {SessionAuthenticatedComplete, SessionUnauthenticated},
	SessionAuthenticatedComplete:   {SessionUnauthenticated},
}

// CanTransitionTo reports whether moving from the current state to next is valid.
func (s SessionState) CanTransitionTo(next SessionState) bool {
	for _, allowed := range validSessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionAfterLogin returns the state a session enters when a login succeeds
// with the given claims: the profile-completion flag picks the branch.
func SessionAfterLogin(claims Claims) SessionState {
	if claims.ProfileSetupComplete {
		return SessionAuthenticatedComplete
	}
	return SessionAuthenticatedIncomplete
}

// UI destinations matching each authenticated session state.
const (
	DestinationEditProfile = "/edit-profile"
	DestinationDashboard   = "/dashboard"
	DestinationLogin       = "/login"
)

// Destination maps a session state to the UI route the client should land on.
func (s SessionState) Destination() string {
	switch s {
	case SessionAuthenticatedIncomplete:
		return DestinationEditProfile
	case SessionAuthenticatedComplete:
		return DestinationDashboard
	default:
		return DestinationLogin
	}
}
