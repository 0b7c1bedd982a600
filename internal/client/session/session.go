// Package session owns the client-side authentication lifecycle: token
// persistence, silent refresh at startup, profile hydration and logout.
//
// The Manager is the sole mutator of the credential store and of the API
// binding's Authorization header. Everything else observes the session
// through read-only snapshots.
package session

import "github.com/nmorozova/lovebird/internal/client/models"

// State names the phase the session is in.
type State string

const (
	// StateBootstrapping is the one-time startup check of persisted tokens.
	StateBootstrapping State = "bootstrapping"

	// StateUnauthenticated means no usable token is held.
	StateUnauthenticated State = "unauthenticated"

	// StateAuthenticating means a login, registration or refresh call is in
	// flight.
	StateAuthenticating State = "authenticating"

	// StateAuthenticated means a token is held and the profile is hydrated.
	StateAuthenticated State = "authenticated"

	// StateTearingDown means a logout is in flight.
	StateTearingDown State = "tearing_down"
)

// Loading reports whether the UI should show a wait indicator for this state.
func (s State) Loading() bool {
	switch s {
	case StateBootstrapping, StateAuthenticating, StateTearingDown:
		return true
	default:
		return false
	}
}

// Snapshot is an immutable view of the session handed to consumers.
// Mutations go through Manager operations only.
type Snapshot struct {
	State       State
	AccessToken string
	Profile     *models.UserProfile
}

// Loading reports whether a top-level operation is in flight.
func (s Snapshot) Loading() bool { return s.State.Loading() }

// Authenticated reports whether a token is currently held. The token is
// non-empty iff the credential store holds the matching persisted token.
func (s Snapshot) Authenticated() bool { return s.AccessToken != "" }

// clone returns a copy safe to hand out: the profile and its slices are
// duplicated so subscribers cannot alias manager-owned state.
func (s Snapshot) clone() Snapshot {
	if s.Profile != nil {
		p := *s.Profile
		p.Interests = append([]string(nil), p.Interests...)
		p.PhotoURLs = append([]string(nil), p.PhotoURLs...)
		s.Profile = &p
	}
	return s
}
