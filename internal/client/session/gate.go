package session

// Stack identifies which screen stack the UI should present.
type Stack int

const (
	// StackSplash is shown while the session state is still being decided.
	StackSplash Stack = iota

	// StackAuth is the unauthenticated stack (login, register).
	StackAuth

	// StackMain is the authenticated stack (profile, browse, interests).
	StackMain
)

// StackFor is the navigation gate: a pure function of session state.
func StackFor(s Snapshot) Stack {
	if s.Loading() {
		return StackSplash
	}
	if !s.Authenticated() {
		return StackAuth
	}
	return StackMain
}
