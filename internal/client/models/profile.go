// Package models defines client-side data models shared by the API binding,
// the session manager and the screens.
package models

// UserProfile is the authenticated user's profile as returned by GET /users/me.
//
// The session manager treats most of it as opaque display data; only a few
// fields are read for gating and the status line.
type UserProfile struct {
	// ID is the server-assigned user identifier.
	ID int64 `json:"id"`

	// Name is the display name entered at registration.
	Name string `json:"name"`

	// Nickname is the unique handle used for login.
	Nickname string `json:"nickname"`

	// Email is the account email address.
	Email string `json:"email,omitempty"`

	// Rating is an optional numeric score assigned by the backend.
	Rating *float64 `json:"rating,omitempty"`

	// Interests is an ordered list of interest tags.
	Interests []string `json:"interests,omitempty"`

	// PhotoURLs is an ordered list of photo locations, possibly empty.
	PhotoURLs []string `json:"photo_urls,omitempty"`

	// AboutMe is the free-text bio.
	AboutMe string `json:"about_me,omitempty"`
}

// ProfileUpdate carries a partial profile change for PUT /users/me.
// Nil fields are omitted from the request body and left untouched
// on the server.
type ProfileUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Nickname  *string  `json:"nickname,omitempty"`
	AboutMe   *string  `json:"about_me,omitempty"`
	PhotoURLs []string `json:"photo_urls,omitempty"`
}
