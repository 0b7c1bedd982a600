package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nmorozova/lovebird/internal/tokenx"
)

// Profile renders the hydrated profile of the authenticated user.
func (a *App) Profile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.Profile == nil {
		printlnFn("Profile not loaded. Try logging in again.")
		return nil
	}

	p := snap.Profile
	printlnFn(fmt.Sprintf("%s (@%s)", p.Name, p.Nickname))
	if p.Email != "" {
		printlnFn("Email: " + p.Email)
	}
	if p.Rating != nil {
		printlnFn(fmt.Sprintf("Rating: %.1f", *p.Rating))
	}
	if len(p.Interests) > 0 {
		printlnFn("Interests: " + strings.Join(p.Interests, ", "))
	}
	if len(p.PhotoURLs) > 0 {
		printlnFn(fmt.Sprintf("Photos: %d", len(p.PhotoURLs)))
		for _, u := range p.PhotoURLs {
			printlnFn("  " + u)
		}
	}
	if p.AboutMe != "" {
		printlnFn("About: " + p.AboutMe)
	}

	if exp, ok := tokenx.ExpiresAt(snap.AccessToken); ok {
		printlnFn("Session expires " + exp.Local().Format(time.RFC822))
	}
	return nil
}
