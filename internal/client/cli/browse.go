package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Browse pages through other users' profiles one at a time.
func (a *App) Browse(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		a.log.Warn(ctx, "listing users failed", "err", err)
		printlnFn("Could not load people. Try again later.")
		return nil
	}
	if len(users) == 0 {
		printlnFn("Nobody around right now.")
		return nil
	}

	for i, u := range users {
		printlnFn(fmt.Sprintf("--- %d/%d ---", i+1, len(users)))
		printlnFn(fmt.Sprintf("%s (@%s)", u.Name, u.Nickname))
		if u.Rating != nil {
			printlnFn(fmt.Sprintf("Rating: %.1f", *u.Rating))
		}
		if len(u.Interests) > 0 {
			printlnFn("Interests: " + strings.Join(u.Interests, ", "))
		}
		if u.AboutMe != "" {
			printlnFn("About: " + u.AboutMe)
		}
		if i == len(users)-1 {
			break
		}

		answer, err := getSimpleText(a.reader, "Next? (Enter to continue, q to stop)", os.Stdout)
		if err != nil {
			return err
		}
		if answer == "q" {
			break
		}
	}
	return nil
}
