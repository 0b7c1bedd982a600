package cli

import (
	"context"
	"os"
	"strings"

	"github.com/nmorozova/lovebird/internal/client/models"
)

var getMultiline = GetMultiline

// Edit updates the free-text bio and the photo list. Fields left empty are
// not sent, so the server keeps their current values.
func (a *App) Edit(ctx context.Context) error {
	about, err := getMultiline(a.reader, "New bio (leave empty to keep current)", os.Stdout)
	if err != nil {
		return err
	}
	photosLine, err := getSimpleText(a.reader, "Photo URLs, comma-separated (leave empty to keep current)", os.Stdout)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{}
	if about != "" {
		update.AboutMe = &about
	}
	if photosLine != "" {
		var photos []string
		for _, u := range strings.Split(photosLine, ",") {
			if u = strings.TrimSpace(u); u != "" {
				photos = append(photos, u)
			}
		}
		update.PhotoURLs = photos
	}
	if update.AboutMe == nil && update.PhotoURLs == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	if _, err := a.session.UpdateProfile(ctx, update); err != nil {
		a.log.Warn(ctx, "profile update failed", "err", err)
		printlnFn("Could not save your changes. Try again later.")
		return nil
	}
	printlnFn("Profile updated.")
	return nil
}

// ChangeNickname updates the unique handle used for login.
func (a *App) ChangeNickname(ctx context.Context) error {
	nickname, err := getSimpleText(a.reader, "Enter new nickname", os.Stdout)
	if err != nil {
		return err
	}
	if nickname == "" {
		printlnFn("Nickname cannot be empty.")
		return nil
	}

	if _, err := a.session.UpdateProfile(ctx, models.ProfileUpdate{Nickname: &nickname}); err != nil {
		a.log.Warn(ctx, "nickname change failed", "err", err)
		printlnFn("Could not change your nickname. It may already be taken.")
		return nil
	}
	printlnFn("Nickname changed.")
	return nil
}
