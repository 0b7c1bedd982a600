package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// maxInterests bounds how many interests a profile may carry.
const maxInterests = 5

// Interests shows the selectable interest catalog by category and saves the
// user's new selection.
func (a *App) Interests(ctx context.Context) error {
	catalog, err := a.api.FetchInterests(ctx)
	if err != nil {
		a.log.Warn(ctx, "loading interests failed", "err", err)
		printlnFn("Could not load the interest list. Try again later.")
		return nil
	}

	categories := make([]string, 0, len(catalog))
	for c := range catalog {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		printlnFn(c + ":")
		printlnFn("  " + strings.Join(catalog[c], ", "))
	}

	line, err := getSimpleText(a.reader,
		fmt.Sprintf("Pick up to %d interests, comma-separated", maxInterests), os.Stdout)
	if err != nil {
		return err
	}
	if line == "" {
		printlnFn("Selection unchanged.")
		return nil
	}

	var selected []string
	for _, item := range strings.Split(line, ",") {
		if item = strings.TrimSpace(item); item != "" {
			selected = append(selected, item)
		}
	}
	if len(selected) > maxInterests {
		printlnFn(fmt.Sprintf("You can pick at most %d interests.", maxInterests))
		return nil
	}

	if err := a.api.SaveInterests(ctx, selected); err != nil {
		a.log.Warn(ctx, "saving interests failed", "err", err)
		printlnFn("Could not save your interests. Try again later.")
		return nil
	}
	printlnFn("Interests saved.")
	return nil
}
