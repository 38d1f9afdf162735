package recipe

import (
	"regexp"
	"slices"
	"strings"

	"nutricoach/internal/model"
)

var (
	recipeHref = regexp.MustCompile(`(?i)recipe|recipes|dish|food|meal`)
	recipeText = regexp.MustCompile(`(?i)recipe`)
)

// Select picks up to count unique links from anchors, topping up with
// recipe-looking links, then drops titles naming an allergy and ranks by
// how many custom issues and conditions the title mentions.
func Select(anchors []Anchor, count int, p model.UserProfile) []model.Recipe {
	seen := make(map[string]struct{})
	var items []model.Recipe
	add := func(a Anchor) {
		if _, ok := seen[a.Href]; ok {
			return
		}
		seen[a.Href] = struct{}{}
		title := a.Text
		if title == "" {
			title = a.Href
		}
		items = append(items, model.Recipe{Title: title, Href: a.Href})
	}

	for _, a := range anchors {
		if len(items) >= count {
			break
		}
		add(a)
	}
	for _, a := range anchors {
		if len(items) >= count {
			break
		}
		if recipeHref.MatchString(a.Href) || recipeText.MatchString(a.Text) {
			add(a)
		}
	}

	return Rank(items, p)
}

// Rank filters out allergy matches and orders the rest by preference
// score, keeping source order among equal scores.
func Rank(items []model.Recipe, p model.UserProfile) []model.Recipe {
	allergies := lowerAll(p.Allergies)
	prefers := append(lowerAll(p.Custom), lowerAll(p.Conditions)...)

	filtered := slices.DeleteFunc(slices.Clone(items), func(r model.Recipe) bool {
		t := strings.ToLower(r.Title)
		return slices.ContainsFunc(allergies, func(a string) bool { return strings.Contains(t, a) })
	})

	score := func(r model.Recipe) int {
		t := strings.ToLower(r.Title)
		n := 0
		for _, k := range prefers {
			if strings.Contains(t, k) {
				n++
			}
		}
		return n
	}
	slices.SortStableFunc(filtered, func(a, b model.Recipe) int {
		return score(b) - score(a)
	})
	return filtered
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
