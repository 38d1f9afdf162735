package model

import (
	"slices"
	"strings"
)

// CommonConditions are offered as one-tap chips in the profile editor.
var CommonConditions = []string{"diabetes", "hypertension", "kidney disease", "lactose intolerance"}

// UserProfile is the health profile sent with every question.
// Conditions and Allergies behave as sets; Custom allows duplicates.
type UserProfile struct {
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`
	Custom     []string `json:"custom"`
}

// EmptyProfile returns a profile with non-nil slices so it serializes as [] not null.
func EmptyProfile() UserProfile {
	return UserProfile{Conditions: []string{}, Allergies: []string{}, Custom: []string{}}
}

// Normalize fills nil slices and drops duplicate set members, keeping first occurrence order.
func (p UserProfile) Normalize() UserProfile {
	out := UserProfile{
		Conditions: dedupe(p.Conditions),
		Allergies:  dedupe(p.Allergies),
		Custom:     slices.Clone(p.Custom),
	}
	if out.Custom == nil {
		out.Custom = []string{}
	}
	return out
}

// ToggleCondition adds c if absent, removes it if present.
func (p UserProfile) ToggleCondition(c string) UserProfile {
	out := p.Normalize()
	if i := slices.Index(out.Conditions, c); i >= 0 {
		out.Conditions = slices.Delete(out.Conditions, i, i+1)
		return out
	}
	out.Conditions = append(out.Conditions, c)
	return out
}

// HasCondition reports set membership.
func (p UserProfile) HasCondition(c string) bool {
	return slices.Contains(p.Conditions, c)
}

// AddCustom appends a trimmed free-text issue. Blank input is ignored.
func (p UserProfile) AddCustom(text string) UserProfile {
	out := p.Normalize()
	if t := strings.TrimSpace(text); t != "" {
		out.Custom = append(out.Custom, t)
	}
	return out
}

// WithAllergies replaces allergies from a comma-separated string.
func (p UserProfile) WithAllergies(raw string) UserProfile {
	out := p.Normalize()
	out.Allergies = ParseAllergies(raw)
	return out
}

// ParseAllergies splits on commas, trims and drops empties.
func ParseAllergies(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			items = append(items, s)
		}
	}
	return dedupe(items)
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
