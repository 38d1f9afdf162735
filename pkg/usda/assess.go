package usda

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// FactsOf folds a nutrient list into Facts. Names match case-insensitively;
// the first alias with a non-zero amount wins. Energy in kJ is ignored.
func FactsOf(nutrients []Nutrient) Facts {
	byName := make(map[string]float64, len(nutrients))
	for _, n := range nutrients {
		name := strings.ToLower(strings.TrimSpace(n.Name))
		if name == "" {
			continue
		}
		if strings.EqualFold(n.Unit, "kJ") {
			continue
		}
		byName[name] = n.Value
	}

	pick := func(aliases []string) float64 {
		for _, a := range aliases {
			if v := byName[a]; v != 0 {
				return v
			}
		}
		return 0
	}

	return Facts{
		Calories:     pick(aliasEnergy),
		Protein:      pick(aliasProtein),
		TotalFat:     pick(aliasFat),
		SaturatedFat: pick(aliasSatFat),
		Carbs:        pick(aliasCarbs),
		Sugar:        pick(aliasSugar),
		Fiber:        pick(aliasFiber),
		Sodium:       pick(aliasSodium),
	}
}

// Classify applies the fixed-priority heuristic: avoid, then beneficial, then neutral.
func Classify(f Facts) (string, []string) {
	var reasons []string

	if f.Sugar > maxSugarG || f.SaturatedFat > maxSatFatG || f.Sodium > maxSodiumMg {
		if f.Sugar > maxSugarG {
			reasons = append(reasons, fmt.Sprintf("High sugar (%s g)", num(f.Sugar)))
		}
		if f.SaturatedFat > maxSatFatG {
			reasons = append(reasons, fmt.Sprintf("High saturated fat (%s g)", num(f.SaturatedFat)))
		}
		if f.Sodium > maxSodiumMg {
			reasons = append(reasons, fmt.Sprintf("High sodium (%s mg)", num(f.Sodium)))
		}
		return ClassAvoid, reasons
	}

	if (f.Protein >= proteinFiberMin && f.Fiber >= fiberMin && f.Sugar <= lowSugarMax) || f.Protein >= proteinRichMin {
		if f.Protein > 0 {
			reasons = append(reasons, fmt.Sprintf("Protein %s g", num(f.Protein)))
		}
		if f.Fiber > 0 {
			reasons = append(reasons, fmt.Sprintf("Fiber %s g", num(f.Fiber)))
		}
		reasons = append(reasons, fmt.Sprintf("Sugar %s g", num(f.Sugar)))
		return ClassBeneficial, reasons
	}

	if f.Calories > 0 {
		reasons = append(reasons, fmt.Sprintf("Calories %s", num(f.Calories)))
	}
	return ClassNeutral, reasons
}

// Assess classifies a single food.
func Assess(food Food) Assessment {
	facts := FactsOf(food.Nutrients)
	class, reasons := Classify(facts)
	desc := food.Description
	if desc == "" {
		desc = "food"
	}
	return Assessment{
		Description:    desc,
		Classification: class,
		Reasons:        reasons,
		Facts:          facts,
	}
}

// Explain renders the multi-line explanation shown as the assistant reply.
func (a Assessment) Explain() string {
	reasons := strings.Join(a.Reasons, "; ")
	if reasons == "" {
		reasons = "None"
	}

	f := a.Facts
	var summary []string
	add := func(v float64, format string) {
		if v != 0 {
			summary = append(summary, fmt.Sprintf(format, num(v)))
		}
	}
	add(f.Calories, "Calories: %s")
	add(f.Protein, "Protein: %s g")
	add(f.TotalFat, "Fat: %s g")
	add(f.SaturatedFat, "Sat fat: %s g")
	add(f.Carbs, "Carbs: %s g")
	add(f.Sugar, "Sugar: %s g")
	add(f.Fiber, "Fiber: %s g")
	add(f.Sodium, "Sodium: %s mg")

	return fmt.Sprintf("USDA match: %s\nClassification: %s\nReasons: %s\nSummary: %s",
		a.Description, strings.ToUpper(a.Classification), reasons, strings.Join(summary, ", "))
}

// NoMatch is the reply when the search returns nothing.
func NoMatch(query string) string {
	return fmt.Sprintf("No USDA data found for %q.", query)
}

// Lookup searches, assesses the first match and returns the explanation.
// An empty result is not an error.
func Lookup(ctx context.Context, api IUSDA, query string) (string, error) {
	foods, err := api.Search(ctx, query, DefaultPageSize)
	if err != nil {
		return "", err
	}
	if len(foods) == 0 {
		return NoMatch(query), nil
	}
	return Assess(foods[0]).Explain(), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
