package usda

import "time"

const (
	DefaultBaseURL  = "https://api.nal.usda.gov"
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 3

	ClassBeneficial = "beneficial"
	ClassAvoid      = "avoid"
	ClassNeutral    = "neutral"
)

// Thresholds applied to the first search match.
const (
	maxSugarG       = 15
	maxSatFatG      = 5
	maxSodiumMg     = 600
	proteinFiberMin = 5
	fiberMin        = 3
	lowSugarMax     = 5
	proteinRichMin  = 8
)

// Nutrient aliases, lowercase. FoodData Central has renamed several over time.
var (
	aliasEnergy  = []string{"energy", "energy (kcal)", "calories"}
	aliasProtein = []string{"protein"}
	aliasFat     = []string{"total lipid (fat)", "total fat"}
	aliasSatFat  = []string{"fatty acids, total saturated", "saturated fat"}
	aliasCarbs   = []string{"carbohydrate, by difference", "carbohydrates"}
	aliasSugar   = []string{"sugars, total including nlea", "total sugars", "sugars", "sugar"}
	aliasFiber   = []string{"fiber, total dietary", "dietary fiber"}
	aliasSodium  = []string{"sodium, na", "sodium"}
)
