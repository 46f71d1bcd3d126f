// Package combat turns a normalized character sheet into the combat options
// and vitality figures shown on the dashboard.
package combat

// Category is the action economy slot an option consumes
type Category string

// Categories, in display order
const (
	CategoryAction      Category = "Action"
	CategoryBonusAction Category = "Bonus Action"
	CategoryReaction    Category = "Reaction"
	CategoryOther       Category = "Other"
)

// Upstream activation type codes
const (
	ActivationAction      = 1
	ActivationBonusAction = 3
	ActivationReaction    = 4
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryAction,
	CategoryBonusAction,
	CategoryReaction,
	CategoryOther,
}

// CategoryFor maps an activation type code to its category.
// Zero stands for an absent code and, like any unknown code, maps to Other.
func CategoryFor(activationType int) Category {
	switch activationType {
	case ActivationAction:
		return CategoryAction
	case ActivationBonusAction:
		return CategoryBonusAction
	case ActivationReaction:
		return CategoryReaction
	default:
		return CategoryOther
	}
}
