package combat

import (
	"fmt"

	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
)

// GenericActions are available to every character on their turn
var GenericActions = []string{"Dash", "Dodge", "Disengage", "Help", "Hide", "Search"}

// GenericReactions are available to every character off turn
var GenericReactions = []string{"Opportunity Attack"}

var sourceLabels = map[string]string{
	ddb.SourceRace:  "Race",
	ddb.SourceClass: "Class",
	ddb.SourceFeat:  "Feat",
}

// Classify sorts the sheet's abilities, weapons and spells into categories
// and appends the generic entries. It has no side effects and never fails.
func Classify(sheet *ddb.Sheet) *Options {
	opts := NewOptions()
	if sheet == nil {
		sheet = &ddb.Sheet{}
	}

	for _, source := range ddb.Sources {
		for _, ability := range sheet.Abilities[source] {
			if ability.ActivationType == 0 {
				continue
			}
			category := CategoryFor(ability.ActivationType)
			if category == CategoryOther {
				continue
			}
			opts.Add(category, abilityLine(sourceLabels[source], ability))
		}
	}

	for _, item := range sheet.Inventory {
		if !item.IsEquippedWeapon() {
			continue
		}
		opts.Add(CategoryAction, "Attack: "+item.Name)
		if item.HasProperty(ddb.PropertyLight) {
			opts.Add(CategoryBonusAction, "Off-hand Attack: "+item.Name)
		}
	}

	for _, spells := range sheet.ClassSpells {
		for _, spell := range spells {
			category := CategoryFor(spell.ActivationType)
			if category == CategoryOther {
				continue
			}
			opts.Add(category, spellLine(spell))
		}
	}

	for _, name := range GenericActions {
		opts.Add(CategoryAction, name)
	}
	for _, name := range GenericReactions {
		opts.Add(CategoryReaction, name)
	}

	return opts
}

func abilityLine(label string, ability ddb.Ability) string {
	line := fmt.Sprintf("%s: %s", label, ability.Name)
	if ability.MaxUses > 0 {
		line += fmt.Sprintf(" (Max: %d)", ability.MaxUses)
	}
	return line
}

func spellLine(spell ddb.Spell) string {
	if spell.Level == 0 {
		return spell.Name + " (Cantrip)"
	}
	return fmt.Sprintf("%s (Lvl %d)", spell.Name, spell.Level)
}
