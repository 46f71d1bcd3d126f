// Package ddb holds the character document shapes read from the D&D Beyond
// character service and the normalized sheet the rest of the service uses.
package ddb

// Ability sources in the upstream actions map, in classification order.
const (
	SourceRace  = "race"
	SourceClass = "class"
	SourceFeat  = "feat"
)

// Sources lists the ability sources in the order they are processed
var Sources = []string{SourceRace, SourceClass, SourceFeat}

// FilterTypeWeapon marks inventory definitions that are weapons
const FilterTypeWeapon = "Weapon"

// PropertyLight is the weapon property that allows an off-hand attack
const PropertyLight = "Light"

// RawCharacter is the upstream character object as decoded from JSON.
// Optional scalars are pointers so an omitted field can be told apart from
// an explicit zero until the defaults table is applied.
type RawCharacter struct {
	Name               *string                   `json:"name"`
	BaseHitPoints      *int                      `json:"baseHitPoints"`
	Level              *int                      `json:"level"`
	RemovedHitPoints   *int                      `json:"removedHitPoints"`
	TemporaryHitPoints *int                      `json:"temporaryHitPoints"`
	Actions            map[string][]AbilityEntry `json:"actions"`
	Inventory          []ItemEntry               `json:"inventory"`
	ClassSpells        []ClassSpellList          `json:"classSpells"`
}

// AbilityEntry is one racial, class or feat action
type AbilityEntry struct {
	Name       string      `json:"name"`
	Activation *Activation `json:"activation"`
	LimitedUse *LimitedUse `json:"limitedUse"`
}

// Activation carries the upstream activation type code
type Activation struct {
	ActivationType *int `json:"activationType"`
}

// LimitedUse describes how often an ability may be used
type LimitedUse struct {
	MaxUses *int `json:"maxUses"`
}

// ItemEntry is one inventory slot
type ItemEntry struct {
	Equipped   bool            `json:"equipped"`
	Definition *ItemDefinition `json:"definition"`
}

// ItemDefinition describes the item in an inventory slot
type ItemDefinition struct {
	Name       string         `json:"name"`
	FilterType string         `json:"filterType"`
	Properties []ItemProperty `json:"properties"`
}

// ItemProperty is a named weapon or armor property such as "Light"
type ItemProperty struct {
	Name string `json:"name"`
}

// ClassSpellList holds the spells granted by one class
type ClassSpellList struct {
	Spells []SpellEntry `json:"spells"`
}

// SpellEntry wraps a spell definition
type SpellEntry struct {
	Definition *SpellDefinition `json:"definition"`
}

// SpellDefinition describes a spell
type SpellDefinition struct {
	Name       string      `json:"name"`
	Level      int         `json:"level"`
	Activation *Activation `json:"activation"`
}

// Document is the normalized envelope: a single fully-defaulted sheet
type Document struct {
	Character Sheet `json:"character"`
}

// Sheet is the fully-defaulted character used for classification and the HUD.
// An ActivationType or MaxUses of zero means the upstream field was absent.
type Sheet struct {
	Name               string               `json:"name"`
	BaseHitPoints      int                  `json:"baseHitPoints"`
	Level              int                  `json:"level"`
	RemovedHitPoints   int                  `json:"removedHitPoints"`
	TemporaryHitPoints int                  `json:"temporaryHitPoints"`
	Abilities          map[string][]Ability `json:"abilities"`
	Inventory          []Item               `json:"inventory"`
	ClassSpells        [][]Spell            `json:"classSpells"`
}

// Ability is a normalized AbilityEntry
type Ability struct {
	Name           string `json:"name"`
	ActivationType int    `json:"activationType"`
	MaxUses        int    `json:"maxUses"`
}

// Item is a normalized ItemEntry
type Item struct {
	Name       string   `json:"name"`
	FilterType string   `json:"filterType"`
	Equipped   bool     `json:"equipped"`
	Properties []string `json:"properties"`
}

// IsEquippedWeapon reports whether the item takes part in weapon attacks
func (i Item) IsEquippedWeapon() bool {
	return i.Equipped && i.FilterType == FilterTypeWeapon
}

// HasProperty reports whether the item has the named property
func (i Item) HasProperty(name string) bool {
	for _, p := range i.Properties {
		if p == name {
			return true
		}
	}
	return false
}

// Spell is a normalized SpellEntry
type Spell struct {
	Name           string `json:"name"`
	Level          int    `json:"level"`
	ActivationType int    `json:"activationType"`
}
