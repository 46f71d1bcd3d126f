package ddb

// Default values for optional numeric character fields
const (
	DefaultBaseHitPoints      = 100
	DefaultLevel              = 1
	DefaultRemovedHitPoints   = 0
	DefaultTemporaryHitPoints = 0
)

// FieldDefault binds one optional upstream field to its default and to the
// sheet field it fills.
type FieldDefault struct {
	Field   string
	Default int
	raw     func(*RawCharacter) **int
	sheet   func(*Sheet) *int
}

// FieldDefaults is the single table of optional-field defaults. It is applied
// once, in ToSheet, so nothing downstream looks up a default on its own.
var FieldDefaults = []FieldDefault{
	{
		Field:   "baseHitPoints",
		Default: DefaultBaseHitPoints,
		raw:     func(r *RawCharacter) **int { return &r.BaseHitPoints },
		sheet:   func(s *Sheet) *int { return &s.BaseHitPoints },
	},
	{
		Field:   "level",
		Default: DefaultLevel,
		raw:     func(r *RawCharacter) **int { return &r.Level },
		sheet:   func(s *Sheet) *int { return &s.Level },
	},
	{
		Field:   "removedHitPoints",
		Default: DefaultRemovedHitPoints,
		raw:     func(r *RawCharacter) **int { return &r.RemovedHitPoints },
		sheet:   func(s *Sheet) *int { return &s.RemovedHitPoints },
	},
	{
		Field:   "temporaryHitPoints",
		Default: DefaultTemporaryHitPoints,
		raw:     func(r *RawCharacter) **int { return &r.TemporaryHitPoints },
		sheet:   func(s *Sheet) *int { return &s.TemporaryHitPoints },
	},
}

// ClearFields resets every defaulted field for which keep reports false, so
// the default applies to it in ToSheet.
func (r *RawCharacter) ClearFields(keep func(field string) bool) {
	for _, fd := range FieldDefaults {
		if !keep(fd.Field) {
			*fd.raw(r) = nil
		}
	}
}

// ToSheet applies the defaults table and flattens the optional nested
// objects. It never fails: missing structure becomes zero values.
func (r *RawCharacter) ToSheet() Sheet {
	var s Sheet
	if r == nil {
		r = &RawCharacter{}
	}

	if r.Name != nil {
		s.Name = *r.Name
	}

	for _, fd := range FieldDefaults {
		target := fd.sheet(&s)
		if v := *fd.raw(r); v != nil {
			*target = *v
		} else {
			*target = fd.Default
		}
	}

	s.Abilities = make(map[string][]Ability, len(Sources))
	for _, source := range Sources {
		entries := r.Actions[source]
		if len(entries) == 0 {
			continue
		}
		abilities := make([]Ability, 0, len(entries))
		for _, e := range entries {
			abilities = append(abilities, Ability{
				Name:           e.Name,
				ActivationType: e.Activation.code(),
				MaxUses:        e.LimitedUse.maxUses(),
			})
		}
		s.Abilities[source] = abilities
	}

	s.Inventory = make([]Item, 0, len(r.Inventory))
	for _, entry := range r.Inventory {
		item := Item{Equipped: entry.Equipped}
		if def := entry.Definition; def != nil {
			item.Name = def.Name
			item.FilterType = def.FilterType
			for _, p := range def.Properties {
				item.Properties = append(item.Properties, p.Name)
			}
		}
		s.Inventory = append(s.Inventory, item)
	}

	s.ClassSpells = make([][]Spell, 0, len(r.ClassSpells))
	for _, list := range r.ClassSpells {
		spells := make([]Spell, 0, len(list.Spells))
		for _, entry := range list.Spells {
			if entry.Definition == nil {
				continue
			}
			spells = append(spells, Spell{
				Name:           entry.Definition.Name,
				Level:          entry.Definition.Level,
				ActivationType: entry.Definition.Activation.code(),
			})
		}
		s.ClassSpells = append(s.ClassSpells, spells)
	}

	return s
}

func (a *Activation) code() int {
	if a == nil || a.ActivationType == nil {
		return 0
	}
	return *a.ActivationType
}

func (l *LimitedUse) maxUses() int {
	if l == nil || l.MaxUses == nil {
		return 0
	}
	return *l.MaxUses
}
