package combat

import (
	"fmt"

	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
)

// Status is the coarse health label shown next to the HP bar
type Status string

// Health statuses
const (
	StatusHealthy       Status = "Healthy"
	StatusBloodied      Status = "Bloodied"
	StatusIncapacitated Status = "Incapacitated"
)

// Vitality holds the HUD hit point figures
type Vitality struct {
	MaxHP         int     `json:"max_hp"`
	DefaultMaxHP  int     `json:"default_max_hp"`
	CurrentHP     int     `json:"current_hp"`
	TemporaryHP   int     `json:"temporary_hp"`
	Fraction      float64 `json:"hp_fraction"`
	Status        Status  `json:"status"`
	MaxHPOverride bool    `json:"max_hp_override"`
}

// DefaultMaxHP is base hit points plus two per level
func DefaultMaxHP(sheet *ddb.Sheet) int {
	return sheet.BaseHitPoints + sheet.Level*2
}

// ComputeVitality derives the HUD figures. A non-nil maxOverride replaces
// the default max HP. Max HP below 1 is treated as 1 for the fraction.
func ComputeVitality(sheet *ddb.Sheet, maxOverride *int) Vitality {
	v := Vitality{
		DefaultMaxHP: DefaultMaxHP(sheet),
		TemporaryHP:  sheet.TemporaryHitPoints,
	}

	v.MaxHP = v.DefaultMaxHP
	if maxOverride != nil {
		v.MaxHP = *maxOverride
		v.MaxHPOverride = true
	}

	v.CurrentHP = v.MaxHP - sheet.RemovedHitPoints

	divisor := v.MaxHP
	if divisor < 1 {
		divisor = 1
	}
	v.Fraction = clamp(float64(v.CurrentHP)/float64(divisor), 0, 1)

	switch {
	case v.CurrentHP <= 0:
		v.Status = StatusIncapacitated
	case v.Fraction > 0.5:
		v.Status = StatusHealthy
	default:
		v.Status = StatusBloodied
	}

	return v
}

// HPLine renders "current / max"
func (v Vitality) HPLine() string {
	return fmt.Sprintf("%d / %d", v.CurrentHP, v.MaxHP)
}

// TempLine renders the temporary HP suffix, empty when there is none
func (v Vitality) TempLine() string {
	if v.TemporaryHP <= 0 {
		return ""
	}
	return fmt.Sprintf("(+ %d Temp)", v.TemporaryHP)
}

// Percent is the fraction as a whole percentage for progress bars
func (v Vitality) Percent() int {
	return int(v.Fraction*100 + 0.5)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
