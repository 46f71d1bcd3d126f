package combat

import "encoding/json"

// Options holds the display lines for each category. Field order matches
// the category display order so JSON output keeps the same key order.
type Options struct {
	Action      []string `json:"Action"`
	BonusAction []string `json:"Bonus Action"`
	Reaction    []string `json:"Reaction"`
	Other       []string `json:"Other"`
}

// NewOptions returns Options with every list present and empty
func NewOptions() *Options {
	return &Options{
		Action:      []string{},
		BonusAction: []string{},
		Reaction:    []string{},
		Other:       []string{},
	}
}

// Add appends a line to the list for the category
func (o *Options) Add(category Category, line string) {
	switch category {
	case CategoryAction:
		o.Action = append(o.Action, line)
	case CategoryBonusAction:
		o.BonusAction = append(o.BonusAction, line)
	case CategoryReaction:
		o.Reaction = append(o.Reaction, line)
	default:
		o.Other = append(o.Other, line)
	}
}

// Get returns the lines for the category
func (o *Options) Get(category Category) []string {
	switch category {
	case CategoryAction:
		return o.Action
	case CategoryBonusAction:
		return o.BonusAction
	case CategoryReaction:
		return o.Reaction
	default:
		return o.Other
	}
}

// MarshalJSON renders nil lists as [] so all four keys are always arrays
func (o Options) MarshalJSON() ([]byte, error) {
	type plain Options
	p := plain(o)
	for _, l := range []*[]string{&p.Action, &p.BonusAction, &p.Reaction, &p.Other} {
		if *l == nil {
			*l = []string{}
		}
	}
	return json.Marshal(p)
}

// JSON returns the indented JSON form used in prompts
func (o *Options) JSON() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		// Options only contains strings
		return "{}"
	}
	return string(b)
}
