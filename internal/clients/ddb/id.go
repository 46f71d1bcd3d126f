package ddb

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/combat-companion/internal/errors"
)

var (
	numericID  = regexp.MustCompile(`^\d+$`)
	profileURL = regexp.MustCompile(`dndbeyond\.com/(?:profile/[^/]+/)?characters/(\d+)`)
)

// ParseCharacterID accepts a bare numeric ID or a D&D Beyond character URL
// such as https://www.dndbeyond.com/characters/151075644/abc and returns the ID.
func ParseCharacterID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", errors.InvalidArgument("character ID is required")
	}
	if numericID.MatchString(s) {
		return s, nil
	}
	if m := profileURL.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	return "", errors.InvalidArgumentf("invalid character ID %q: expected digits or a character URL", s).
		WithMeta(MetaCharacterID, s)
}
