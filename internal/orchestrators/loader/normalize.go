package loader

import (
	"encoding/json"
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
	"github.com/KirkDiggler/combat-companion/internal/errors"
)

// Normalize unwraps a character service body or uploaded file into a
// fully-defaulted document:
//
//   - a top-level "data" member is the payload, otherwise the whole body is
//   - a payload with a "character" member is already an envelope, otherwise
//     the payload itself is the character
//   - optional numeric fields take their defaults from ddb.FieldDefaults
//
// Values of the wrong JSON type are treated as absent. Only unparseable
// JSON or a missing name is an error.
func Normalize(body []byte) (*ddb.Document, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.InvalidArgument("character document is not valid JSON")
	}

	payload := gjson.ParseBytes(body)
	if data := payload.Get("data"); data.Exists() {
		payload = data
	}
	if !payload.IsObject() {
		return nil, errors.InvalidArgument("character document must be a JSON object")
	}

	character := payload
	if c := payload.Get("character"); c.Exists() {
		character = c
	}
	if !character.IsObject() {
		return nil, errors.InvalidArgument(`"character" must be a JSON object`)
	}

	var raw ddb.RawCharacter
	if err := json.Unmarshal([]byte(character.Raw), &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !stderrors.As(err, &typeErr) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode character")
		}
		// a mistyped pointer field is still allocated, holding zero
		raw.ClearFields(func(field string) bool {
			v := character.Get(field)
			if v.Type != gjson.Number {
				return false
			}
			_, err := strconv.Atoi(v.Raw)
			return err == nil
		})
	}

	if raw.Name == nil || strings.TrimSpace(*raw.Name) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	return &ddb.Document{Character: raw.ToSheet()}, nil
}
