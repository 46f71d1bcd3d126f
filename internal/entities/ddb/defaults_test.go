package ddb_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
)

func decode(t *testing.T, body string) *ddb.RawCharacter {
	t.Helper()
	var raw ddb.RawCharacter
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return &raw
}

func TestToSheet_AppliesDefaultsToAbsentFields(t *testing.T) {
	sheet := decode(t, `{"name":"Vex"}`).ToSheet()

	assert.Equal(t, "Vex", sheet.Name)
	assert.Equal(t, ddb.DefaultBaseHitPoints, sheet.BaseHitPoints)
	assert.Equal(t, ddb.DefaultLevel, sheet.Level)
	assert.Equal(t, ddb.DefaultRemovedHitPoints, sheet.RemovedHitPoints)
	assert.Equal(t, ddb.DefaultTemporaryHitPoints, sheet.TemporaryHitPoints)
	assert.NotNil(t, sheet.Abilities)
	assert.Empty(t, sheet.Inventory)
	assert.Empty(t, sheet.ClassSpells)
}

func TestToSheet_KeepsExplicitZero(t *testing.T) {
	sheet := decode(t, `{"name":"Vex","baseHitPoints":0,"level":0}`).ToSheet()

	assert.Equal(t, 0, sheet.BaseHitPoints)
	assert.Equal(t, 0, sheet.Level)
}

func TestClearFields_RestoresDefaults(t *testing.T) {
	raw := decode(t, `{"name":"Vex","baseHitPoints":38,"level":5}`)
	raw.ClearFields(func(field string) bool { return field != "level" })

	sheet := raw.ToSheet()
	assert.Equal(t, 38, sheet.BaseHitPoints)
	assert.Equal(t, ddb.DefaultLevel, sheet.Level)
}

func TestToSheet_NilRaw(t *testing.T) {
	var raw *ddb.RawCharacter
	sheet := raw.ToSheet()

	assert.Equal(t, 100, sheet.BaseHitPoints)
	assert.Equal(t, 1, sheet.Level)
}

func TestToSheet_FlattensNestedObjects(t *testing.T) {
	sheet := decode(t, `{
		"name": "Vex",
		"actions": {
			"race": [{"name":"Breath Weapon","activation":{"activationType":1},"limitedUse":{"maxUses":1}}],
			"class": [{"name":"Second Wind","activation":{"activationType":3}}],
			"feat": [{"name":"Lucky"}],
			"item": [{"name":"Ignored"}]
		},
		"inventory": [
			{"equipped": true, "definition": {"name":"Dagger","filterType":"Weapon","properties":[{"name":"Finesse"},{"name":"Light"}]}},
			{"equipped": false}
		],
		"classSpells": [
			{"spells": [{"definition":{"name":"Fire Bolt","level":0,"activation":{"activationType":1}}}, {}]}
		]
	}`).ToSheet()

	require.Len(t, sheet.Abilities[ddb.SourceRace], 1)
	assert.Equal(t, ddb.Ability{Name: "Breath Weapon", ActivationType: 1, MaxUses: 1}, sheet.Abilities[ddb.SourceRace][0])
	assert.Equal(t, ddb.Ability{Name: "Second Wind", ActivationType: 3}, sheet.Abilities[ddb.SourceClass][0])
	assert.Equal(t, ddb.Ability{Name: "Lucky"}, sheet.Abilities[ddb.SourceFeat][0])
	assert.NotContains(t, sheet.Abilities, "item")

	require.Len(t, sheet.Inventory, 2)
	assert.True(t, sheet.Inventory[0].IsEquippedWeapon())
	assert.True(t, sheet.Inventory[0].HasProperty(ddb.PropertyLight))
	assert.False(t, sheet.Inventory[1].IsEquippedWeapon())

	require.Len(t, sheet.ClassSpells, 1)
	require.Len(t, sheet.ClassSpells[0], 1)
	assert.Equal(t, ddb.Spell{Name: "Fire Bolt", Level: 0, ActivationType: 1}, sheet.ClassSpells[0][0])
}

func TestFieldDefaults_CoversOptionalFields(t *testing.T) {
	fields := map[string]int{}
	for _, fd := range ddb.FieldDefaults {
		fields[fd.Field] = fd.Default
	}

	assert.Equal(t, map[string]int{
		"baseHitPoints":      100,
		"level":              1,
		"removedHitPoints":   0,
		"temporaryHitPoints": 0,
	}, fields)
}
