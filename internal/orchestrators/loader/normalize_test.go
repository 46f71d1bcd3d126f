package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/loader"
	"github.com/KirkDiggler/combat-companion/internal/testutils"
)

func TestNormalize_Shapes(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "bare character", body: `{"name":"Vex","level":3}`},
		{name: "data wrapper", body: `{"data":{"name":"Vex","level":3}}`},
		{name: "envelope", body: `{"character":{"name":"Vex","level":3}}`},
		{name: "data wrapping envelope", body: `{"data":{"character":{"name":"Vex","level":3}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := loader.Normalize([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, "Vex", doc.Character.Name)
			assert.Equal(t, 3, doc.Character.Level)
			assert.Equal(t, 100, doc.Character.BaseHitPoints)
		})
	}
}

func TestNormalize_Fixture(t *testing.T) {
	doc, err := loader.Normalize([]byte(testutils.RogueCharacterJSON))
	require.NoError(t, err)

	sheet := doc.Character
	assert.Equal(t, "Vex Shadowstep", sheet.Name)
	assert.Equal(t, 38, sheet.BaseHitPoints)
	assert.Equal(t, 5, sheet.Level)
	assert.Equal(t, 12, sheet.RemovedHitPoints)
	assert.Equal(t, 4, sheet.TemporaryHitPoints)
	assert.Len(t, sheet.Inventory, 4)
}

func TestNormalize_WrongTypesFallBackToDefaults(t *testing.T) {
	doc, err := loader.Normalize([]byte(`{"name":"Vex","level":"five","baseHitPoints":20}`))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Character.Level)
	assert.Equal(t, 20, doc.Character.BaseHitPoints)
}

func TestNormalize_MistypedFieldsUseDefaults(t *testing.T) {
	doc, err := loader.Normalize([]byte(`{"name":"Vex","baseHitPoints":"38","level":"5","removedHitPoints":true,"temporaryHitPoints":2.5}`))
	require.NoError(t, err)

	sheet := doc.Character
	assert.Equal(t, 100, sheet.BaseHitPoints)
	assert.Equal(t, 1, sheet.Level)
	assert.Equal(t, 0, sheet.RemovedHitPoints)
	assert.Equal(t, 0, sheet.TemporaryHitPoints)
}

func TestNormalize_ExponentNumberUsesDefault(t *testing.T) {
	doc, err := loader.Normalize([]byte(`{"name":"Vex","level":1e1,"baseHitPoints":40}`))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Character.Level)
	assert.Equal(t, 40, doc.Character.BaseHitPoints)
}

func TestNormalize_MistypedFieldKeepsWellTypedNeighbours(t *testing.T) {
	doc, err := loader.Normalize([]byte(`{"name":"Vex","level":"5","removedHitPoints":7,"actions":{"class":[{"name":"Cunning Action","activation":{"activationType":"3"},"limitedUse":{"maxUses":"2"}}]}}`))
	require.NoError(t, err)

	sheet := doc.Character
	assert.Equal(t, 1, sheet.Level)
	assert.Equal(t, 7, sheet.RemovedHitPoints)
	require.Len(t, sheet.Abilities["class"], 1)
	assert.Equal(t, "Cunning Action", sheet.Abilities["class"][0].Name)
	assert.Zero(t, sheet.Abilities["class"][0].ActivationType)
	assert.Zero(t, sheet.Abilities["class"][0].MaxUses)
}

func TestNormalize_Errors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"name":`},
		{name: "array", body: `[{"name":"Vex"}]`},
		{name: "null data", body: `{"data":null}`},
		{name: "character not object", body: `{"character":"Vex"}`},
		{name: "missing name", body: `{"level":2}`},
		{name: "blank name", body: `{"character":{"name":"  "}}`},
		{name: "empty body", body: ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := loader.Normalize([]byte(tc.body))
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.False(t, errors.IsFetchError(err))
		})
	}
}
