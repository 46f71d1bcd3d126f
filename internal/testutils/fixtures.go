package testutils

// CharacterID is the sample character used across tests
const CharacterID = "151075644"

// RogueCharacterJSON is a trimmed character service response wrapped in
// "data", the shape the live endpoint returns.
const RogueCharacterJSON = `{
  "id": 151075644,
  "success": true,
  "data": {
    "name": "Vex Shadowstep",
    "baseHitPoints": 38,
    "level": 5,
    "removedHitPoints": 12,
    "temporaryHitPoints": 4,
    "actions": {
      "race": [
        {"name": "Fey Step", "activation": {"activationType": 3}, "limitedUse": {"maxUses": 2}},
        {"name": "Darkvision", "activation": null}
      ],
      "class": [
        {"name": "Cunning Action", "activation": {"activationType": 3}},
        {"name": "Uncanny Dodge", "activation": {"activationType": 4}},
        {"name": "Sneak Attack", "activation": {"activationType": 0}}
      ],
      "feat": [
        {"name": "Lucky", "activation": {"activationType": 8}, "limitedUse": {"maxUses": 3}}
      ]
    },
    "inventory": [
      {"equipped": true, "definition": {"name": "Shortsword", "filterType": "Weapon", "properties": [{"name": "Finesse"}, {"name": "Light"}]}},
      {"equipped": true, "definition": {"name": "Light Crossbow", "filterType": "Weapon", "properties": [{"name": "Ammunition"}, {"name": "Loading"}]}},
      {"equipped": false, "definition": {"name": "Dagger", "filterType": "Weapon", "properties": [{"name": "Light"}]}},
      {"equipped": true, "definition": {"name": "Leather Armor", "filterType": "Armor", "properties": []}}
    ],
    "classSpells": [
      {"spells": [
        {"definition": {"name": "Minor Illusion", "level": 0, "activation": {"activationType": 1}}},
        {"definition": {"name": "Shield", "level": 1, "activation": {"activationType": 4}}},
        {"definition": {"name": "Find Familiar", "level": 1, "activation": {"activationType": 7}}}
      ]}
    ]
  }
}`

// MinimalCharacterJSON has only the required name
const MinimalCharacterJSON = `{"name": "Nobody"}`

// RogueActions is what the classifier produces for RogueCharacterJSON
var RogueActions = []string{
	"Attack: Shortsword",
	"Attack: Light Crossbow",
	"Minor Illusion (Cantrip)",
	"Dash", "Dodge", "Disengage", "Help", "Hide", "Search",
}

// RogueBonusActions is what the classifier produces for RogueCharacterJSON
var RogueBonusActions = []string{
	"Race: Fey Step (Max: 2)",
	"Class: Cunning Action",
	"Off-hand Attack: Shortsword",
}

// RogueReactions is what the classifier produces for RogueCharacterJSON
var RogueReactions = []string{
	"Class: Uncanny Dodge",
	"Shield (Lvl 1)",
	"Opportunity Attack",
}
