package statblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Sample(t *testing.T) {
	b, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Example Creature", b.Name)
	assert.Equal(t, "medium", b.Size)
	assert.Equal(t, "humanoid", b.CreatureType)
	assert.Equal(t, "chaotic good", b.Alignment)
	assert.Equal(t, 10, b.AC)
	assert.Equal(t, 10, b.HP)
	assert.Equal(t, "30 ft., fly 40 ft.", b.Speed)
	assert.Equal(t, "1/4", b.Challenge)
	require.NotNil(t, b.Proficiency)
	assert.Equal(t, 3, *b.Proficiency)
	assert.Equal(t, 10, b.AbilityScores.Charisma)
	require.Len(t, b.Skills, 2)
	assert.Equal(t, -5, b.Skills[1].Modifier)
	require.Len(t, b.SavingThrows, 1)
	assert.Equal(t, "Dexterity", b.SavingThrows[0].Ability)
	assert.Len(t, b.Actions, 1)
	assert.Len(t, b.LairActions, 1)
}

func TestParse_MinimalRecord(t *testing.T) {
	src := `{
		"name": "Rat",
		"ac": 10,
		"hp": 1,
		"speed": "20 ft.",
		"challenge": "0",
		"abilityScores": {
			"strength": 2, "dexterity": 11, "constitution": 9,
			"intelligence": 2, "wisdom": 10, "charisma": 4
		}
	}`
	b, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, "Rat", b.Name)
	assert.Equal(t, "", b.Size)
	assert.Nil(t, b.Proficiency)
	assert.Empty(t, b.Skills)
	assert.Empty(t, b.SavingThrows)
	assert.Empty(t, b.Abilities)
	assert.Empty(t, b.LairActions)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name": "Broken"`))
	require.Error(t, err)
}

func TestParse_MissingRequiredField(t *testing.T) {
	src := strings.Replace(sampleJSON, `"name": "Example Creature",`, "", 1)
	_, err := Parse([]byte(src))
	require.Error(t, err)
}

func TestParse_MissingAbilityScore(t *testing.T) {
	src := strings.Replace(sampleJSON, `"charisma": 10`, `"charisma": 10, "luck": 10`, 1)
	_, err := Parse([]byte(src))
	require.Error(t, err, "unknown ability score keys must be rejected")

	src = strings.Replace(sampleJSON, `"charisma": 10`, "", 1)
	src = strings.Replace(src, `"wisdom": 10,`, `"wisdom": 10`, 1)
	_, err = Parse([]byte(src))
	require.Error(t, err, "a missing ability score must be rejected")
}

func TestParse_WrongType(t *testing.T) {
	src := strings.Replace(sampleJSON, `"ac": 10`, `"ac": "ten"`, 1)
	_, err := Parse([]byte(src))
	require.Error(t, err)
}

func TestParse_UnknownTopLevelField(t *testing.T) {
	src := strings.Replace(sampleJSON, `"name": "Example Creature",`, `"name": "Example Creature", "initiative": 4,`, 1)
	_, err := Parse([]byte(src))
	require.Error(t, err)
}
