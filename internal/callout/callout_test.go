package callout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AllKindsRegistered(t *testing.T) {
	want := []string{
		"readout", "person", "building", "business", "creature", "god",
		"item", "landmark", "organisation", "quest", "settlement", "region",
	}
	assert.Equal(t, want, Default().Names())
}

func TestKind_Lookup(t *testing.T) {
	k, ok := Default().Kind("business")
	require.True(t, ok)
	assert.Equal(t, []string{"Owner", "Located In", "Type"}, k.Fields)
	assert.Equal(t, []string{"Inventory"}, k.Headers)

	_, ok = Default().Kind("tavern")
	assert.False(t, ok)
}

func TestKind_Commands(t *testing.T) {
	k, _ := Default().Kind("quest")
	assert.Equal(t, "add-quest-block", k.CommandID())
	assert.Equal(t, "Add Quest Block", k.CommandName())
}

func TestGenerate_Business(t *testing.T) {
	k, _ := Default().Kind("business")
	got := Generate(k)

	want := ">[!business]\n" +
		">**Owner** : \n" +
		">**Located In** : \n" +
		">**Type** : \n" +
		"## Inventory\n"
	assert.Equal(t, want, got)
}

func TestGenerate_NoFields(t *testing.T) {
	k, _ := Default().Kind("readout")
	assert.Equal(t, ">[!readout]\n>", Generate(k))
}

func TestGenerate_MultipleHeaders(t *testing.T) {
	k, _ := Default().Kind("quest")
	got := Generate(k)

	assert.True(t, strings.HasPrefix(got, ">[!quest]\n>**Prerequisites** : \n>**Required For** : \n"))
	for _, header := range []string{"Premise", "Hooks", "Description", "NPCs", "Rewards"} {
		assert.Contains(t, got, "\n## "+header+"\n")
	}
}
