// Package statblock implements the stat-block rendering engine: parsing a
// fenced stat-block record, computing derived display values, deciding the
// ordered section layout, and materializing it onto a document surface.
package statblock

// Ability names in canonical presentation order. Iteration over the score
// struct must always go through this list, never over map keys.
var AbilityOrder = [6]string{
	"strength",
	"dexterity",
	"constitution",
	"intelligence",
	"wisdom",
	"charisma",
}

// AbilityScores holds the six raw ability values.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Score returns the value for a canonical ability name. Unknown names
// return 0; callers iterate AbilityOrder so this does not happen in practice.
func (a AbilityScores) Score(ability string) int {
	switch ability {
	case "strength":
		return a.Strength
	case "dexterity":
		return a.Dexterity
	case "constitution":
		return a.Constitution
	case "intelligence":
		return a.Intelligence
	case "wisdom":
		return a.Wisdom
	case "charisma":
		return a.Charisma
	}
	return 0
}

// SavingThrow is one proficient saving throw with its total modifier.
type SavingThrow struct {
	Ability  string `json:"ability"`
	Modifier int    `json:"modifier"`
}

// Skill is one proficient skill with its total modifier.
type Skill struct {
	Skill    string `json:"skill"`
	Modifier int    `json:"modifier"`
}

// Entry is one titled item in an ability or action list.
type Entry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StatBlock is a fully parsed creature record. Instances are built fresh by
// Parse for each render and never mutated afterwards. Optional string fields
// use "" for both "absent" and "explicitly empty"; the layout rules treat
// the two identically.
type StatBlock struct {
	Name string `json:"name"`

	Size         string `json:"size,omitempty"`
	CreatureType string `json:"creatureType,omitempty"`
	Alignment    string `json:"alignment,omitempty"`

	AC        int    `json:"ac"`
	HP        int    `json:"hp"`
	Speed     string `json:"speed"`
	Challenge string `json:"challenge"`

	AbilityScores AbilityScores `json:"abilityScores"`

	// Proficiency is optional; nil means the line is omitted entirely.
	Proficiency *int `json:"proficiency,omitempty"`

	SavingThrows []SavingThrow `json:"savingThrows"`
	Skills       []Skill       `json:"skills"`

	Vulnerabilities     string `json:"vulnerabilities,omitempty"`
	Resistances         string `json:"resistances,omitempty"`
	DamageImmunities    string `json:"damageImmunities,omitempty"`
	ConditionImmunities string `json:"conditionImmunities,omitempty"`

	Senses    string `json:"senses,omitempty"`
	Languages string `json:"languages,omitempty"`

	Abilities        []Entry `json:"abilities"`
	Actions          []Entry `json:"actions"`
	Reactions        []Entry `json:"reactions"`
	BonusActions     []Entry `json:"bonusActions"`
	LegendaryActions []Entry `json:"legendaryActions"`
	LairActions      []Entry `json:"lairActions"`
}
