package statblock

import (
	"strconv"
	"strings"
)

// TypeAndAlignment builds the descriptive line under the title:
// "<size> <type>, <alignment>", title-cased. Size and type join with a
// single space and trim away if either is missing; the alignment clause is
// appended only when present. All three absent yields "".
func TypeAndAlignment(b *StatBlock) string {
	sizeAndType := strings.TrimSpace(b.Size + " " + b.CreatureType)
	components := []string{sizeAndType}
	if b.Alignment != "" {
		components = append(components, b.Alignment)
	}
	return TitleCase(strings.Join(components, ", "))
}

// AbilityCells produces the twelve cells of the ability-score table:
// first the six header cells (three-letter ability abbreviations, title
// case), then the six value cells ("<score> (<modifier>)"). Headers and
// values are separate passes over AbilityOrder so an external two-row grid
// lays out correctly. The all-headers-before-all-values ordering is part
// of the output contract.
func AbilityCells(scores AbilityScores) (headers, values [6]string) {
	for i, ability := range AbilityOrder {
		headers[i] = TitleCase(ability[:3])
	}
	for i, ability := range AbilityOrder {
		score := scores.Score(ability)
		values[i] = strconv.Itoa(score) + AbilityModifier(score)
	}
	return headers, values
}

// modifierList renders "Name +N" pairs joined with ", ", the shared shape
// of the Skills and Saving Throws lines.
func modifierList(names []string, mods []int) string {
	parts := make([]string, len(names))
	for i := range names {
		parts[i] = TitleCase(names[i]) + " " + FormatModifier(mods[i])
	}
	return strings.Join(parts, ", ")
}

// SkillsLine renders the Skills value, "" when no skills are listed.
func SkillsLine(skills []Skill) string {
	names := make([]string, len(skills))
	mods := make([]int, len(skills))
	for i, s := range skills {
		names[i] = s.Skill
		mods[i] = s.Modifier
	}
	return modifierList(names, mods)
}

// SavingThrowsLine renders the Saving Throws value, "" when empty.
func SavingThrowsLine(throws []SavingThrow) string {
	names := make([]string, len(throws))
	mods := make([]int, len(throws))
	for i, st := range throws {
		names[i] = st.Ability
		mods[i] = st.Modifier
	}
	return modifierList(names, mods)
}
