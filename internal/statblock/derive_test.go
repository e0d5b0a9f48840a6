package statblock

import "testing"

func TestTypeAndAlignment(t *testing.T) {
	cases := []struct {
		name      string
		size      string
		ctype     string
		alignment string
		want      string
	}{
		{"all present", "medium", "humanoid", "chaotic good", "Medium Humanoid, Chaotic Good"},
		{"no alignment", "large", "beast", "", "Large Beast"},
		{"no size", "", "undead", "neutral evil", "Undead, Neutral Evil"},
		{"no type", "tiny", "", "unaligned", "Tiny, Unaligned"},
		{"alignment only", "", "", "lawful neutral", ", Lawful Neutral"},
		{"all absent", "", "", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &StatBlock{Size: c.size, CreatureType: c.ctype, Alignment: c.alignment}
			if got := TypeAndAlignment(b); got != c.want {
				t.Errorf("TypeAndAlignment = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAbilityCells_Order(t *testing.T) {
	scores := AbilityScores{
		Strength:     18,
		Dexterity:    14,
		Constitution: 12,
		Intelligence: 10,
		Wisdom:       8,
		Charisma:     7,
	}
	headers, values := AbilityCells(scores)

	wantHeaders := [6]string{"Str", "Dex", "Con", "Int", "Wis", "Cha"}
	if headers != wantHeaders {
		t.Errorf("headers = %v, want %v", headers, wantHeaders)
	}

	wantValues := [6]string{"18 (+4)", "14 (+2)", "12 (+1)", "10 (0)", "8 (-1)", "7 (-2)"}
	if values != wantValues {
		t.Errorf("values = %v, want %v", values, wantValues)
	}
}

func TestSkillsLine(t *testing.T) {
	skills := []Skill{
		{Skill: "Acrobatics", Modifier: 10},
		{Skill: "Persuasion", Modifier: -5},
	}
	want := "Acrobatics +10, Persuasion -5"
	if got := SkillsLine(skills); got != want {
		t.Errorf("SkillsLine = %q, want %q", got, want)
	}
	if got := SkillsLine(nil); got != "" {
		t.Errorf("SkillsLine(nil) = %q, want empty", got)
	}
}

func TestSavingThrowsLine(t *testing.T) {
	throws := []SavingThrow{{Ability: "dexterity", Modifier: 10}}
	want := "Dexterity +10"
	if got := SavingThrowsLine(throws); got != want {
		t.Errorf("SavingThrowsLine = %q, want %q", got, want)
	}
}
