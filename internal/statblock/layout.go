package statblock

import (
	"strconv"
	"strings"
)

// CSS classes of the rendered stat block. The stylesheet targets these
// names, so they are part of the output contract.
const (
	ClassRoot        = "dm-tools-statblock"
	ClassInner       = "dm-tools-statblock-inner"
	ClassTitleHeader = "dm-tools-statblock-title-header"
	ClassTypeLine    = "dm-tools-statblock-type-alignment"
	ClassSection     = "dm-tools-statblock-section"

	ClassKeyStats       = "dm-tools-statblock-keystats"
	ClassSecondaryStats = "dm-tools-statblock-secondarystats"

	ClassAbilityScores   = "dm-tools-statblock-abilityscores"
	ClassAbilityTable    = "dm-tools-statblock-abilityscores-table"
	ClassTableHeaderCell = "dm-tools-statblock-abilityscores-table-header-cell"
	ClassTableValueCell  = "dm-tools-statblock-abilityscores-table-value-cell"

	ClassSectionHeader = "dm-tools-statblock-ability-section-header"
	ClassAbilityItem   = "dm-tools-statblock-ability-item"
	ClassEntryTitle    = "dm-tools-statblock-entry-title"
	ClassSubentryTitle = "dm-tools-statblock-subentry-title"
)

// SectionKind discriminates the section shapes a layout can produce.
type SectionKind int

const (
	// SectionTitle is the creature name line.
	SectionTitle SectionKind = iota
	// SectionTypeLine is the size/type/alignment descriptive line.
	SectionTypeLine
	// SectionPairs is a block of labeled "Label value" lines.
	SectionPairs
	// SectionAbilityTable is the six-column ability-score grid.
	SectionAbilityTable
	// SectionEntryList is a titled-entry list (abilities, actions, ...).
	SectionEntryList
)

// Pair is one labeled line inside a SectionPairs block.
type Pair struct {
	Class string // per-line CSS class
	Label string
	Value string
}

// Section is one laid-out block of the rendered stat block. Which fields are
// meaningful depends on Kind.
type Section struct {
	Kind  SectionKind
	Class string // wrapper class (unset for title and type line)

	Text string // SectionTitle, SectionTypeLine

	Pairs []Pair // SectionPairs

	Headers [6]string // SectionAbilityTable
	Values  [6]string

	Header  string  // SectionEntryList; "" renders no header row
	Entries []Entry // entries with empty descriptions already dropped
}

// Layout applies the section rules to a parsed record and returns the
// ordered, filtered sections. It is pure: no I/O, no state, and the same
// record always yields the same slice.
func Layout(b *StatBlock) []Section {
	sections := []Section{
		{Kind: SectionTitle, Text: b.Name},
		{Kind: SectionTypeLine, Class: ClassTypeLine, Text: TypeAndAlignment(b)},
	}

	keyStats := []Pair{
		{Class: ClassKeyStats + "-ac", Label: "Armor Class", Value: strconv.Itoa(b.AC)},
		{Class: ClassKeyStats + "-hp", Label: "Hit Points", Value: strconv.Itoa(b.HP)},
		{Class: ClassKeyStats + "-speed", Label: "Speed", Value: b.Speed},
		{Class: ClassKeyStats + "-challenge", Label: "Challenge", Value: b.Challenge},
	}
	if b.Proficiency != nil {
		keyStats = append(keyStats, Pair{
			Class: ClassKeyStats + "-proficiency",
			Label: "Proficiency",
			Value: FormatModifier(*b.Proficiency),
		})
	}
	sections = append(sections, Section{Kind: SectionPairs, Class: ClassKeyStats, Pairs: keyStats})

	table := Section{Kind: SectionAbilityTable, Class: ClassAbilityScores}
	table.Headers, table.Values = AbilityCells(b.AbilityScores)
	sections = append(sections, table)

	secondary := Section{Kind: SectionPairs, Class: ClassSecondaryStats}
	addPair := func(class, label, value string) {
		if value == "" {
			return
		}
		secondary.Pairs = append(secondary.Pairs, Pair{Class: ClassSecondaryStats + "-" + class, Label: label, Value: value})
	}
	addPair("skills", "Skills", SkillsLine(b.Skills))
	addPair("savingthrows", "Saving Throws", SavingThrowsLine(b.SavingThrows))
	addPair("vulns", "Vulnerabilities", b.Vulnerabilities)
	addPair("resistances", "Resistances", b.Resistances)
	addPair("damage-immunities", "Damage Immunities", b.DamageImmunities)
	addPair("condition-immunities", "Condition Immunities", b.ConditionImmunities)
	addPair("senses", "Senses", b.Senses)
	addPair("languages", "Languages", b.Languages)
	sections = append(sections, secondary)

	entryLists := []struct {
		class   string
		header  string
		entries []Entry
	}{
		{"dm-tools-statblock-abilities", "", b.Abilities},
		{"dm-tools-statblock-actions", "Actions", b.Actions},
		{"dm-tools-statblock-reactions", "Reactions", b.Reactions},
		{"dm-tools-statblock-bonusactions", "Bonus Actions", b.BonusActions},
		{"dm-tools-statblock-legendaryactions", "Legendary Actions", b.LegendaryActions},
		{"dm-tools-statblock-lairactions", "Lair Actions", b.LairActions},
	}
	for _, el := range entryLists {
		// Section presence is governed by the raw list, not by how many
		// entries survive the description filter: a list of entries with
		// empty descriptions still emits its header.
		if len(el.entries) == 0 {
			continue
		}
		sections = append(sections, Section{
			Kind:    SectionEntryList,
			Class:   el.class,
			Header:  strings.ToUpper(el.header),
			Entries: visibleEntries(el.entries),
		})
	}

	return sections
}

// visibleEntries drops entries whose description is empty.
func visibleEntries(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Description == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
