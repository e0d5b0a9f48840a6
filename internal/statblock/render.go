package statblock

import "github.com/matthewbaird/dmtools/internal/doc"

// Render materializes the laid-out sections of a record into a document
// tree: one collapsible container (default open) holding the title line and
// every remaining section as a direct child, in layout order. The returned
// tree is the complete stat block; callers serialize or mount it as they
// see fit.
func Render(b *StatBlock) *doc.Node {
	root := doc.NewRoot("div", ClassRoot)
	inner := root.El("details", ClassInner).SetAttr("open", "")

	for _, section := range Layout(b) {
		renderSection(inner, section)
	}
	return root
}

func renderSection(parent *doc.Node, s Section) {
	switch s.Kind {
	case SectionTitle:
		parent.El("summary").Span().Div(ClassTitleHeader).SetText(s.Text)

	case SectionTypeLine:
		parent.Div(s.Class).SetText(s.Text)

	case SectionPairs:
		wrapper := parent.Div(s.Class, ClassSection)
		for _, p := range s.Pairs {
			titledText(wrapper, p.Class, p.Label, ClassEntryTitle, p.Value)
		}

	case SectionAbilityTable:
		table := parent.Div(s.Class).Div(ClassAbilityTable)
		for _, h := range s.Headers {
			table.Div(ClassTableHeaderCell).SetText(h)
		}
		for _, v := range s.Values {
			table.Div(ClassTableValueCell).SetText(v)
		}

	case SectionEntryList:
		wrapper := parent.Div(s.Class, ClassSection)
		if s.Header != "" {
			wrapper.Div(ClassSectionHeader).SetText(s.Header)
		}
		for _, e := range s.Entries {
			titledText(wrapper, ClassAbilityItem, e.Title, ClassSubentryTitle, e.Description)
		}
	}
}

// titledText appends the shared title+text pair shape: a wrapper div holding
// a styled title span and a plain span with the space-prefixed text. Primary
// lines and list entries differ only in the title class.
func titledText(parent *doc.Node, wrapperClass, title, titleClass, text string) {
	wrapper := parent.Div(wrapperClass)
	wrapper.Span(titleClass).SetText(title)
	wrapper.Span().SetText(" " + text)
}
