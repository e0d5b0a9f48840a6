// Package callout holds the entity-note kind definitions and generates the
// fill-in callout templates inserted into notes.
//
// The registry is populated at init time from the compiled-in definitions
// below and is read-only afterwards, so it is safe for concurrent access.
package callout

import "github.com/matthewbaird/dmtools/internal/statblock"

// Kind describes one entity-note category: its callout tag, the labeled
// fields of the template, and the second-level section headers that follow.
type Kind struct {
	Name    string   // callout tag, e.g. "business"
	Fields  []string // ordered field labels, may be empty
	Headers []string // ordered sub-headers, may be empty
}

// CommandID returns the stable command identifier for inserting this kind.
func (k Kind) CommandID() string {
	return "add-" + k.Name + "-block"
}

// CommandName returns the human-readable command name.
func (k Kind) CommandName() string {
	return "Add " + statblock.TitleCase(k.Name) + " Block"
}

// Registry holds kind definitions in registration order.
type Registry struct {
	kinds map[string]Kind
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds a kind definition.
func (r *Registry) Register(k Kind) {
	r.kinds[k.Name] = k
	r.order = append(r.order, k.Name)
}

// Kind returns the definition for a named kind.
func (r *Registry) Kind(name string) (Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Names returns all kind names in registration order.
func (r *Registry) Names() []string {
	return r.order
}

// defaultRegistry holds the twelve compiled-in kinds.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry of compiled-in kinds.
func Default() *Registry {
	return defaultRegistry
}

func init() {
	for _, k := range []Kind{
		{
			Name: "readout",
		},
		{
			Name: "person",
			Fields: []string{
				"Species", "Gender", "Alignment", "Married To", "Parent Of",
				"Child Of", "Sibling Of", "Lives In", "Originally From",
				"Member Of", "Leader Of", "Owner Of", "Worships",
				"Created Items", "Associated With",
			},
		},
		{
			Name:   "building",
			Fields: []string{"Residents", "Owner", "Located In"},
		},
		{
			Name:    "business",
			Fields:  []string{"Owner", "Located In", "Type"},
			Headers: []string{"Inventory"},
		},
		{
			Name:    "creature",
			Fields:  []string{"Found In"},
			Headers: []string{"Stat Block"},
		},
		{
			Name: "god",
			Fields: []string{
				"Pantheon", "Worshipped By", "Domain/Aspect", "Also Known As",
				"Relatives",
			},
		},
		{
			Name: "item",
			Fields: []string{
				"Owned By", "Created By", "Associated With", "Cost", "Rarity",
				"Type",
			},
		},
		{
			Name:   "landmark",
			Fields: []string{"Owner", "Residents", "Located In"},
		},
		{
			Name: "organisation",
			Fields: []string{
				"Based In", "Has Prescence In", "Members", "Type", "Worships",
				"Allies", "Enemies", "Leader",
			},
		},
		{
			Name:    "quest",
			Fields:  []string{"Prerequisites", "Required For"},
			Headers: []string{"Premise", "Hooks", "Description", "NPCs", "Rewards"},
		},
		{
			Name:   "settlement",
			Fields: []string{"Residents", "Based Here", "Ruled By", "Located In"},
			Headers: []string{
				"Description", "Points of Interest", "Shops and Businesses",
				"Specialities", "Inns", "Quests",
			},
		},
		{
			Name: "region",
			Fields: []string{
				"Residents", "Based Here", "Ruled By", "Located In", "Contains",
			},
			Headers: []string{
				"Description", "Points of Interest", "Settlements",
				"Specialities", "Quests",
			},
		},
	} {
		defaultRegistry.Register(k)
	}
}
