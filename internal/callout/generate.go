package callout

import "strings"

// Generate produces the editable callout template for a kind: the opening
// annotation line, one ">**Field** : " line per field (or a single bare
// continuation line when the kind has none), then one blank second-level
// heading per configured sub-header.
func Generate(k Kind) string {
	var sb strings.Builder
	sb.WriteString(">[!" + k.Name + "]")

	if len(k.Fields) > 0 {
		for _, field := range k.Fields {
			sb.WriteString("\n>**" + field + "** : ")
		}
	} else {
		sb.WriteString("\n>")
	}

	for _, header := range k.Headers {
		sb.WriteString("\n## " + header + "\n")
	}

	return sb.String()
}
