package vault

import "strings"

// FenceTag is the fence language tag that marks a stat-block record.
const FenceTag = "statblock"

// Fence is one fenced stat-block occurrence in a note.
type Fence struct {
	Source string // the JSON body between the fence lines
	Line   int    // 0-based line of the opening fence
}

// Fences extracts every ```statblock fence from a note body. An unclosed
// fence runs to the end of the note. Fences with other language tags are
// ignored.
func Fences(src string) []Fence {
	var fences []Fence
	lines := strings.Split(src, "\n")

	for i := 0; i < len(lines); i++ {
		tag := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), "```"))
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") || tag != FenceTag {
			continue
		}
		start := i
		var body []string
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "```" {
				break
			}
			body = append(body, lines[i])
		}
		fences = append(fences, Fence{
			Source: strings.Join(body, "\n"),
			Line:   start,
		})
	}
	return fences
}
