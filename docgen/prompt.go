package docgen

import (
	"fmt"
	"strings"
)

// promptInstructions is the fixed instruction template sent with every
// file.
const promptInstructions = `Write markdown documentation for the source file below. Cover:
- Purpose: what the file does and why it exists
- Key functions, classes, and types
- Inputs and outputs
- Dependencies
- Notes and warnings for maintainers`

// BuildPrompt builds the generation prompt for a single source file:
// the instruction template followed by the file's relative path and its
// full content verbatim.
func BuildPrompt(path, content string) string {
	var sb strings.Builder
	sb.WriteString(promptInstructions)
	sb.WriteString("\n\n<file>\n")
	fmt.Fprintf(&sb, "<path>%s</path>\n", path)
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</file>")
	return sb.String()
}
