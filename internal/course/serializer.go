package course

import (
	"fmt"
	"strings"
)

// Serialize renders a Course into the canonical markdown form consumed by
// ParseText, so that parse(serialize(c)) reproduces c up to entity ids.
//
// Notes are emitted on the header line itself ("### notes - ..."); a notes
// string containing newlines will not survive a round trip intact. That is
// a known limitation of the format, not of this function.
func Serialize(c Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)

	for _, module := range c.Modules {
		fmt.Fprintf(&b, "## %s\n\n", module.Title)

		if module.Notes != "" {
			fmt.Fprintf(&b, "### notes - %s\n\n", module.Notes)
		}

		if len(module.Flashcards) > 0 {
			b.WriteString("### flashcards\n")
			for _, card := range module.Flashcards {
				fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", card.Question, card.Answer)
			}
		}

		if len(module.Quiz) > 0 {
			b.WriteString("### quiz\n")
			for _, q := range module.Quiz {
				fmt.Fprintf(&b, "Q: %s\n", q.Question)
				for i, option := range q.Options {
					fmt.Fprintf(&b, "%s) %s\n", IndexToLetter(i), option)
				}
				fmt.Fprintf(&b, "CORRECT: %s\n\n", IndexToLetter(q.CorrectAnswer))
			}
		}
	}

	return b.String()
}
