package course

import "strings"

// parseFlashcards interprets the buffered lines of a flashcards section.
//
// Grammar: "Q:" begins a new card, "A:" begins its answer, and any other
// line continues whichever of the two is in progress, joined by a space.
// A card is emitted only when both question and answer are non-empty;
// incomplete trailing pairs are dropped.
func parseFlashcards(lines []string) []Flashcard {
	cards := make([]Flashcard, 0)

	var question, answer string
	answerStarted := false

	emit := func() {
		question = strings.TrimSpace(question)
		answer = strings.TrimSpace(answer)
		if question != "" && answer != "" {
			cards = append(cards, Flashcard{ID: newID(), Question: question, Answer: answer})
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Q:"):
			emit()
			question = strings.TrimSpace(line[len("Q:"):])
			answer = ""
			answerStarted = false
		case strings.HasPrefix(line, "A:"):
			answer = strings.TrimSpace(line[len("A:"):])
			answerStarted = true
		case answerStarted:
			answer += " " + line
		case question != "":
			question += " " + line
		}
	}
	emit()

	return cards
}
