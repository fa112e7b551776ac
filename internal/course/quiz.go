package course

import (
	"regexp"
	"strings"
)

// optionLinePattern matches option lines like "B) some text". The letter
// is decorative; options are positional in encounter order.
var optionLinePattern = regexp.MustCompile(`^[A-D]\)`)

// parseQuiz interprets the buffered lines of a quiz section.
//
// Grammar: "Q:" begins a question, "X)" lines append options in order,
// "CORRECT: X" records the correct answer letter. A question is emitted
// only when it has text, at least one option and a correct index;
// anything less is discarded silently.
func parseQuiz(lines []string) []QuizQuestion {
	questions := make([]QuizQuestion, 0)

	var question string
	var options []string
	correct := -1

	emit := func() {
		question = strings.TrimSpace(question)
		if question != "" && len(options) > 0 && correct >= 0 {
			questions = append(questions, QuizQuestion{
				ID:            newID(),
				Question:      question,
				Options:       options,
				CorrectAnswer: correct,
			})
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Q:"):
			emit()
			question = strings.TrimSpace(line[len("Q:"):])
			options = nil
			correct = -1
		case optionLinePattern.MatchString(line):
			options = append(options, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "CORRECT:"):
			correct = LetterToIndex(strings.TrimSpace(line[len("CORRECT:"):]))
		case question != "" && len(options) == 0:
			// Multi-line question text, before any option appears.
			question += " " + line
		}
	}
	emit()

	return questions
}
