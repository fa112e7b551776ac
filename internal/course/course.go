// Package course defines the normalized course data model and the
// conversions between its canonical text form and the JSON shape returned
// by the generation backend.
package course

import "github.com/google/uuid"

// Course is a parsed course document: a title plus ordered modules.
type Course struct {
	Title   string   `json:"title"`
	Modules []Module `json:"modules"`
}

// Module is one content unit of a course.
type Module struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Notes      string         `json:"notes"`
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
}

// Flashcard is a question/answer study pair.
type Flashcard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizQuestion is a multiple-choice item. Options are positional; the
// letters A-D in the text form are decorative labels for positions 0-3.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// ids are random and carry no semantic meaning. Re-parsing identical text
// yields different ids.
func newID() string {
	return uuid.NewString()
}

// LetterToIndex maps an option letter to its zero-based position
// ("A" -> 0, "B" -> 1). Returns -1 for an empty string.
func LetterToIndex(letter string) int {
	if letter == "" {
		return -1
	}
	return int(letter[0]) - 'A'
}

// IndexToLetter is the inverse of LetterToIndex.
func IndexToLetter(index int) string {
	return string(rune('A' + index))
}
