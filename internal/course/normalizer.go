package course

import (
	"encoding/json"
	"sort"
)

// AIGeneratedCourse is the wire shape the generation backend is
// instructed to emit.
type AIGeneratedCourse struct {
	CourseTitle string              `json:"courseTitle"`
	Modules     []AIGeneratedModule `json:"modules"`
}

// AIGeneratedModule mirrors one module as produced by the backend:
// notes are an object, quiz options are a lettered mapping.
type AIGeneratedModule struct {
	ModuleTitle string        `json:"moduleTitle"`
	Notes       AINotes       `json:"notes"`
	Flashcards  []AIFlashcard `json:"flashcards"`
	Quiz        []AIQuizItem  `json:"quiz"`
}

// AINotes holds the generated module notes. Some backend variants emit a
// flat string instead of the {summary, keywords} object; both decode into
// this type.
type AINotes struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

func (n *AINotes) UnmarshalJSON(data []byte) error {
	var flat string
	if err := json.Unmarshal(data, &flat); err == nil {
		n.Summary = flat
		n.Keywords = nil
		return nil
	}

	type notesObject AINotes
	var obj notesObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*n = AINotes(obj)
	return nil
}

// AIFlashcard accepts both question/answer and front/back field names.
type AIFlashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Front    string `json:"front,omitempty"`
	Back     string `json:"back,omitempty"`
}

// AIQuizItem carries options as a lettered mapping and the correct answer
// as a letter.
type AIQuizItem struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
}

// Normalize reshapes a backend-generated course into the normalized
// Course form: notes flattened to the summary text (keywords are not
// surfaced downstream), lettered option mappings converted to positional
// lists, and the correct-answer letter converted to an index.
//
// Option keys are sorted before extraction so that A,B,C,D positions hold
// regardless of the mapping's original key order.
//
// Normalize only reshapes; it does not validate the input beyond what
// JSON decoding already enforced.
func Normalize(ai AIGeneratedCourse) Course {
	c := Course{
		Title:   ai.CourseTitle,
		Modules: make([]Module, 0, len(ai.Modules)),
	}

	for _, m := range ai.Modules {
		module := newModule(m.ModuleTitle)
		module.Notes = m.Notes.Summary

		for _, card := range m.Flashcards {
			question, answer := card.Question, card.Answer
			if question == "" && answer == "" {
				question, answer = card.Front, card.Back
			}
			module.Flashcards = append(module.Flashcards, Flashcard{
				ID:       newID(),
				Question: question,
				Answer:   answer,
			})
		}

		for _, item := range m.Quiz {
			letters := make([]string, 0, len(item.Options))
			for letter := range item.Options {
				letters = append(letters, letter)
			}
			sort.Strings(letters)

			options := make([]string, 0, len(letters))
			for _, letter := range letters {
				options = append(options, item.Options[letter])
			}

			module.Quiz = append(module.Quiz, QuizQuestion{
				ID:            newID(),
				Question:      item.Question,
				Options:       options,
				CorrectAnswer: LetterToIndex(item.CorrectAnswer),
			})
		}

		c.Modules = append(c.Modules, module)
	}

	return c
}
