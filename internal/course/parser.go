package course

import "strings"

// section identifies which part of a module is currently collecting
// content lines. Only one section is open at a time, and switching
// sections always finalizes the previous one first.
type section int

const (
	sectionNone section = iota
	sectionNotes
	sectionFlashcards
	sectionQuiz
)

func sectionFromName(name string) section {
	switch name {
	case "notes":
		return sectionNotes
	case "flashcards":
		return sectionFlashcards
	case "quiz":
		return sectionQuiz
	}
	return sectionNone
}

// headerTitle extracts the display title from a header payload.
// Payloads like "Course Title - The Essentials of X" keep only the text
// after the first " - ", supporting that authoring convention.
func headerTitle(payload string) string {
	if _, after, found := strings.Cut(payload, " - "); found {
		return after
	}
	return payload
}

func newModule(title string) Module {
	return Module{
		ID:         newID(),
		Title:      title,
		Flashcards: make([]Flashcard, 0),
		Quiz:       make([]QuizQuestion, 0),
	}
}

// ParseText converts the canonical markdown form into a Course.
//
// The parser is lenient by policy: malformed or incomplete flashcard and
// quiz entries are dropped rather than reported, so partial generator
// output still yields a usable course.
func ParseText(text string) Course {
	course := Course{Modules: make([]Module, 0)}

	var current *Module
	open := sectionNone
	var buffer []string

	finalize := func() {
		if current == nil || open == sectionNone || len(buffer) == 0 {
			return
		}
		switch open {
		case sectionNotes:
			current.Notes = strings.TrimSpace(strings.Join(buffer, "\n"))
		case sectionFlashcards:
			current.Flashcards = parseFlashcards(buffer)
		case sectionQuiz:
			current.Quiz = parseQuiz(buffer)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if payload, ok := strings.CutPrefix(line, "# "); ok {
			course.Title = headerTitle(payload)
			continue
		}

		if payload, ok := strings.CutPrefix(line, "## "); ok {
			if current != nil {
				finalize()
				course.Modules = append(course.Modules, *current)
			}
			module := newModule(headerTitle(payload))
			current = &module
			open = sectionNone
			buffer = nil
			continue
		}

		if payload, ok := strings.CutPrefix(line, "### "); ok {
			finalize()
			name, inline, found := strings.Cut(payload, " - ")
			if found {
				open = sectionFromName(strings.ToLower(name))
				buffer = nil
				if open != sectionNone {
					// Content may start on the header line itself,
					// e.g. "### notes - summary text".
					buffer = []string{inline}
				}
			} else {
				open = sectionFromName(strings.ToLower(payload))
				buffer = nil
			}
			continue
		}

		// Unmatched #-prefixed lines are structural noise, not content.
		if strings.HasPrefix(line, "#") {
			continue
		}
		if current != nil && open != sectionNone {
			buffer = append(buffer, line)
		}
	}

	if current != nil {
		finalize()
		course.Modules = append(course.Modules, *current)
	}

	return course
}
