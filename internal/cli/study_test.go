package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/course"
)

func testCourse() course.Course {
	return course.Course{
		Title: "Intro to Go",
		Modules: []course.Module{
			{
				Title: "Basics",
				Notes: "Variables and types.",
				Flashcards: []course.Flashcard{
					{Question: "What declares a variable?", Answer: "var or :="},
				},
				Quiz: []course.QuizQuestion{
					{
						Question:      "Which keyword starts a function?",
						Options:       []string{"func", "def", "fn", "function"},
						CorrectAnswer: 0,
					},
					{
						Question:      "Which type holds text?",
						Options:       []string{"int", "string"},
						CorrectAnswer: 1,
					},
				},
			},
		},
	}
}

func newTestSession(input string) (*StudySession, *bytes.Buffer) {
	var out bytes.Buffer
	session := NewStudySession(testCourse())
	session.stdinReader = bufio.NewReader(strings.NewReader(input))
	session.stdoutWriter = &out
	return session, &out
}

func TestStudySession_FullRun(t *testing.T) {
	// Enter through the flashcard, answer A (correct) then A (wrong).
	session, out := newTestSession("\na\na\n")

	err := session.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Intro to Go")
	assert.Contains(t, output, "== Basics ==")
	assert.Contains(t, output, "Variables and types.")
	assert.Contains(t, output, "Q: What declares a variable?")
	assert.Contains(t, output, "A: var or :=")
	assert.Contains(t, output, "Which keyword starts a function?")
	assert.Contains(t, output, "  A) func")
	assert.Contains(t, output, "Quiz score: 1/2")
}

func TestStudySession_QuitEarly(t *testing.T) {
	session, out := newTestSession("q\n")

	err := session.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Q: What declares a variable?")
	// The quiz was never reached, so no score is reported.
	assert.NotContains(t, output, "Quiz score")
}

func TestStudySession_EOFEndsSession(t *testing.T) {
	session, _ := newTestSession("")

	err := session.Run(context.Background())
	assert.NoError(t, err)
}
