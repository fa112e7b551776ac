// Package cli implements the interactive terminal study session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/courseforge/courseforge/internal/course"
)

var errEnd = errors.New("end of study session")

// StudySession walks a course module by module: notes first, then
// flashcards with hidden answers, then the quiz with scored answers.
type StudySession struct {
	course       course.Course
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color

	correct int
	asked   int
}

func NewStudySession(c course.Course) *StudySession {
	return &StudySession{
		course:       c,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Run drives the session until the course is finished, the user quits
// with "q", or the context is cancelled.
func (s *StudySession) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

		err := s.session(ctx)
		if err != nil && !errors.Is(err, errEnd) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(s.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("session > %w", err)
		}
		s.printSummary()
	}
	return nil
}

func (s *StudySession) session(ctx context.Context) error {
	if _, err := s.bold.Fprintf(s.stdoutWriter, "%s\n\n", s.course.Title); err != nil {
		return err
	}

	for _, module := range s.course.Modules {
		select {
		case <-ctx.Done():
			return errEnd
		default:
		}

		if _, err := s.bold.Fprintf(s.stdoutWriter, "== %s ==\n", module.Title); err != nil {
			return err
		}
		if module.Notes != "" {
			if _, err := s.italic.Fprintf(s.stdoutWriter, "%s\n\n", module.Notes); err != nil {
				return err
			}
		}

		if err := s.runFlashcards(module.Flashcards); err != nil {
			return err
		}
		if err := s.runQuiz(module.Quiz); err != nil {
			return err
		}
	}
	return nil
}

func (s *StudySession) runFlashcards(cards []course.Flashcard) error {
	for _, card := range cards {
		fmt.Fprintf(s.stdoutWriter, "Q: %s\n", card.Question)
		fmt.Fprint(s.stdoutWriter, "Press enter to reveal the answer (q to quit): ")

		if _, err := s.readLine(); err != nil {
			return err
		}
		fmt.Fprintf(s.stdoutWriter, "A: %s\n\n", card.Answer)
	}
	return nil
}

func (s *StudySession) runQuiz(questions []course.QuizQuestion) error {
	for _, question := range questions {
		fmt.Fprintf(s.stdoutWriter, "%s\n", question.Question)
		for i, option := range question.Options {
			fmt.Fprintf(s.stdoutWriter, "  %s) %s\n", course.IndexToLetter(i), option)
		}
		fmt.Fprint(s.stdoutWriter, "Your answer (q to quit): ")

		input, err := s.readLine()
		if err != nil {
			return err
		}

		s.asked++
		answer := course.LetterToIndex(strings.ToUpper(input))
		if answer == question.CorrectAnswer {
			s.correct++
			color.Green("Correct!")
		} else {
			color.Red("Wrong. The correct answer is %s.", course.IndexToLetter(question.CorrectAnswer))
		}
		fmt.Fprintln(s.stdoutWriter)
	}
	return nil
}

// readLine reads one trimmed input line, mapping "q" to the session-end
// sentinel.
func (s *StudySession) readLine() (string, error) {
	line, err := s.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("stdinReader.ReadString > %w", err)
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return "", errEnd
	}
	return line, nil
}

func (s *StudySession) printSummary() {
	if s.asked == 0 {
		return
	}
	fmt.Fprintf(s.stdoutWriter, "Quiz score: %d/%d\n", s.correct, s.asked)
}
