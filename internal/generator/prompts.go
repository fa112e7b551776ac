package generator

import (
	"encoding/json"
	"fmt"

	"github.com/courseforge/courseforge/internal/course"
)

const generationSystemPrompt = `You are an expert instructional designer and content generator. Analyze the entire provided document and synthesize its information into a comprehensive set of learning materials.

Your output MUST be a single, complete, and valid JSON object. No exceptions.

Strict output formatting rules:
1. NO extraneous text: no introductory phrases, conversational filler, or concluding remarks outside the JSON object.
2. NO markdown fences: do not wrap the JSON object in code fences. The response must be directly parseable.
3. Syntactic correctness: proper quotation marks, commas, brackets, braces, and escaped characters. All arrays and objects must be properly closed.
4. Completeness: the response must not be truncated.

Adhere strictly to the following JSON structure:

{
  "courseTitle": "Example Course Title",
  "modules": [
    {
      "moduleTitle": "Module 1: Introduction",
      "notes": {
        "summary": "A 200-300 word summary of the module's core content.",
        "keywords": ["keyword1", "keyword2", "keyword3"]
      },
      "flashcards": [
        {"question": "What is a flashcard?", "answer": "A learning tool with a question and an answer."}
      ],
      "quiz": [
        {
          "question": "Which of the following is true?",
          "options": {"A": "Option A", "B": "Option B", "C": "Option C", "D": "Option D"},
          "correctAnswer": "A"
        }
      ]
    }
  ]
}

Structure modules logically based on the document's chapters or main sections. Provide 3-8 flashcards and 4-6 quiz questions per module, with plausible distractors.`

const summarizationPrompt = `You are an expert summarizer. Read the following text chunk, which is part of a larger document, and create a detailed, structured summary. Capture all essential information, key concepts, headings, and topics in the order they appear. The summary will be used by another system to generate a course, so it must be comprehensive. Do not omit any major topics, and preserve the structure of the original text as much as possible.

Here is the text chunk:
`

// generationPrompt builds the request for the first chunk of a source
// document.
func generationPrompt(chunk string) string {
	return fmt.Sprintf("Each response must be a complete and valid JSON object, even if it only covers a subset of the overall course content. The application merges the individual JSON responses into a single, unified course.\n\n%s", chunk)
}

// extensionPrompt builds the request for every chunk after the first,
// seeding the backend with the course JSON accumulated so far and asking
// it to integrate the new text.
func extensionPrompt(accumulated course.AIGeneratedCourse, chunk string) (string, error) {
	seed, err := json.MarshalIndent(accumulated, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent > %w", err)
	}
	return fmt.Sprintf(`Here is the current course JSON generated so far:

%s

Continue generating course content based on the following new text, and integrate it into the provided JSON structure. Only output the complete, updated JSON object. Do not include any introductory or concluding text.

%s`, seed, chunk), nil
}
