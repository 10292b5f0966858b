package services

import (
	"fmt"
	"strings"

	"psle-tutor-backend/db/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildQuizPrompt renders the tutor prompt for one MCQ generation request.
func BuildQuizPrompt(topic models.Topic, difficulty models.Difficulty) string {
	return fmt.Sprintf(`You are a PSLE Science tutor creating a multiple-choice question for Singapore Primary School students.

Topic: %s
Difficulty Level: %s

Create a PSLE Science multiple-choice question with exactly 4 options (A, B, C, D).
The question should be appropriate for Primary 5-6 students in Singapore.

Respond in JSON format only:
{
    "question": "The question text here",
    "options": {
        "A": "Option A text",
        "B": "Option B text",
        "C": "Option C text",
        "D": "Option D text"
    },
    "correct_answer": "A",
    "explanation": "A clear, educational explanation suitable for primary school students explaining why the answer is correct and why other options are wrong"
}

Ensure the question tests understanding of key concepts in %s that are relevant to the PSLE Science syllabus.`, topic, difficulty, topic)
}

// NormalizeTopic folds case ("cycles" -> "Cycles") and validates the topic
// against the syllabus themes.
func NormalizeTopic(raw string) (models.Topic, error) {
	caser := cases.Title(language.English)
	normalized := models.Topic(caser.String(strings.ToLower(strings.TrimSpace(raw))))

	for _, t := range models.AllTopics() {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q: choose one of %v", raw, models.AllTopics())
}

// NormalizeDifficulty folds case and validates the difficulty level.
func NormalizeDifficulty(raw string) (models.Difficulty, error) {
	caser := cases.Title(language.English)
	normalized := models.Difficulty(caser.String(strings.ToLower(strings.TrimSpace(raw))))

	for _, d := range models.AllDifficulties() {
		if d == normalized {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q: choose one of %v", raw, models.AllDifficulties())
}
