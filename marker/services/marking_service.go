package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	internal_services "psle-tutor-backend/internal/services"
)

// MarkerPrompt instructs the model to grade like a veteran Singapore PSLE
// Science marker: exact keywords or zero marks, and a CER (claim, evidence,
// reasoning) completeness check.
const MarkerPrompt = `You are a strict, veteran Singapore PSLE Science Marker. Your job is not to be a friend, but to grade rigorously based on the MOE Syllabus.

**Your Marking Rubric:**
1.  **Keyword Supremacy:** You must award ZERO marks if the student explains the concept correctly but misses the specific scientific keyword.
    * *Example:* If they say "The water dried up," mark it WRONG. The required phrase is "The water gained heat and evaporated."
    * *Example:* If they say "The object is heavy," mark it WRONG. They must discuss "Gravitational Potential Energy."
    * *Example:* Never accept "rubbing"; demand "Friction."
    * *Example:* Never accept "size"; demand "Exposed Surface Area."

2.  **The "CER" Check:**
    * **C**laim: Did they answer the question directly?
    * **E**vidence: Did they quote data from the table/graph?
    * **R**easoning: Did they link the evidence to the scientific concept?
    * *If any part is missing, deduct marks.*

**Task:**
Analyze the student's handwritten answer in the image.
1.  Transcribe what they wrote.
2.  Identify the missing keywords immediately.
3.  Provide a strict score (e.g., 0/2, 1/2, or 2/2).
4.  Draft the "Model Answer" that would get full marks.

**Output Format (JSON Only):**
{
    "transcription": "Student's exact words...",
    "score": "X/2",
    "verdict": "Strict/Lenient/Correct",
    "missing_keywords": ["List", "Of", "Missing", "Keywords"],
    "feedback_text": "You lost marks because you said 'X' instead of 'Y'. In Section B, we do not accept general descriptions.",
    "model_answer": "The perfect answer showing exactly how to phrase it."
}

Analyze the image carefully and provide your assessment.`

// FeedbackPayload is the JSON envelope the marker model is instructed to
// return for one worksheet answer.
type FeedbackPayload struct {
	Transcription   string   `json:"transcription"`
	Score           string   `json:"score"`
	Verdict         string   `json:"verdict"`
	MissingKeywords []string `json:"missing_keywords"`
	FeedbackText    string   `json:"feedback_text"`
	ModelAnswer     string   `json:"model_answer"`
}

// ParseFeedbackPayload decodes the marker's response. The caller keeps the
// raw response when decoding fails, so the student still sees something.
func ParseFeedbackPayload(raw string) (*FeedbackPayload, error) {
	cleaned := internal_services.StripCodeFences(raw)

	var payload FeedbackPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse marking response: %w", err)
	}

	if strings.TrimSpace(payload.FeedbackText) == "" && strings.TrimSpace(payload.ModelAnswer) == "" {
		return nil, fmt.Errorf("marking response carries no feedback")
	}

	return &payload, nil
}

// ParseScore splits a "X/Y" score string. Malformed scores fall back to 0/2,
// a failed answer on the standard two-mark question.
func ParseScore(score string) (awarded, total int) {
	parts := strings.SplitN(strings.TrimSpace(score), "/", 2)
	if len(parts) != 2 {
		return 0, 2
	}

	awarded, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	total, errT := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errT != nil || total <= 0 || awarded < 0 || awarded > total {
		return 0, 2
	}
	return awarded, total
}

// SupportedWorksheetType reports whether the uploaded file can be marked.
// PDFs are recognised but rejected with conversion guidance.
func SupportedWorksheetType(mimeType string) (supported bool, isPDF bool) {
	switch mimeType {
	case "image/png", "image/jpeg", "image/jpg":
		return true, false
	case "application/pdf":
		return false, true
	default:
		return false, false
	}
}
