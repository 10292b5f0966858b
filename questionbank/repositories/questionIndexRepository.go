package repositories

import (
	"encoding/json"
	"strings"

	"psle-tutor-backend/config"
	"psle-tutor-backend/db/models"
	bleveindex "psle-tutor-backend/questionbank/services"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

const questionIndexName = "questions"

type QuestionIndexRepository struct {
	indexer *bleveindex.IndexingService
}

type QuestionIndexRepositoryInterface interface {
	IndexQuestion(question models.QuizQuestion) error
	DeleteQuestion(questionID string) error
	SearchQuestions(queryString, topic, difficulty string, size int) (*bleve.SearchResult, error)
}

// Constructor returning both the struct and the interface
func NewQuestionIndexRepository(indexer *bleveindex.IndexingService) (*QuestionIndexRepository, QuestionIndexRepositoryInterface) {
	repo := &QuestionIndexRepository{indexer: indexer}
	return repo, repo
}

// IndexQuestion puts one generated question into the bank index. The correct
// answer letter and explanation are deliberately left out of the document so
// search results never leak answers.
func (r *QuestionIndexRepository) IndexQuestion(question models.QuizQuestion) error {
	var options map[string]string
	if err := json.Unmarshal(question.Options, &options); err != nil {
		config.Logger.Error("Failed to decode question options for indexing",
			zap.Error(err),
			zap.String("question_id", question.ID.String()))
		return err
	}

	optionTexts := make([]string, 0, len(options))
	for _, key := range []string{"A", "B", "C", "D"} {
		optionTexts = append(optionTexts, options[key])
	}

	bleveQuestionDoc := struct {
		ID         string `json:"id"`
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
		Question   string `json:"question"`
		Options    string `json:"options"`
	}{
		ID:         question.ID.String(),
		Topic:      string(question.Topic),
		Difficulty: string(question.Difficulty),
		Question:   question.Question,
		Options:    strings.Join(optionTexts, " "),
	}

	err := r.indexer.IndexDocument(questionIndexName, question.ID.String(), bleveQuestionDoc)
	if err != nil {
		config.Logger.Error("Failed to index question into Bleve",
			zap.Error(err),
			zap.String("question_id", question.ID.String()))
		return err
	}

	return nil
}

func (r *QuestionIndexRepository) DeleteQuestion(questionID string) error {
	return r.indexer.DeleteDocument(questionIndexName, questionID)
}

// SearchQuestions runs a full-text search over the question bank, optionally
// constrained to one topic and difficulty.
func (r *QuestionIndexRepository) SearchQuestions(queryString, topic, difficulty string, size int) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()
	queryString = strings.TrimSpace(queryString)
	queryStringLower := strings.ToLower(queryString)

	if queryString != "" {
		textMatch := bleve.NewBooleanQuery()

		questionMatch := bleve.NewMatchQuery(queryString)
		questionMatch.SetField("question")
		questionMatch.SetBoost(10.0)
		textMatch.AddShould(questionMatch)

		optionsMatch := bleve.NewMatchQuery(queryString)
		optionsMatch.SetField("options")
		optionsMatch.SetBoost(5.0)
		textMatch.AddShould(optionsMatch)

		// Prefix and fuzzy matches for partial terms and typos
		questionPrefix := bleve.NewPrefixQuery(queryStringLower)
		questionPrefix.SetField("question")
		questionPrefix.SetBoost(3.0)
		textMatch.AddShould(questionPrefix)

		fuzzyQuery := bleve.NewFuzzyQuery(queryStringLower)
		fuzzyQuery.SetField("question")
		fuzzyQuery.SetBoost(2.0)
		fuzzyQuery.SetFuzziness(1)
		textMatch.AddShould(fuzzyQuery)

		booleanQuery.AddMust(textMatch)
	} else {
		booleanQuery.AddMust(bleve.NewMatchAllQuery())
	}

	if topic != "" {
		topicQuery := bleve.NewMatchQuery(topic)
		topicQuery.SetField("topic")
		booleanQuery.AddMust(topicQuery)
	}

	if difficulty != "" {
		difficultyQuery := bleve.NewMatchQuery(difficulty)
		difficultyQuery.SetField("difficulty")
		booleanQuery.AddMust(difficultyQuery)
	}

	if size <= 0 {
		size = 20
	}

	return r.indexer.SearchIndex(questionIndexName, booleanQuery, size)
}
