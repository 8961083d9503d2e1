package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"safeguard/internal/logger"
	"safeguard/internal/models"
)

// FallbackText is the placeholder shown when a content file cannot be used.
const FallbackText = "No data available"

// FallbackCategory names the single category of the fallback resource list.
const FallbackCategory = "General"

var errEmptyContent = errors.New("content file holds no usable entries")

// ContentPaths locates the static JSON content files.
type ContentPaths struct {
	Alerts       string
	Instructions string
	Questions    string
	Resources    string
}

// ContentService loads the static JSON content behind each page. Loading
// never fails: any problem yields the one-element fallback collection.
type ContentService struct {
	paths  ContentPaths
	logger logger.Logger
}

func NewContentService(paths ContentPaths, log logger.Logger) *ContentService {
	return &ContentService{
		paths:  paths,
		logger: log,
	}
}

// Alerts returns the alert list in file order.
func (cs *ContentService) Alerts() []models.Alert {
	var doc struct {
		Alerts *[]models.Alert `json:"alerts"`
	}
	if err := cs.decode(cs.paths.Alerts, &doc); err != nil || doc.Alerts == nil || len(*doc.Alerts) == 0 {
		cs.fallback(cs.paths.Alerts, "alerts", err)
		return []models.Alert{FallbackText}
	}
	return *doc.Alerts
}

// Instructions returns the slideshow instructions in file order.
func (cs *ContentService) Instructions() []models.Instruction {
	var doc struct {
		Instructions *[]models.Instruction `json:"instructions"`
	}
	if err := cs.decode(cs.paths.Instructions, &doc); err != nil || doc.Instructions == nil || len(*doc.Instructions) == 0 {
		cs.fallback(cs.paths.Instructions, "instructions", err)
		return []models.Instruction{FallbackText}
	}
	return *doc.Instructions
}

// Questions returns the quiz questions in file order. Entries whose answer
// does not index one of their options are dropped.
func (cs *ContentService) Questions() []models.QuizQuestion {
	var doc struct {
		Questions *[]models.QuizQuestion `json:"questions"`
	}
	err := cs.decode(cs.paths.Questions, &doc)
	if err != nil || doc.Questions == nil {
		cs.fallback(cs.paths.Questions, "questions", err)
		return FallbackQuestions()
	}

	questions := make([]models.QuizQuestion, 0, len(*doc.Questions))
	for i, q := range *doc.Questions {
		if !q.Valid() {
			cs.logger.Warning("ContentService", "skipping invalid quiz question", map[string]interface{}{
				"path":    cs.paths.Questions,
				"index":   i,
				"answer":  q.Answer,
				"options": len(q.Options),
			})
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		cs.fallback(cs.paths.Questions, "questions", errEmptyContent)
		return FallbackQuestions()
	}
	return questions
}

// Resources returns the resource categories in the order they appear in
// the file.
func (cs *ContentService) Resources() []models.ResourceCategory {
	categories, err := readResources(cs.paths.Resources)
	if err == nil && len(categories) == 0 {
		err = errEmptyContent
	}
	if err != nil {
		cs.fallback(cs.paths.Resources, "resources", err)
		return []models.ResourceCategory{{Name: FallbackCategory, Links: []string{FallbackText}}}
	}
	return categories
}

// FallbackQuestions is the placeholder quiz used when no question loads.
func FallbackQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{{Question: FallbackText, Options: []string{"Retry"}, Answer: 0}}
}

func (cs *ContentService) decode(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode content file: %w", err)
	}
	return nil
}

func (cs *ContentService) fallback(path, kind string, err error) {
	fields := map[string]interface{}{
		"path": path,
		"kind": kind,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	cs.logger.Warning("ContentService", "using fallback content", fields)
}
