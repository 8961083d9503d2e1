package pages

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"safeguard/internal/models"

	"github.com/google/uuid"
)

var (
	ErrQuizLocked    = errors.New("quiz is waiting before the next question")
	ErrQuizFinished  = errors.New("quiz is finished")
	ErrInvalidOption = errors.New("option out of range")
)

// AnswerResult describes the outcome of one answer.
type AnswerResult struct {
	Selected int
	Correct  int
	Right    bool
}

// QuizSession holds the state of one pass through the quiz: the shuffled
// questions, the current position, the score and the per-question record.
// After an answer the session locks until Advance is called.
type QuizSession struct {
	id        string
	questions []models.QuizQuestion
	index     int
	score     int
	record    []bool
	locked    bool
}

// NewQuizSession copies and shuffles questions once using rng.
func NewQuizSession(questions []models.QuizQuestion, rng *rand.Rand) *QuizSession {
	shuffled := make([]models.QuizQuestion, len(questions))
	copy(shuffled, questions)
	if rng != nil {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}

	return &QuizSession{
		id:        uuid.NewString(),
		questions: shuffled,
		record:    make([]bool, 0, len(shuffled)),
	}
}

// ID identifies the session in logs.
func (q *QuizSession) ID() string {
	return q.id
}

// Questions returns the session order.
func (q *QuizSession) Questions() []models.QuizQuestion {
	return q.questions
}

// Current returns the question awaiting an answer; ok is false once finished.
func (q *QuizSession) Current() (models.QuizQuestion, bool) {
	if q.Finished() {
		return models.QuizQuestion{}, false
	}
	return q.questions[q.index], true
}

// Index is the zero-based position of the current question.
func (q *QuizSession) Index() int {
	return q.index
}

// Answer records a selection for the current question and locks the
// session.
func (q *QuizSession) Answer(selected int) (AnswerResult, error) {
	if q.Finished() {
		return AnswerResult{}, ErrQuizFinished
	}
	if q.locked {
		return AnswerResult{}, ErrQuizLocked
	}

	question := q.questions[q.index]
	if selected < 0 || selected >= len(question.Options) {
		return AnswerResult{}, fmt.Errorf("%w: %d", ErrInvalidOption, selected)
	}

	result := AnswerResult{
		Selected: selected,
		Correct:  question.Answer,
		Right:    selected == question.Answer,
	}
	if result.Right {
		q.score++
	}
	q.record = append(q.record, result.Right)
	q.locked = true

	return result, nil
}

// Advance moves past the answered question and unlocks the session. It is a
// no-op when no answer is pending.
func (q *QuizSession) Advance() {
	if !q.locked {
		return
	}
	q.locked = false
	q.index++
}

func (q *QuizSession) Locked() bool {
	return q.locked
}

// Finished reports whether every question has been answered and advanced past.
func (q *QuizSession) Finished() bool {
	return q.index >= len(q.questions)
}

func (q *QuizSession) Score() int {
	return q.score
}

func (q *QuizSession) Total() int {
	return len(q.questions)
}

// Record lists right/wrong per answered question in session order.
func (q *QuizSession) Record() []bool {
	return append([]bool(nil), q.record...)
}

// Summary is the score line shown at the end.
func (q *QuizSession) Summary() string {
	return fmt.Sprintf("Your Score: %d/%d", q.score, len(q.questions))
}
