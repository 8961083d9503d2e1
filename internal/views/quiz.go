package views

import (
	"errors"
	"time"

	"safeguard/internal/logger"
	"safeguard/internal/navigation"
	"safeguard/internal/pages"
	"safeguard/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// QuizView runs one quiz session. After each answer the options are locked
// for delay, then the next question or the final score is shown.
type QuizView struct {
	page
	session   *pages.QuizSession
	scheduler Scheduler
	delay     time.Duration

	question *widget.Label
	options  *fyne.Container
	buttons  []*widget.Button
	back     *widget.Button
}

func NewQuizView(nav navigation.Navigator, session *pages.QuizSession, scheduler Scheduler, delay time.Duration, log logger.Logger) *QuizView {
	v := &QuizView{
		page:      newPage(navigation.Quiz, nav, log),
		session:   session,
		scheduler: scheduler,
		delay:     delay,
	}

	v.question = components.NewParagraph("")
	v.question.Alignment = fyne.TextAlignCenter
	v.options = container.NewVBox()
	v.back = v.backButton()

	v.mount(container.NewBorder(
		components.NewTitle("Disaster Preparedness Quiz"),
		container.NewCenter(v.back),
		nil, nil,
		container.NewVBox(v.question, v.options),
	))

	log.Info("QuizView", "quiz started", map[string]interface{}{
		"session":   session.ID(),
		"questions": session.Total(),
	})

	v.showQuestion()
	return v
}

func (v *QuizView) showQuestion() {
	q, ok := v.session.Current()
	if !ok {
		v.showScore()
		return
	}

	v.question.SetText(q.Question)
	v.buttons = v.buttons[:0]
	v.options.RemoveAll()
	for i, option := range q.Options {
		button := widget.NewButton(option, func() { v.Select(i) })
		v.buttons = append(v.buttons, button)
		v.options.Add(button)
	}
}

func (v *QuizView) showScore() {
	v.question.SetText(v.session.Summary())
	v.buttons = nil
	v.options.RemoveAll()
	v.options.Hide()

	v.logger.Info("QuizView", "quiz finished", map[string]interface{}{
		"session": v.session.ID(),
		"score":   v.session.Score(),
		"total":   v.session.Total(),
	})
}

// Select answers the current question with option i.
func (v *QuizView) Select(i int) {
	if !v.Active() {
		return
	}

	result, err := v.session.Answer(i)
	if err != nil {
		if !errors.Is(err, pages.ErrQuizLocked) {
			v.logger.Warning("QuizView", "answer rejected", map[string]interface{}{
				"session": v.session.ID(),
				"error":   err.Error(),
			})
		}
		return
	}

	for _, b := range v.buttons {
		b.Disable()
	}
	if !result.Right {
		v.buttons[result.Selected].Importance = widget.DangerImportance
		v.buttons[result.Selected].Refresh()
	}
	v.buttons[result.Correct].Importance = widget.SuccessImportance
	v.buttons[result.Correct].Refresh()

	v.scheduler.AfterFunc(v.delay, v.advance)
}

func (v *QuizView) advance() {
	if !v.Active() {
		return
	}
	v.session.Advance()
	v.showQuestion()
}

// QuestionText is the question or score line currently displayed.
func (v *QuizView) QuestionText() string {
	return v.question.Text
}

// OptionButtons are the answer buttons for the current question.
func (v *QuizView) OptionButtons() []*widget.Button {
	return v.buttons
}

func (v *QuizView) Session() *pages.QuizSession {
	return v.session
}

func (v *QuizView) Dispose() {
	v.teardown(func() {
		v.buttons = nil
		v.options.RemoveAll()
	})
}
