package playback

import (
	"errors"
	"sync"
	"time"
)

// AttemptState is the quiz attempt lifecycle:
// NotStarted → Started (countdown running) → Submitted.
type AttemptState string

const (
	AttemptNotStarted AttemptState = "not_started"
	AttemptStarted    AttemptState = "started"
	AttemptSubmitted  AttemptState = "submitted"
)

var (
	ErrAttemptNotRunning = errors.New("attempt is not running")
	ErrUnknownQuestion   = errors.New("question does not belong to this quiz")
	ErrUnansweredLeft    = errors.New("every question needs an answer before submitting")
)

// Attempt is one running quiz attempt. The server-issued deadline drives a
// single timer that force-submits whatever answers exist when it fires; the
// Conclude handshake guarantees the manual and timer paths cannot both
// submit.
type Attempt struct {
	mu sync.Mutex

	ID       string
	QuizID   string
	LessonID string

	state     AttemptState
	deadline  time.Time
	questions map[string]bool   // question ids of the quiz
	answers   map[string]string // question id → selected option id
	timer     *time.Timer
}

// StartAttempt creates a Started attempt whose countdown ends at
// now+timeLimit. When the countdown reaches zero, onExpire runs on a timer
// goroutine with the attempt already moved to Submitted and the partial
// answers recorded so far.
func StartAttempt(attemptID, quizID, lessonID string, timeLimit time.Duration, questionIDs []string, onExpire func(a *Attempt, answers map[string]string)) *Attempt {
	a := &Attempt{
		ID:        attemptID,
		QuizID:    quizID,
		LessonID:  lessonID,
		state:     AttemptStarted,
		deadline:  time.Now().Add(timeLimit),
		questions: make(map[string]bool, len(questionIDs)),
		answers:   make(map[string]string),
	}
	for _, id := range questionIDs {
		a.questions[id] = true
	}
	a.timer = time.AfterFunc(timeLimit, func() {
		answers, ok := a.Conclude()
		if ok && onExpire != nil {
			onExpire(a, answers)
		}
	})
	return a
}

// State returns the current lifecycle state.
func (a *Attempt) State() AttemptState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Remaining returns the seconds left on the countdown, floored at zero.
func (a *Attempt) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	left := time.Until(a.deadline)
	if left < 0 || a.state != AttemptStarted {
		return 0
	}
	return int(left.Seconds())
}

// RecordAnswer stores the selected option for a question. Only valid while
// the attempt is running and the question belongs to the quiz.
func (a *Attempt) RecordAnswer(questionID, optionID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AttemptStarted {
		return ErrAttemptNotRunning
	}
	if !a.questions[questionID] {
		return ErrUnknownQuestion
	}
	a.answers[questionID] = optionID
	return nil
}

// Answered reports how many questions have a recorded answer.
func (a *Attempt) Answered() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.answers)
}

// CanSubmit reports whether every question has a recorded answer; the submit
// control stays disabled until it does.
func (a *Attempt) CanSubmit() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == AttemptStarted && len(a.answers) == len(a.questions)
}

// Conclude moves the attempt to Submitted exactly once, stops the countdown
// and returns a snapshot of the recorded answers. The second caller (manual
// submit racing the timer, or vice versa) gets ok=false and must not submit.
func (a *Attempt) Conclude() (map[string]string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AttemptStarted {
		return nil, false
	}
	a.state = AttemptSubmitted
	if a.timer != nil {
		a.timer.Stop()
	}
	snapshot := make(map[string]string, len(a.answers))
	for k, v := range a.answers {
		snapshot[k] = v
	}
	return snapshot, true
}

// Cancel tears the attempt down without submitting (lesson switch or session
// teardown).
func (a *Attempt) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.state = AttemptSubmitted
}
