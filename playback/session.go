package playback

import (
	"sync"
	"time"
)

// Content tabs of the player.
const (
	TabVideo = "video"
	TabQuiz  = "quiz"
)

// Session is one student's playback state for one course: which module is
// expanded, which lesson is active, the active content tab and any running
// quiz attempt. It mirrors what the browser would otherwise keep in
// component state.
type Session struct {
	mu sync.Mutex

	CourseID string
	UserID   string

	expandedModule string
	activeLesson   string
	activeTab      string
	progress       float64
	attempt        *Attempt
	lastTouched    time.Time
}

// ToggleModule opens a module, closing whichever one was open; the syllabus
// keeps a single module expanded at a time. Toggling the open module closes
// it.
func (s *Session) ToggleModule(moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()
	if s.expandedModule == moduleID {
		s.expandedModule = ""
		return
	}
	s.expandedModule = moduleID
}

// ExpandModule opens exactly the given module, used by auto-advance when the
// next lesson lives in a different module.
func (s *Session) ExpandModule(moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expandedModule = moduleID
}

// SelectVideoLesson makes a video lesson active and discards any running
// quiz state.
func (s *Session) SelectVideoLesson(lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()
	s.activeLesson = lessonID
	s.activeTab = TabVideo
	if s.attempt != nil {
		s.attempt.Cancel()
		s.attempt = nil
	}
}

// SelectQuizLesson makes a quiz lesson active and switches the content tab
// to the quiz view. Any prior attempt is discarded; a new one starts
// explicitly.
func (s *Session) SelectQuizLesson(lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()
	s.activeLesson = lessonID
	s.activeTab = TabQuiz
	if s.attempt != nil {
		s.attempt.Cancel()
		s.attempt = nil
	}
}

// SetAttempt installs the running attempt for the active quiz lesson.
func (s *Session) SetAttempt(a *Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()
	if s.attempt != nil {
		s.attempt.Cancel()
	}
	s.attempt = a
}

// Attempt returns the running attempt, if any.
func (s *Session) Attempt() *Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt
}

// SetProgress adopts the server-reported course progress percentage.
func (s *Session) SetProgress(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = p
}

// View is the session state as rendered to the client.
type View struct {
	CourseID       string  `json:"courseId"`
	ExpandedModule string  `json:"expandedModule"`
	ActiveLesson   string  `json:"activeLesson"`
	ActiveTab      string  `json:"activeTab"`
	Progress       float64 `json:"progress"`
	AttemptState   string  `json:"attemptState"`
	SecondsLeft    int     `json:"secondsLeft"`
	Answered       int     `json:"answered"`
}

// Render snapshots the session for the client.
func (s *Session) Render() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		CourseID:       s.CourseID,
		ExpandedModule: s.expandedModule,
		ActiveLesson:   s.activeLesson,
		ActiveTab:      s.activeTab,
		Progress:       s.progress,
		AttemptState:   string(AttemptNotStarted),
	}
	if s.attempt != nil {
		v.AttemptState = string(s.attempt.State())
		v.SecondsLeft = s.attempt.Remaining()
		v.Answered = s.attempt.Answered()
	}
	return v
}

// Store holds the live playback sessions, keyed like the draft store by
// course and user.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty playback store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Key builds the store key for a course being played by a user.
func Key(courseID, userID string) string {
	return courseID + ":" + userID
}

// GetOrCreate returns the session for key, creating it on first access.
func (s *Store) GetOrCreate(key, courseID, userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[key]; ok {
		return sess
	}
	sess := &Session{CourseID: courseID, UserID: userID, lastTouched: time.Now()}
	s.sessions[key] = sess
	return sess
}

// Get returns the session for key, if any.
func (s *Store) Get(key string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[key]
	s.mu.RUnlock()
	return sess, ok
}

// Sweep drops sessions idle for longer than ttl, cancelling any running
// attempt timers so they cannot fire later.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for key, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastTouched.Before(cutoff)
		if idle && sess.attempt != nil {
			sess.attempt.Cancel()
		}
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, key)
			dropped++
		}
	}
	return dropped
}
