package draft

import (
	"sync"
	"time"

	courseModels "lmsadmin/models/course"
)

// Labels are the id → display-label catalogs fetched alongside the course,
// kept so server responses can be re-resolved into references after submit.
type Labels struct {
	Categories  map[string]string
	Instructors map[string]string
	Quizzes     map[string]string
}

// Entry is one live editing session: the draft itself plus the stepper's
// completion state. All mutation goes through Update so the draft and its
// derived aggregates can never be observed mid-change.
type Entry struct {
	mu          sync.Mutex
	draft       *courseModels.CourseDraft
	labels      Labels
	completed   map[Step]bool
	lastTouched time.Time
}

// Update runs fn with the entry locked and refreshes the idle timestamp.
// If fn returns an error the draft keeps whatever state fn left it in; ops in
// this package mutate only on success.
func (e *Entry) Update(fn func(d *courseModels.CourseDraft) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastTouched = time.Now()
	return fn(e.draft)
}

// Snapshot returns a deep-enough copy of the draft for rendering: the
// top-level document is copied and the mutable collections (modules,
// thumbnails, banner) are cloned so concurrent edits cannot rewrite them
// under the reader.
func (e *Entry) Snapshot() courseModels.CourseDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := *e.draft
	snap.Modules = cloneModules(e.draft.Modules)
	snap.Thumbnails = append([]courseModels.ImagePayload(nil), e.draft.Thumbnails...)
	if e.draft.BannerImage != nil {
		banner := *e.draft.BannerImage
		snap.BannerImage = &banner
	}
	return snap
}

// Labels returns the catalogs captured at load time.
func (e *Entry) Labels() Labels {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.labels
}

// ReplaceDraft swaps in a draft rebuilt from a server response, keeping the
// stepper's completion state.
func (e *Entry) ReplaceDraft(d *courseModels.CourseDraft) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = d
	e.lastTouched = time.Now()
}

// MarkCompleted records that a tab's Update call succeeded.
func (e *Entry) MarkCompleted(step Step) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.completed[step] = true
}

// CompletedSteps returns the set of tabs submitted so far.
func (e *Entry) CompletedSteps() map[Step]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[Step]bool, len(e.completed))
	for k, v := range e.completed {
		out[k] = v
	}
	return out
}

// Store holds the in-memory editing sessions, keyed by course and editor.
// Drafts are never persisted locally; an idle session is discarded by Sweep.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewStore returns an empty draft store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Key builds the store key for a course being edited by a user.
func Key(courseID, userID string) string {
	return courseID + ":" + userID
}

// Put installs a freshly loaded draft, replacing any prior session for the
// same course and editor.
func (s *Store) Put(key string, d *courseModels.CourseDraft, labels Labels) *Entry {
	e := &Entry{
		draft:       d,
		labels:      labels,
		completed:   make(map[Step]bool),
		lastTouched: time.Now(),
	}
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return e
}

// Get returns the live session for key, if any.
func (s *Store) Get(key string) (*Entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	return e, ok
}

// Delete discards a session (navigation away without submit).
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Sweep discards sessions idle for longer than ttl and returns how many were
// dropped.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for key, e := range s.entries {
		e.mu.Lock()
		idle := e.lastTouched.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.entries, key)
			dropped++
		}
	}
	return dropped
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func cloneModules(modules []courseModels.Module) []courseModels.Module {
	out := make([]courseModels.Module, len(modules))
	for i, m := range modules {
		out[i] = m
		out[i].Lessons = append([]courseModels.Lesson(nil), m.Lessons...)
	}
	return out
}
