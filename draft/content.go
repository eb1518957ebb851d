package draft

import (
	"errors"
	"fmt"

	courseModels "lmsadmin/models/course"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrQuizRequired    = errors.New("quiz lessons need a selected quiz")
	ErrModuleNotFound  = errors.New("module not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrBadLessonType   = errors.New("unknown lesson type")
	ErrBadReorderIndex = errors.New("reorder index out of range")
)

// LessonInput carries the editable fields of a lesson from the content tab.
type LessonInput struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Type         courseModels.LessonType `json:"type"`
	Duration     int                     `json:"duration"` // minutes
	IsPreview    bool                    `json:"isPreview"`
	VideoURL     string                  `json:"videoUrl"`
	Quiz         *courseModels.Reference `json:"quiz"`
	Instructions string                  `json:"instructions"`
}

// AddModule appends a new module with a fresh temporary id and order set to
// the current module count plus one.
func AddModule(d *courseModels.CourseDraft, title, description string) (courseModels.Module, error) {
	if title == "" {
		return courseModels.Module{}, ErrTitleRequired
	}
	m := courseModels.Module{
		ID:          NewTempID(),
		Title:       title,
		Description: description,
		Order:       len(d.Modules) + 1,
		Status:      courseModels.StatusUnlocked,
		Lessons:     []courseModels.Lesson{},
	}
	setModules(d, append(cloneModules(d.Modules), m))
	return m, nil
}

// UpdateModule edits a module's title, description and status in place.
// Order is preserved.
func UpdateModule(d *courseModels.CourseDraft, moduleID, title, description, status string) error {
	if title == "" {
		return ErrTitleRequired
	}
	modules := cloneModules(d.Modules)
	m := findModule(modules, moduleID)
	if m == nil {
		return ErrModuleNotFound
	}
	m.Title = title
	m.Description = description
	if status != "" {
		m.Status = status
	}
	setModules(d, modules)
	return nil
}

// DeleteModule removes a module by id. Sibling order values are left as they
// are; only explicit reorders renumber.
func DeleteModule(d *courseModels.CourseDraft, moduleID string) error {
	modules := cloneModules(d.Modules)
	for i, m := range modules {
		if m.ID == moduleID {
			setModules(d, append(modules[:i], modules[i+1:]...))
			return nil
		}
	}
	return ErrModuleNotFound
}

// AddLesson appends a lesson to a module. Quiz lessons are refused without a
// resolved quiz reference; the UI disables the button too, but the guard
// holds when the affordance is bypassed.
func AddLesson(d *courseModels.CourseDraft, moduleID string, in LessonInput) (courseModels.Lesson, error) {
	if err := checkLessonInput(in); err != nil {
		return courseModels.Lesson{}, err
	}
	modules := cloneModules(d.Modules)
	m := findModule(modules, moduleID)
	if m == nil {
		return courseModels.Lesson{}, ErrModuleNotFound
	}
	l := courseModels.Lesson{
		ID:        NewTempID(),
		Order:     len(m.Lessons) + 1,
		Status:    courseModels.StatusUnlocked,
		IsPreview: in.IsPreview,
	}
	applyLessonInput(&l, in)
	m.Lessons = append(m.Lessons, l)
	setModules(d, modules)
	return l, nil
}

// UpdateLesson edits a lesson in place, preserving its order. Switching the
// type strips the fields belonging to the previous type; in particular a
// pending quiz selection does not survive a move away from the quiz type.
func UpdateLesson(d *courseModels.CourseDraft, moduleID, lessonID string, in LessonInput) error {
	if err := checkLessonInput(in); err != nil {
		return err
	}
	modules := cloneModules(d.Modules)
	m := findModule(modules, moduleID)
	if m == nil {
		return ErrModuleNotFound
	}
	for i := range m.Lessons {
		if m.Lessons[i].ID == lessonID {
			applyLessonInput(&m.Lessons[i], in)
			m.Lessons[i].IsPreview = in.IsPreview
			setModules(d, modules)
			return nil
		}
	}
	return ErrLessonNotFound
}

// DeleteLesson removes a lesson by id from a module.
func DeleteLesson(d *courseModels.CourseDraft, moduleID, lessonID string) error {
	modules := cloneModules(d.Modules)
	m := findModule(modules, moduleID)
	if m == nil {
		return ErrModuleNotFound
	}
	for i := range m.Lessons {
		if m.Lessons[i].ID == lessonID {
			m.Lessons = append(m.Lessons[:i], m.Lessons[i+1:]...)
			setModules(d, modules)
			return nil
		}
	}
	return ErrLessonNotFound
}

// ReorderLesson moves a lesson within its module and renumbers every lesson
// in the module to a contiguous 1..N sequence.
func ReorderLesson(d *courseModels.CourseDraft, moduleID string, from, to int) error {
	modules := cloneModules(d.Modules)
	m := findModule(modules, moduleID)
	if m == nil {
		return ErrModuleNotFound
	}
	n := len(m.Lessons)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: from=%d to=%d of %d", ErrBadReorderIndex, from, to, n)
	}
	moved := m.Lessons[from]
	rest := append(append([]courseModels.Lesson{}, m.Lessons[:from]...), m.Lessons[from+1:]...)
	m.Lessons = append(append(append([]courseModels.Lesson{}, rest[:to]...), moved), rest[to:]...)
	for i := range m.Lessons {
		m.Lessons[i].Order = i + 1
	}
	setModules(d, modules)
	return nil
}

func checkLessonInput(in LessonInput) error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if !in.Type.Valid() {
		return ErrBadLessonType
	}
	if in.Type == courseModels.LessonQuiz && (in.Quiz == nil || in.Quiz.ID == "") {
		return ErrQuizRequired
	}
	return nil
}

// applyLessonInput writes the input onto the lesson and keeps exactly the
// fields belonging to the lesson's (possibly new) type.
func applyLessonInput(l *courseModels.Lesson, in LessonInput) {
	l.Title = in.Title
	l.Description = in.Description
	l.Type = in.Type
	l.Duration = in.Duration

	l.VideoURL = ""
	l.Quiz = nil
	l.Instructions = ""
	switch in.Type {
	case courseModels.LessonVideo:
		l.VideoURL = in.VideoURL
	case courseModels.LessonQuiz:
		l.Quiz = in.Quiz
		l.Instructions = in.Instructions
	default:
		if in.Type.UsesInstructions() {
			l.Instructions = in.Instructions
		}
	}
}

func findModule(modules []courseModels.Module, id string) *courseModels.Module {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i]
		}
	}
	return nil
}
