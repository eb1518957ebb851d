package draft

import (
	"lmsadmin/models"
	courseModels "lmsadmin/models/course"
)

// Step identifies one tab of the course editor.
type Step string

const (
	StepBasic      Step = "basic"
	StepInstructor Step = "instructor"
	StepContent    Step = "content"
	StepMetadata   Step = "metadata"
	StepMedia      Step = "media"
)

// StepOrder is the linear tab sequence of the editor.
var StepOrder = []Step{StepBasic, StepInstructor, StepContent, StepMetadata, StepMedia}

// ValidStep reports whether s names a known tab.
func ValidStep(s Step) bool {
	for _, step := range StepOrder {
		if s == step {
			return true
		}
	}
	return false
}

// IsStepValid is the per-tab readiness predicate gating Next navigation and
// tab submission. Metadata and media have no required fields.
func IsStepValid(d *courseModels.CourseDraft, step Step, sess models.Session) bool {
	switch step {
	case StepBasic:
		return d.Title != "" && d.ShortDescription != "" && d.Category != nil && d.Category.ID != ""
	case StepInstructor:
		// An instructor editing their own course is auto-assigned.
		if sess.IsInstructor() {
			return true
		}
		return d.Instructor != nil && d.Instructor.ID != ""
	case StepContent:
		if len(d.Modules) == 0 {
			return false
		}
		for _, m := range d.Modules {
			if m.Title == "" || len(m.Lessons) == 0 {
				return false
			}
			for _, l := range m.Lessons {
				if l.Title == "" {
					return false
				}
				if l.Type == courseModels.LessonQuiz && (l.Quiz == nil || l.Quiz.ID == "") {
					return false
				}
			}
		}
		return true
	case StepMetadata, StepMedia:
		return true
	}
	return false
}

// StepErrors explains why a step is not valid, as a field → message map in
// the same shape the validators produce.
func StepErrors(d *courseModels.CourseDraft, step Step, sess models.Session) map[string]string {
	errs := make(map[string]string)
	switch step {
	case StepBasic:
		if d.Title == "" {
			errs["title"] = "Title is required!"
		}
		if d.ShortDescription == "" {
			errs["shortDescription"] = "Short description is required!"
		}
		if d.Category == nil || d.Category.ID == "" {
			errs["category"] = "Category is required!"
		}
	case StepInstructor:
		if !sess.IsInstructor() && (d.Instructor == nil || d.Instructor.ID == "") {
			errs["instructor"] = "Instructor is required!"
		}
	case StepContent:
		if len(d.Modules) == 0 {
			errs["modules"] = "At least one module is required!"
			return errs
		}
		for _, m := range d.Modules {
			if m.Title == "" {
				errs["modules"] = "Every module needs a title!"
				return errs
			}
			if len(m.Lessons) == 0 {
				errs["modules"] = "Every module needs at least one lesson!"
				return errs
			}
			for _, l := range m.Lessons {
				if l.Title == "" {
					errs["modules"] = "Every lesson needs a title!"
					return errs
				}
				if l.Type == courseModels.LessonQuiz && (l.Quiz == nil || l.Quiz.ID == "") {
					errs["modules"] = "Every quiz lesson needs a selected quiz!"
					return errs
				}
			}
		}
	}
	return errs
}
