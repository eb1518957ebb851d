package draft

import (
	courseModels "lmsadmin/models/course"
)

// Totals are the four aggregate fields derived from the modules collection.
type Totals struct {
	Duration int // minutes
	Lessons  int
	Quizzes  int
	Projects int
}

// ComputeTotals walks every lesson of every module and derives the aggregate
// fields. It is a pure function of the modules slice; the result never
// depends on the order of prior mutations.
func ComputeTotals(modules []courseModels.Module) Totals {
	var t Totals
	for _, m := range modules {
		for _, l := range m.Lessons {
			t.Duration += l.Duration
			t.Lessons++
			switch l.Type {
			case courseModels.LessonQuiz:
				t.Quizzes++
			case courseModels.LessonProject, courseModels.LessonPractice:
				t.Projects++
			}
		}
	}
	return t
}

// setModules replaces the modules collection and recomputes the aggregates
// in the same step, so no caller can observe modules and totals out of sync.
func setModules(d *courseModels.CourseDraft, modules []courseModels.Module) {
	d.Modules = modules
	t := ComputeTotals(modules)
	d.TotalDuration = t.Duration
	d.TotalLessons = t.Lessons
	d.TotalQuizzes = t.Quizzes
	d.TotalProjects = t.Projects
}
