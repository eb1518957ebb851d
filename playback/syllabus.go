package playback

import (
	courseModels "lmsadmin/models/course"
)

// FlatLesson is one lesson in document order, with its module attached for
// display.
type FlatLesson struct {
	ModuleID    string                  `json:"moduleId"`
	ModuleTitle string                  `json:"moduleTitle"`
	Lesson      courseModels.WireLesson `json:"lesson"`
}

// Flatten lists every lesson of the course in document order: modules in
// sequence, lessons in sequence within each module. Auto-advance walks this
// list.
func Flatten(doc *courseModels.WireCourse) []FlatLesson {
	var out []FlatLesson
	for _, m := range doc.Modules {
		for _, l := range m.Lessons {
			out = append(out, FlatLesson{ModuleID: m.ID, ModuleTitle: m.Title, Lesson: l})
		}
	}
	return out
}

// FindLesson locates a lesson by id anywhere in the course.
func FindLesson(doc *courseModels.WireCourse, lessonID string) (FlatLesson, bool) {
	for _, fl := range Flatten(doc) {
		if fl.Lesson.ID == lessonID {
			return fl, true
		}
	}
	return FlatLesson{}, false
}

// NextLesson returns the lesson immediately following lessonID in document
// order, crossing module boundaries. ok is false when lessonID is last or
// unknown.
func NextLesson(doc *courseModels.WireCourse, lessonID string) (FlatLesson, bool) {
	flat := Flatten(doc)
	for i, fl := range flat {
		if fl.Lesson.ID == lessonID && i+1 < len(flat) {
			return flat[i+1], true
		}
	}
	return FlatLesson{}, false
}
