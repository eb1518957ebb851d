package course

// LessonType enumerates the kinds of lesson a module can hold. Exactly one
// type-specific field (VideoURL, Quiz, Instructions) is meaningful at a time.
type LessonType string

const (
	LessonVideo    LessonType = "video"
	LessonArticle  LessonType = "article"
	LessonQuiz     LessonType = "quiz"
	LessonPractice LessonType = "practice"
	LessonProject  LessonType = "project"
	LessonDownload LessonType = "download"
)

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelAllLevels    = "All Levels"
)

// Access types
const (
	AccessLifetime     = "lifetime"
	AccessSubscription = "subscription"
	AccessTrial        = "trial"
)

// Module statuses
const (
	StatusUnlocked = "unlocked"
	StatusLocked   = "locked"
)

// Reference is a resolved {id, label} pair for a category, an instructor or
// a quiz, display-ready for the editing client.
type Reference struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ImagePayload is one banner or thumbnail image on the draft. A persisted
// image carries only URL; a newly staged one carries the data-URI payload.
// Removed marks a persisted image for deletion while keeping it restorable
// until submit.
type ImagePayload struct {
	URL         string `json:"url,omitempty"`
	Data        string `json:"data,omitempty"` // data-URI
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Removed     bool   `json:"removed,omitempty"`
}

// Persisted reports whether the image already lives on the server.
func (p ImagePayload) Persisted() bool { return p.URL != "" }

// Lesson is one lesson of a module as held in the editing draft. Duration is
// in minutes here; the wire document carries seconds.
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        LessonType `json:"type"`
	Duration    int        `json:"duration"` // minutes
	Order       int        `json:"order"`    // 1-based within the module
	IsPreview   bool       `json:"isPreview"`
	Status      string     `json:"status"`

	// Exactly one of the following is meaningful, per Type.
	VideoURL     string     `json:"videoUrl,omitempty"`     // video
	Quiz         *Reference `json:"quiz,omitempty"`         // quiz, resolved against the quiz list
	Instructions string     `json:"instructions,omitempty"` // article, quiz, practice, project
}

// Module is one section of the course draft. Order values stay a contiguous
// 1..N sequence across all mutations.
type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Order       int      `json:"order"`
	Status      string   `json:"status"`
	Lessons     []Lesson `json:"lessons"`
}

// CourseDraft is the canonical in-memory document being edited. The four
// Total* fields are derived from Modules and are never set independently.
type CourseDraft struct {
	ID string `json:"id"`

	Title               string  `json:"title"`
	ShortDescription    string  `json:"shortDescription"`
	LongDescription     string  `json:"longDescription"`
	Price               float64 `json:"price"`
	PromotionalPrice    float64 `json:"promotionalPrice"`
	Level               string  `json:"level"`
	Language            string  `json:"language"`
	EnrollmentDeadline  string  `json:"enrollmentDeadline"` // date or empty
	Published           bool    `json:"published"`
	AccessType          string  `json:"accessType"`
	CertificateIncluded bool    `json:"certificateIncluded"`

	Category   *Reference `json:"category"`
	Instructor *Reference `json:"instructor"`

	Modules        []Module `json:"modules"`
	Tags           []string `json:"tags"`
	WhatYoullLearn []string `json:"whatYoullLearn"`
	Prerequisites  []string `json:"prerequisites"`
	Subtitles      []string `json:"subtitles"`

	Thumbnails  []ImagePayload `json:"thumbnails"`
	BannerImage *ImagePayload  `json:"bannerImage"`

	TotalDuration int `json:"totalDuration"` // minutes
	TotalLessons  int `json:"totalLessons"`
	TotalQuizzes  int `json:"totalQuizzes"`
	TotalProjects int `json:"totalProjects"`
}

// UsesInstructions reports whether the lesson type carries free-text content
// on the wire.
func (t LessonType) UsesInstructions() bool {
	switch t {
	case LessonArticle, LessonQuiz, LessonPractice, LessonProject:
		return true
	}
	return false
}

// Valid reports whether t is one of the known lesson types.
func (t LessonType) Valid() bool {
	switch t {
	case LessonVideo, LessonArticle, LessonQuiz, LessonPractice, LessonProject, LessonDownload:
		return true
	}
	return false
}
