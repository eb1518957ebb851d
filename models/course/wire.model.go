package course

import "encoding/json"

// Wire documents mirror the upstream LMS API's course shape. Durations are
// in seconds, identifiers live under _id, and lesson fields are included
// only for the types that use them.

// WireImage marshals as a plain URL string for persisted images and as a
// {data, contentType, size} object for newly staged ones, matching what the
// upstream API accepts in image positions.
type WireImage struct {
	URL         string `json:"-"`
	Data        string `json:"data,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

func (w WireImage) MarshalJSON() ([]byte, error) {
	if w.URL != "" {
		return json.Marshal(w.URL)
	}
	type staged struct {
		Data        string `json:"data"`
		ContentType string `json:"contentType"`
		Size        int64  `json:"size"`
	}
	return json.Marshal(staged{Data: w.Data, ContentType: w.ContentType, Size: w.Size})
}

func (w *WireImage) UnmarshalJSON(b []byte) error {
	var url string
	if err := json.Unmarshal(b, &url); err == nil {
		w.URL = url
		return nil
	}
	type staged struct {
		Data        string `json:"data"`
		ContentType string `json:"contentType"`
		Size        int64  `json:"size"`
	}
	var s staged
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	w.Data, w.ContentType, w.Size = s.Data, s.ContentType, s.Size
	return nil
}

// WireLessonContent holds free-text content for textual lesson types.
type WireLessonContent struct {
	Instructions string `json:"instructions"`
}

// WireLesson is one lesson on the wire. ID is empty for entities created
// client-side (their temporary ids are stripped before submit).
type WireLesson struct {
	ID          string             `json:"_id,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Type        LessonType         `json:"type"`
	Duration    int                `json:"duration"` // seconds
	Order       int                `json:"order"`
	IsPreview   bool               `json:"isPreview"`
	Status      string             `json:"status,omitempty"`
	VideoURL    string             `json:"videoUrl,omitempty"`
	QuizID      string             `json:"quizId,omitempty"`
	Content     *WireLessonContent `json:"content,omitempty"`
}

// WireModule is one module on the wire.
type WireModule struct {
	ID          string       `json:"_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Order       int          `json:"order"`
	Status      string       `json:"status,omitempty"`
	Lessons     []WireLesson `json:"lessons"`
}

// WireCourse is the whole-document payload PUT to the upstream API on every
// tab submit, and the shape the API returns on fetch.
type WireCourse struct {
	ID string `json:"_id,omitempty"`

	Title               string  `json:"title"`
	ShortDescription    string  `json:"shortDescription"`
	LongDescription     string  `json:"longDescription,omitempty"`
	Price               float64 `json:"price"`
	PromotionalPrice    float64 `json:"promotionalPrice,omitempty"`
	Level               string  `json:"level,omitempty"`
	Language            string  `json:"language,omitempty"`
	EnrollmentDeadline  string  `json:"enrollmentDeadline,omitempty"`
	Published           bool    `json:"published"`
	AccessType          string  `json:"accessType,omitempty"`
	CertificateIncluded bool    `json:"certificateIncluded"`

	Category   string `json:"category,omitempty"`   // category id
	Instructor string `json:"instructor,omitempty"` // instructor id

	Modules        []WireModule `json:"modules"`
	Tags           []string     `json:"tags,omitempty"`
	WhatYoullLearn []string     `json:"whatYoullLearn,omitempty"`
	Prerequisites  []string     `json:"prerequisites,omitempty"`
	Subtitles      []string     `json:"subtitles,omitempty"`

	Thumbnails  []WireImage `json:"thumbnails,omitempty"`
	BannerImage *WireImage  `json:"bannerImage,omitempty"`

	TotalDuration int `json:"totalDuration"` // seconds
	TotalLessons  int `json:"totalLessons"`
	TotalQuizzes  int `json:"totalQuizzes"`
	TotalProjects int `json:"totalProjects"`
}
