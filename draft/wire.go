package draft

import (
	"log"
	"regexp"

	courseModels "lmsadmin/models/course"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// BuildWireDocument normalizes the draft into the upstream API's course
// shape: lesson durations go from minutes to seconds, temporary ids are
// stripped, and each lesson carries only the fields its type uses. A quizId
// that is not a 24-character hex identifier is forwarded anyway so the
// server-side validation reports it; only a warning is logged here.
func BuildWireDocument(d *courseModels.CourseDraft) *courseModels.WireCourse {
	doc := &courseModels.WireCourse{
		ID:                  wireID(d.ID),
		Title:               d.Title,
		ShortDescription:    d.ShortDescription,
		LongDescription:     d.LongDescription,
		Price:               d.Price,
		PromotionalPrice:    d.PromotionalPrice,
		Level:               d.Level,
		Language:            d.Language,
		EnrollmentDeadline:  d.EnrollmentDeadline,
		Published:           d.Published,
		AccessType:          d.AccessType,
		CertificateIncluded: d.CertificateIncluded,
		Tags:                d.Tags,
		WhatYoullLearn:      d.WhatYoullLearn,
		Prerequisites:       d.Prerequisites,
		Subtitles:           d.Subtitles,
		TotalDuration:       d.TotalDuration * 60,
		TotalLessons:        d.TotalLessons,
		TotalQuizzes:        d.TotalQuizzes,
		TotalProjects:       d.TotalProjects,
	}
	if d.Category != nil {
		doc.Category = d.Category.ID
	}
	if d.Instructor != nil {
		doc.Instructor = d.Instructor.ID
	}

	doc.Modules = make([]courseModels.WireModule, len(d.Modules))
	for i, m := range d.Modules {
		wm := courseModels.WireModule{
			ID:          wireID(m.ID),
			Title:       m.Title,
			Description: m.Description,
			Order:       m.Order,
			Status:      m.Status,
			Lessons:     make([]courseModels.WireLesson, len(m.Lessons)),
		}
		for j, l := range m.Lessons {
			wm.Lessons[j] = wireLesson(l)
		}
		doc.Modules[i] = wm
	}

	for _, t := range d.Thumbnails {
		if img, ok := wireImage(t); ok {
			doc.Thumbnails = append(doc.Thumbnails, img)
		}
	}
	if d.BannerImage != nil {
		if img, ok := wireImage(*d.BannerImage); ok {
			doc.BannerImage = &img
		}
	}
	return doc
}

func wireLesson(l courseModels.Lesson) courseModels.WireLesson {
	wl := courseModels.WireLesson{
		ID:          wireID(l.ID),
		Title:       l.Title,
		Description: l.Description,
		Type:        l.Type,
		Duration:    l.Duration * 60,
		Order:       l.Order,
		IsPreview:   l.IsPreview,
		Status:      l.Status,
	}
	switch l.Type {
	case courseModels.LessonVideo:
		wl.VideoURL = l.VideoURL
	case courseModels.LessonQuiz:
		if l.Quiz != nil {
			wl.QuizID = l.Quiz.ID
			if !objectIDPattern.MatchString(l.Quiz.ID) {
				log.Printf("Lesson %q carries a non-hex quiz id %q; forwarding for server-side validation", l.Title, l.Quiz.ID)
			}
		}
	}
	if l.Type.UsesInstructions() && l.Instructions != "" {
		wl.Content = &courseModels.WireLessonContent{Instructions: l.Instructions}
	}
	return wl
}

// wireImage maps a draft image to its wire form. Persisted images marked
// removed are dropped; staged images always go out as data payloads.
func wireImage(p courseModels.ImagePayload) (courseModels.WireImage, bool) {
	if p.Persisted() {
		if p.Removed {
			return courseModels.WireImage{}, false
		}
		return courseModels.WireImage{URL: p.URL}, true
	}
	return courseModels.WireImage{Data: p.Data, ContentType: p.ContentType, Size: p.Size}, true
}

func wireID(id string) string {
	if IsTempID(id) {
		return ""
	}
	return id
}

// FromWire builds the editing draft from a fetched course document. Lesson
// durations come back as minutes and quiz ids are resolved into display-ready
// references against the quiz list; category and instructor ids resolve the
// same way against their lists.
func FromWire(doc *courseModels.WireCourse, categoryLabels, instructorLabels, quizLabels map[string]string) *courseModels.CourseDraft {
	d := &courseModels.CourseDraft{
		ID:                  doc.ID,
		Title:               doc.Title,
		ShortDescription:    doc.ShortDescription,
		LongDescription:     doc.LongDescription,
		Price:               doc.Price,
		PromotionalPrice:    doc.PromotionalPrice,
		Level:               doc.Level,
		Language:            doc.Language,
		EnrollmentDeadline:  doc.EnrollmentDeadline,
		Published:           doc.Published,
		AccessType:          doc.AccessType,
		CertificateIncluded: doc.CertificateIncluded,
		Tags:                doc.Tags,
		WhatYoullLearn:      doc.WhatYoullLearn,
		Prerequisites:       doc.Prerequisites,
		Subtitles:           doc.Subtitles,
	}
	if doc.Category != "" {
		d.Category = &courseModels.Reference{ID: doc.Category, Label: categoryLabels[doc.Category]}
	}
	if doc.Instructor != "" {
		d.Instructor = &courseModels.Reference{ID: doc.Instructor, Label: instructorLabels[doc.Instructor]}
	}

	modules := make([]courseModels.Module, len(doc.Modules))
	for i, wm := range doc.Modules {
		m := courseModels.Module{
			ID:          wm.ID,
			Title:       wm.Title,
			Description: wm.Description,
			Order:       wm.Order,
			Status:      wm.Status,
			Lessons:     make([]courseModels.Lesson, len(wm.Lessons)),
		}
		for j, wl := range wm.Lessons {
			l := courseModels.Lesson{
				ID:          wl.ID,
				Title:       wl.Title,
				Description: wl.Description,
				Type:        wl.Type,
				Duration:    wl.Duration / 60,
				Order:       wl.Order,
				IsPreview:   wl.IsPreview,
				Status:      wl.Status,
			}
			switch wl.Type {
			case courseModels.LessonVideo:
				l.VideoURL = wl.VideoURL
			case courseModels.LessonQuiz:
				if wl.QuizID != "" {
					l.Quiz = &courseModels.Reference{ID: wl.QuizID, Label: quizLabels[wl.QuizID]}
				}
			}
			if wl.Content != nil {
				l.Instructions = wl.Content.Instructions
			}
			m.Lessons[j] = l
		}
		modules[i] = m
	}
	setModules(d, modules)

	for _, img := range doc.Thumbnails {
		d.Thumbnails = append(d.Thumbnails, draftImage(img))
	}
	if doc.BannerImage != nil {
		banner := draftImage(*doc.BannerImage)
		d.BannerImage = &banner
	}
	return d
}

func draftImage(w courseModels.WireImage) courseModels.ImagePayload {
	return courseModels.ImagePayload{
		URL:         w.URL,
		Data:        w.Data,
		ContentType: w.ContentType,
		Size:        w.Size,
	}
}
