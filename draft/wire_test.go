package draft

import (
	"testing"

	courseModels "lmsadmin/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWireCourse() *courseModels.WireCourse {
	return &courseModels.WireCourse{
		ID:               "507f1f77bcf86cd799439001",
		Title:            "Go from zero",
		ShortDescription: "A short one",
		Category:         "cat1",
		Instructor:       "inst1",
		Published:        true,
		TotalDuration:    1500,
		TotalLessons:     2,
		TotalQuizzes:     1,
		Modules: []courseModels.WireModule{
			{
				ID: "507f1f77bcf86cd799439002", Title: "Basics", Order: 1, Status: courseModels.StatusUnlocked,
				Lessons: []courseModels.WireLesson{
					{ID: "507f1f77bcf86cd799439003", Title: "Welcome", Type: courseModels.LessonVideo, Duration: 600, Order: 1, VideoURL: "https://vid/1"},
					{ID: "507f1f77bcf86cd799439004", Title: "Checkpoint", Type: courseModels.LessonQuiz, Duration: 900, Order: 2, QuizID: "507f1f77bcf86cd799439011",
						Content: &courseModels.WireLessonContent{Instructions: "Answer everything."}},
				},
			},
		},
		Thumbnails: []courseModels.WireImage{{URL: "https://cdn/a"}},
	}
}

func sampleLabels() (categories, instructors, quizzes map[string]string) {
	return map[string]string{"cat1": "Programming"},
		map[string]string{"inst1": "Ada"},
		map[string]string{"507f1f77bcf86cd799439011": "Checkpoint quiz"}
}

func TestFromWireResolvesReferencesAndMinutes(t *testing.T) {
	cats, insts, quizzes := sampleLabels()
	d := FromWire(sampleWireCourse(), cats, insts, quizzes)

	require.NotNil(t, d.Category)
	assert.Equal(t, "Programming", d.Category.Label)
	require.NotNil(t, d.Instructor)
	assert.Equal(t, "Ada", d.Instructor.Label)

	require.Len(t, d.Modules, 1)
	lessons := d.Modules[0].Lessons
	require.Len(t, lessons, 2)
	assert.Equal(t, 10, lessons[0].Duration, "seconds become minutes")
	assert.Equal(t, 15, lessons[1].Duration)
	require.NotNil(t, lessons[1].Quiz)
	assert.Equal(t, "Checkpoint quiz", lessons[1].Quiz.Label)
	assert.Equal(t, "Answer everything.", lessons[1].Instructions)

	// Aggregates are recomputed locally, not trusted from the document.
	assert.Equal(t, 25, d.TotalDuration)
	assert.Equal(t, 2, d.TotalLessons)
	assert.Equal(t, 1, d.TotalQuizzes)
}

func TestBuildWireDocumentNormalizes(t *testing.T) {
	cats, insts, quizzes := sampleLabels()
	d := FromWire(sampleWireCourse(), cats, insts, quizzes)

	doc := BuildWireDocument(d)

	assert.Equal(t, "cat1", doc.Category, "references flatten back to ids")
	assert.Equal(t, "inst1", doc.Instructor)
	assert.Equal(t, 1500, doc.TotalDuration, "minutes become seconds")

	lessons := doc.Modules[0].Lessons
	assert.Equal(t, 600, lessons[0].Duration)
	assert.Equal(t, "https://vid/1", lessons[0].VideoURL)
	assert.Empty(t, lessons[0].QuizID, "video lessons never carry a quizId")
	assert.Nil(t, lessons[0].Content)
	assert.Equal(t, "507f1f77bcf86cd799439011", lessons[1].QuizID)
	assert.Empty(t, lessons[1].VideoURL)
	require.NotNil(t, lessons[1].Content)
	assert.Equal(t, "Answer everything.", lessons[1].Content.Instructions)
}

// Loading a course and submitting it with zero edits must produce a document
// equivalent to the fetched one.
func TestWireRoundTripWithoutEdits(t *testing.T) {
	cats, insts, quizzes := sampleLabels()
	src := sampleWireCourse()

	got := BuildWireDocument(FromWire(src, cats, insts, quizzes))

	assert.Equal(t, src, got)
}

func TestBuildWireDocumentStripsTempIDs(t *testing.T) {
	d := &courseModels.CourseDraft{Title: "New course"}
	m, err := AddModule(d, "Basics", "")
	require.NoError(t, err)
	_, err = AddLesson(d, m.ID, LessonInput{Title: "Welcome", Type: courseModels.LessonVideo, Duration: 5, VideoURL: "https://vid/1"})
	require.NoError(t, err)

	doc := BuildWireDocument(d)

	assert.Empty(t, doc.Modules[0].ID, "temporary ids never reach the server")
	assert.Empty(t, doc.Modules[0].Lessons[0].ID)
}

func TestBuildWireDocumentForwardsNonHexQuizID(t *testing.T) {
	d := &courseModels.CourseDraft{}
	setModules(d, []courseModels.Module{{
		ID: "m1", Title: "Basics", Order: 1,
		Lessons: []courseModels.Lesson{{
			ID: "l1", Title: "Checkpoint", Type: courseModels.LessonQuiz, Duration: 5, Order: 1,
			Quiz: &courseModels.Reference{ID: "abc", Label: "Odd quiz"},
		}},
	}})

	doc := BuildWireDocument(d)

	// The malformed id is the server's to reject; the client only warns.
	assert.Equal(t, "abc", doc.Modules[0].Lessons[0].QuizID)
}

func TestBuildWireDocumentDropsRemovedPersistedImages(t *testing.T) {
	banner := courseModels.ImagePayload{URL: "https://cdn/banner", Removed: true}
	d := &courseModels.CourseDraft{
		Thumbnails: []courseModels.ImagePayload{
			{URL: "https://cdn/keep"},
			{URL: "https://cdn/gone", Removed: true},
			{Data: "data:image/png;base64,xx", ContentType: "image/png", Size: 42},
		},
		BannerImage: &banner,
	}

	doc := BuildWireDocument(d)

	require.Len(t, doc.Thumbnails, 2)
	assert.Equal(t, "https://cdn/keep", doc.Thumbnails[0].URL)
	assert.Equal(t, "data:image/png;base64,xx", doc.Thumbnails[1].Data)
	assert.Nil(t, doc.BannerImage)
}
