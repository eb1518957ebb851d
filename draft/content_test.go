package draft

import (
	"testing"

	courseModels "lmsadmin/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftWithModules(t *testing.T) *courseModels.CourseDraft {
	t.Helper()
	d := &courseModels.CourseDraft{}
	setModules(d, sampleModules())
	return d
}

func TestAddModule(t *testing.T) {
	d := &courseModels.CourseDraft{}

	m1, err := AddModule(d, "Intro", "getting started")
	require.NoError(t, err)
	m2, err := AddModule(d, "Deep dive", "")
	require.NoError(t, err)

	assert.Equal(t, 1, m1.Order)
	assert.Equal(t, 2, m2.Order)
	assert.True(t, IsTempID(m1.ID))
	assert.Equal(t, courseModels.StatusUnlocked, m1.Status)
	assert.Len(t, d.Modules, 2)

	_, err = AddModule(d, "", "no title")
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Len(t, d.Modules, 2)
}

func TestUpdateModulePreservesOrder(t *testing.T) {
	d := draftWithModules(t)

	require.NoError(t, UpdateModule(d, "m2", "Practice renamed", "hands on", courseModels.StatusLocked))

	assert.Equal(t, "Practice renamed", d.Modules[1].Title)
	assert.Equal(t, courseModels.StatusLocked, d.Modules[1].Status)
	assert.Equal(t, 2, d.Modules[1].Order)

	assert.ErrorIs(t, UpdateModule(d, "missing", "x", "", ""), ErrModuleNotFound)
	assert.ErrorIs(t, UpdateModule(d, "m1", "", "", ""), ErrTitleRequired)
}

func TestDeleteModuleRecomputesAggregates(t *testing.T) {
	d := draftWithModules(t)

	require.NoError(t, DeleteModule(d, "m1"))

	assert.Len(t, d.Modules, 1)
	assert.Equal(t, 3, d.TotalLessons)
	assert.Equal(t, 0, d.TotalQuizzes)
	assert.Equal(t, 55, d.TotalDuration)
}

func TestAddLessonAssignsOrderAndRecomputes(t *testing.T) {
	d := draftWithModules(t)

	added, err := AddLesson(d, "m1", LessonInput{Title: "Extras", Type: courseModels.LessonDownload, Duration: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, added.Order)
	assert.True(t, IsTempID(added.ID))
	assert.Equal(t, 6, d.TotalLessons)
	assert.Equal(t, 83, d.TotalDuration)
}

func TestAddQuizLessonRequiresQuiz(t *testing.T) {
	d := draftWithModules(t)

	_, err := AddLesson(d, "m1", LessonInput{Title: "Pop quiz", Type: courseModels.LessonQuiz})
	assert.ErrorIs(t, err, ErrQuizRequired)

	_, err = AddLesson(d, "m1", LessonInput{Title: "Pop quiz", Type: courseModels.LessonQuiz, Quiz: &courseModels.Reference{}})
	assert.ErrorIs(t, err, ErrQuizRequired)

	_, err = AddLesson(d, "m1", LessonInput{Title: "Pop quiz", Type: courseModels.LessonQuiz, Quiz: &courseModels.Reference{ID: "507f1f77bcf86cd799439012", Label: "Pop"}})
	assert.NoError(t, err)
}

func TestUpdateLessonTypeSwitchStripsPreviousFields(t *testing.T) {
	d := draftWithModules(t)

	// l2 is a quiz lesson; switching it to video must drop the quiz
	// selection and pick up the video URL.
	require.NoError(t, UpdateLesson(d, "m1", "l2", LessonInput{
		Title: "Checkpoint", Type: courseModels.LessonVideo, Duration: 15, VideoURL: "https://vid/2",
	}))

	l := d.Modules[0].Lessons[1]
	assert.Nil(t, l.Quiz)
	assert.Empty(t, l.Instructions)
	assert.Equal(t, "https://vid/2", l.VideoURL)
	assert.Equal(t, 2, l.Order, "edit preserves order")
	assert.Equal(t, 0, d.TotalQuizzes)

	// Switching back to quiz does not restore the prior selection.
	err := UpdateLesson(d, "m1", "l2", LessonInput{Title: "Checkpoint", Type: courseModels.LessonQuiz, Duration: 15})
	assert.ErrorIs(t, err, ErrQuizRequired)
}

func TestDeleteLesson(t *testing.T) {
	d := draftWithModules(t)

	require.NoError(t, DeleteLesson(d, "m2", "l4"))

	assert.Len(t, d.Modules[1].Lessons, 2)
	assert.Equal(t, 1, d.TotalProjects)
	assert.ErrorIs(t, DeleteLesson(d, "m2", "l4"), ErrLessonNotFound)
}

func TestReorderLessonRenumbersWholeModule(t *testing.T) {
	d := draftWithModules(t)

	// Move "Read up" (index 2) to the front of module m2.
	require.NoError(t, ReorderLesson(d, "m2", 2, 0))

	lessons := d.Modules[1].Lessons
	require.Len(t, lessons, 3)
	assert.Equal(t, []string{"l5", "l3", "l4"}, []string{lessons[0].ID, lessons[1].ID, lessons[2].ID})
	for i, l := range lessons {
		assert.Equal(t, i+1, l.Order, "order values are exactly 1..N in the new sequence")
	}
}

func TestReorderLessonBounds(t *testing.T) {
	d := draftWithModules(t)

	assert.ErrorIs(t, ReorderLesson(d, "m2", 0, 3), ErrBadReorderIndex)
	assert.ErrorIs(t, ReorderLesson(d, "m2", -1, 0), ErrBadReorderIndex)
	assert.ErrorIs(t, ReorderLesson(d, "nope", 0, 1), ErrModuleNotFound)
}
