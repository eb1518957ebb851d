package draft

import (
	"testing"

	courseModels "lmsadmin/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModules() []courseModels.Module {
	return []courseModels.Module{
		{
			ID: "m1", Title: "Basics", Order: 1, Status: courseModels.StatusUnlocked,
			Lessons: []courseModels.Lesson{
				{ID: "l1", Title: "Welcome", Type: courseModels.LessonVideo, Duration: 10, Order: 1, VideoURL: "https://vid/1"},
				{ID: "l2", Title: "Checkpoint", Type: courseModels.LessonQuiz, Duration: 15, Order: 2, Quiz: &courseModels.Reference{ID: "507f1f77bcf86cd799439011", Label: "Checkpoint quiz"}},
			},
		},
		{
			ID: "m2", Title: "Practice", Order: 2, Status: courseModels.StatusUnlocked,
			Lessons: []courseModels.Lesson{
				{ID: "l3", Title: "Build it", Type: courseModels.LessonProject, Duration: 30, Order: 1},
				{ID: "l4", Title: "Try it", Type: courseModels.LessonPractice, Duration: 20, Order: 2},
				{ID: "l5", Title: "Read up", Type: courseModels.LessonArticle, Duration: 5, Order: 3, Instructions: "Read the chapter."},
			},
		},
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleModules())

	assert.Equal(t, 80, totals.Duration)
	assert.Equal(t, 5, totals.Lessons)
	assert.Equal(t, 1, totals.Quizzes)
	assert.Equal(t, 2, totals.Projects) // project + practice
}

func TestComputeTotalsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil))
	assert.Equal(t, Totals{}, ComputeTotals([]courseModels.Module{{ID: "m1", Title: "Empty"}}))
}

// Aggregates must equal a pure recomputation from the current modules no
// matter what sequence of updates produced them.
func TestSetModulesNoOrderDependence(t *testing.T) {
	d := &courseModels.CourseDraft{}

	setModules(d, sampleModules())
	setModules(d, nil)
	setModules(d, sampleModules()[1:])

	want := ComputeTotals(d.Modules)
	assert.Equal(t, want.Duration, d.TotalDuration)
	assert.Equal(t, want.Lessons, d.TotalLessons)
	assert.Equal(t, want.Quizzes, d.TotalQuizzes)
	assert.Equal(t, want.Projects, d.TotalProjects)
	assert.Equal(t, 55, d.TotalDuration)
	assert.Equal(t, 3, d.TotalLessons)
}

func TestUpdateFieldModulesRecomputesAggregates(t *testing.T) {
	d := &courseModels.CourseDraft{}

	err := UpdateField(d, "modules", mustJSON(t, sampleModules()))
	require.NoError(t, err)

	assert.Len(t, d.Modules, 2)
	assert.Equal(t, 80, d.TotalDuration)
	assert.Equal(t, 5, d.TotalLessons)
	assert.Equal(t, 1, d.TotalQuizzes)
	assert.Equal(t, 2, d.TotalProjects)
}

func TestUpdateFieldScalarsAndRejects(t *testing.T) {
	d := &courseModels.CourseDraft{}

	require.NoError(t, UpdateField(d, "title", []byte(`"Go from zero"`)))
	require.NoError(t, UpdateField(d, "price", []byte(`49.99`)))
	require.NoError(t, UpdateField(d, "published", []byte(`true`)))
	require.NoError(t, UpdateField(d, "category", []byte(`{"id":"c1","label":"Programming"}`)))

	assert.Equal(t, "Go from zero", d.Title)
	assert.Equal(t, 49.99, d.Price)
	assert.True(t, d.Published)
	assert.Equal(t, "c1", d.Category.ID)

	assert.Error(t, UpdateField(d, "totalLessons", []byte(`99`)), "derived fields are never set directly")
	assert.Error(t, UpdateField(d, "title", []byte(`{notjson`)))
	assert.Equal(t, "Go from zero", d.Title, "failed update leaves the draft untouched")
}
