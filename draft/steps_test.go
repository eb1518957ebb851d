package draft

import (
	"testing"

	"lmsadmin/models"
	courseModels "lmsadmin/models/course"

	"github.com/stretchr/testify/assert"
)

func TestBasicStepValidity(t *testing.T) {
	sess := models.Session{Role: models.RoleAdmin}
	d := &courseModels.CourseDraft{}

	assert.False(t, IsStepValid(d, StepBasic, sess))
	errs := StepErrors(d, StepBasic, sess)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "shortDescription")
	assert.Contains(t, errs, "category")

	d.Title = "Go from zero"
	d.ShortDescription = "A short one"
	d.Category = &courseModels.Reference{ID: "c1", Label: "Programming"}
	assert.True(t, IsStepValid(d, StepBasic, sess))
	assert.Empty(t, StepErrors(d, StepBasic, sess))
}

func TestInstructorStepAutoAssignForInstructors(t *testing.T) {
	d := &courseModels.CourseDraft{}

	admin := models.Session{Role: models.RoleAdmin}
	assert.False(t, IsStepValid(d, StepInstructor, admin))
	assert.Contains(t, StepErrors(d, StepInstructor, admin), "instructor")

	instructor := models.Session{UserID: "u7", Role: models.RoleInstructor}
	assert.True(t, IsStepValid(d, StepInstructor, instructor), "instructors are always their own assignee")

	d.Instructor = &courseModels.Reference{ID: "u9", Label: "Someone"}
	assert.True(t, IsStepValid(d, StepInstructor, admin))
}

func TestContentStepValidityGrowsWithTheDraft(t *testing.T) {
	sess := models.Session{Role: models.RoleAdmin}
	d := &courseModels.CourseDraft{}

	assert.False(t, IsStepValid(d, StepContent, sess), "no modules")

	m, _ := AddModule(d, "Basics", "")
	assert.False(t, IsStepValid(d, StepContent, sess), "module without lessons")
	assert.Equal(t, "Every module needs at least one lesson!", StepErrors(d, StepContent, sess)["modules"])

	_, err := AddLesson(d, m.ID, LessonInput{Title: "Welcome", Type: courseModels.LessonVideo, Duration: 10, VideoURL: "https://vid/1"})
	assert.NoError(t, err)
	assert.True(t, IsStepValid(d, StepContent, sess))
}

func TestContentStepCatchesQuizWithoutSelection(t *testing.T) {
	sess := models.Session{Role: models.RoleAdmin}
	d := &courseModels.CourseDraft{}
	modules := sampleModules()
	modules[0].Lessons[1].Quiz = nil
	setModules(d, modules)

	assert.False(t, IsStepValid(d, StepContent, sess))
	assert.Equal(t, "Every quiz lesson needs a selected quiz!", StepErrors(d, StepContent, sess)["modules"])
}

func TestMetadataAndMediaStepsAlwaysValid(t *testing.T) {
	sess := models.Session{Role: models.RoleStudent}
	d := &courseModels.CourseDraft{}

	assert.True(t, IsStepValid(d, StepMetadata, sess))
	assert.True(t, IsStepValid(d, StepMedia, sess))
}

func TestValidStep(t *testing.T) {
	for _, s := range StepOrder {
		assert.True(t, ValidStep(s))
	}
	assert.False(t, ValidStep(Step("pricing")))
}
