package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lmsadmin/models"
	"lmsadmin/playback"
	"lmsadmin/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submitTestApp wires SubmitAttempt behind a stand-in for the auth and
// course-id middleware so the handler's own guards are what is under test.
func submitTestApp(ctrl *PlayerController) *fiber.App {
	app := fiber.New()
	app.Post("/player/course/:id/attempt/submit", func(c *fiber.Ctx) error {
		c.Locals("session", models.Session{UserID: "u1", Name: "Kim", Role: models.RoleStudent})
		c.Locals("token", "tok")
		c.Locals("courseID", c.Params("id"))
		return c.Next()
	}, ctrl.SubmitAttempt)
	return app
}

func postSubmit(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/player/course/c1/attempt/submit", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSubmitAttemptWithoutAttemptConflicts(t *testing.T) {
	ctrl := &PlayerController{
		Api:     upstream.NewClient("http://127.0.0.1:1", time.Second),
		Players: playback.NewStore(),
	}
	ctrl.Players.GetOrCreate(playback.Key("c1", "u1"), "c1", "u1")

	resp := postSubmit(t, submitTestApp(ctrl))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitAttemptAfterConclusionConflicts(t *testing.T) {
	ctrl := &PlayerController{
		Api:     upstream.NewClient("http://127.0.0.1:1", time.Second),
		Players: playback.NewStore(),
	}
	playerSession := ctrl.Players.GetOrCreate(playback.Key("c1", "u1"), "c1", "u1")

	attempt := playback.StartAttempt("att1", "quiz1", "l2", time.Minute, []string{"q1"}, nil)
	require.NoError(t, attempt.RecordAnswer("q1", "opt-a"))
	playerSession.SetAttempt(attempt)

	// Countdown (or a racing submit) got there first.
	_, ok := attempt.Conclude()
	require.True(t, ok)

	// Fully answered, but the attempt is over: a conflict, not a
	// validation failure.
	resp := postSubmit(t, submitTestApp(ctrl))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitAttemptWithUnansweredQuestions(t *testing.T) {
	ctrl := &PlayerController{
		Api:     upstream.NewClient("http://127.0.0.1:1", time.Second),
		Players: playback.NewStore(),
	}
	playerSession := ctrl.Players.GetOrCreate(playback.Key("c1", "u1"), "c1", "u1")

	attempt := playback.StartAttempt("att1", "quiz1", "l2", time.Minute, []string{"q1", "q2"}, nil)
	defer attempt.Cancel()
	require.NoError(t, attempt.RecordAnswer("q1", "opt-a"))
	playerSession.SetAttempt(attempt)

	resp := postSubmit(t, submitTestApp(ctrl))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, playback.AttemptStarted, attempt.State(), "a refused submit leaves the attempt running")
}
