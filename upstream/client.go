package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	courseModels "lmsadmin/models/course"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized = errors.New("upstream rejected the session token")
	ErrForbidden    = errors.New("upstream denied access")
	ErrNotFound     = errors.New("upstream resource not found")
)

// FieldErrors is a structured per-field validation error returned by the
// upstream API on a rejected document. It maps straight back onto the same
// field-error state the client-side validators use.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed on: " + strings.Join(keys, ", ")
}

// Client wraps the remote LMS API. Every call forwards the caller's bearer
// token; this service holds no credentials of its own.
type Client struct {
	http *resty.Client
}

// NewClient builds a client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *Client) req(token string) *resty.Request {
	return c.http.R().SetHeader("Authorization", "Bearer "+token)
}

// check maps upstream status codes onto the error taxonomy. A 422 body of
// the form {"errors": {field: message}} becomes FieldErrors.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		var body struct {
			Errors map[string]string `json:"errors"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil && len(body.Errors) > 0 {
			return FieldErrors(body.Errors)
		}
		return fmt.Errorf("upstream rejected the request: %s", resp.String())
	}
	return fmt.Errorf("upstream error %d: %s", resp.StatusCode(), resp.String())
}

// GetCourse fetches a course document.
func (c *Client) GetCourse(token, courseID string) (*courseModels.WireCourse, error) {
	var doc courseModels.WireCourse
	resp, err := c.req(token).SetResult(&doc).Get("/courses/" + courseID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateCourse PUTs the whole normalized course document.
func (c *Client) UpdateCourse(token, courseID string, doc *courseModels.WireCourse) (*courseModels.WireCourse, error) {
	var updated courseModels.WireCourse
	resp, err := c.req(token).SetBody(doc).SetResult(&updated).Put("/courses/" + courseID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListCategories fetches the selectable categories.
func (c *Client) ListCategories(token string) ([]Category, error) {
	var out []Category
	resp, err := c.req(token).SetResult(&out).Get("/categories")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInstructors fetches users filtered to the instructor role.
func (c *Client) ListInstructors(token string) ([]Instructor, error) {
	var out []Instructor
	resp, err := c.req(token).SetQueryParam("role", "instructor").SetResult(&out).Get("/users")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListQuizzes fetches the selectable quiz references.
func (c *Client) ListQuizzes(token string) ([]QuizSummary, error) {
	var out []QuizSummary
	resp, err := c.req(token).SetResult(&out).Get("/quizzes")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuiz fetches a full quiz for the playback runtime.
func (c *Client) GetQuiz(token, quizID string) (*Quiz, error) {
	var out Quiz
	resp, err := c.req(token).SetResult(&out).Get("/quizzes/" + quizID)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartQuizAttempt requests a server-issued attempt id and time limit.
func (c *Client) StartQuizAttempt(token, quizID string) (*AttemptStart, error) {
	var out AttemptStart
	resp, err := c.req(token).SetResult(&out).Post("/quizzes/" + quizID + "/attempts")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitQuizAttempt submits the recorded answers for grading.
func (c *Client) SubmitQuizAttempt(token, quizID, attemptID string, answers map[string]string) (*AttemptResult, error) {
	var out AttemptResult
	resp, err := c.req(token).
		SetBody(map[string]interface{}{"answers": answers}).
		SetResult(&out).
		Post("/quizzes/" + quizID + "/attempts/" + attemptID + "/submit")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCourseProgress fetches the calling student's progress in a course.
func (c *Client) GetCourseProgress(token, courseID string) (*CompletionResult, error) {
	var out CompletionResult
	resp, err := c.req(token).SetResult(&out).Get("/courses/" + courseID + "/progress")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteLesson persists a lesson completion and returns the updated course
// progress percentage.
func (c *Client) CompleteLesson(token, courseID, lessonID string) (*CompletionResult, error) {
	var out CompletionResult
	resp, err := c.req(token).SetResult(&out).Post("/courses/" + courseID + "/lessons/" + lessonID + "/complete")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCourseEnrollments fetches the enrollments of one course.
func (c *Client) ListCourseEnrollments(token, courseID string) ([]Enrollment, error) {
	var out []Enrollment
	resp, err := c.req(token).SetResult(&out).Get("/courses/" + courseID + "/enrollments")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyEnrollments fetches the calling student's enrollments.
func (c *Client) ListMyEnrollments(token string) ([]Enrollment, error) {
	var out []Enrollment
	resp, err := c.req(token).SetResult(&out).Get("/enrollments")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCourses fetches course summaries, optionally filtered by instructor.
func (c *Client) ListCourses(token, instructorID string) ([]courseModels.WireCourse, error) {
	req := c.req(token)
	if instructorID != "" {
		req.SetQueryParam("instructor", instructorID)
	}
	var out []courseModels.WireCourse
	resp, err := req.SetResult(&out).Get("/courses")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHomepageContent fetches the homepage document.
func (c *Client) GetHomepageContent(token string) (*HomepageContent, error) {
	var out HomepageContent
	resp, err := c.req(token).SetResult(&out).Get("/homepage-content")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHomepageContent PUTs the homepage document.
func (c *Client) UpdateHomepageContent(token string, content *HomepageContent) error {
	resp, err := c.req(token).SetBody(content).Put("/homepage-content")
	return check(resp, err)
}

// ListLiveSessions fetches the scheduled live classes.
func (c *Client) ListLiveSessions(token string) ([]LiveSession, error) {
	var out []LiveSession
	resp, err := c.req(token).SetResult(&out).Get("/live-sessions")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDashboardStats fetches the aggregate stats block. Scope is "admin" or
// "instructor"; the upstream API scopes the numbers to the caller.
func (c *Client) GetDashboardStats(token, scope string) (*DashboardStats, error) {
	var out DashboardStats
	resp, err := c.req(token).SetQueryParam("scope", scope).SetResult(&out).Get("/dashboard/stats")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
