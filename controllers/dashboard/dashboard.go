package controllers

import (
	"errors"
	"log"

	"lmsadmin/middleware"
	"lmsadmin/upstream"

	"github.com/gofiber/fiber/v2"
)

// DashboardController serves the read-only, per-role dashboard data. It
// fetches and renders; nothing here shares state with the editor.
type DashboardController struct {
	Api *upstream.Client
}

// AdminDashboard returns platform-wide stats with the latest live sessions.
func (ctrl *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	token := middleware.TokenFromCtx(c)

	stats, err := ctrl.Api.GetDashboardStats(token, "admin")
	if err != nil {
		return dashboardErrorResponse(c, err)
	}
	sessions, err := ctrl.Api.ListLiveSessions(token)
	if err != nil {
		return dashboardErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats":        stats,
		"liveSessions": sessions,
	})
}

// InstructorDashboard returns the calling instructor's courses and stats.
func (ctrl *DashboardController) InstructorDashboard(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	token := middleware.TokenFromCtx(c)

	stats, err := ctrl.Api.GetDashboardStats(token, "instructor")
	if err != nil {
		return dashboardErrorResponse(c, err)
	}
	courses, err := ctrl.Api.ListCourses(token, sess.UserID)
	if err != nil {
		return dashboardErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats":   stats,
		"courses": courses,
	})
}

// CourseEnrollments lists the enrollments of one of the caller's courses.
func (ctrl *DashboardController) CourseEnrollments(c *fiber.Ctx) error {
	token := middleware.TokenFromCtx(c)
	courseID := c.Locals("courseID").(string)

	enrollments, err := ctrl.Api.ListCourseEnrollments(token, courseID)
	if err != nil {
		return dashboardErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// StudentDashboard returns the student's enrollments and upcoming live
// sessions.
func (ctrl *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	token := middleware.TokenFromCtx(c)

	enrollments, err := ctrl.Api.ListMyEnrollments(token)
	if err != nil {
		return dashboardErrorResponse(c, err)
	}
	sessions, err := ctrl.Api.ListLiveSessions(token)
	if err != nil {
		return dashboardErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"enrollments":  enrollments,
		"liveSessions": sessions,
	})
}

func dashboardErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again!", nil)
	case errors.Is(err, upstream.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this data!", nil)
	case errors.Is(err, upstream.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	}
	log.Printf("Upstream call failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reach the LMS API!", nil)
}
