package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewActivityController(logger *slog.Logger, svc domain.DirectoryService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// GetActivities godoc
// @Summary List all activities
// @Description Returns the full catalog of extracurricular activities keyed by name, each with description, schedule, max_participants, and the current participant roster in signup order.
// @Tags activities
// @Produce json
// @Success 200 {object} domain.Catalog
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities [get]
func (c *ActivityController) GetActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, catalog)
}

// Signup godoc
// @Summary Sign a student up for an activity
// @Description Adds the student's email to the activity's roster. Activity names are matched literally (case-sensitive); the email is accepted as an opaque identifier with no format validation.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Missing email or student is already signed up"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	if activityName == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, "Missing activity name")
		return
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, "Missing email")
		return
	}

	if err := c.Service.Signup(r.Context(), activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteDetail(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			helpers.WriteDetail(w, http.StatusBadRequest, "Student is already signed up")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	helpers.WriteMessage(w, http.StatusOK, fmt.Sprintf("Signed up %s for %s", email, activityName))
}

// Unregister godoc
// @Summary Remove a student from an activity
// @Description Removes the student's email from the activity's roster. Fails if the student never signed up.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Missing email or student is not signed up"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities/{activityName}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	if activityName == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, "Missing activity name")
		return
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteDetail(w, http.StatusBadRequest, "Missing email")
		return
	}

	if err := c.Service.Unregister(r.Context(), activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteDetail(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrNotSignedUp) {
			helpers.WriteDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	helpers.WriteMessage(w, http.StatusOK, fmt.Sprintf("Unregistered %s from %s", email, activityName))
}

// Root redirects to the static index page, matching the original deployment.
func (c *ActivityController) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
