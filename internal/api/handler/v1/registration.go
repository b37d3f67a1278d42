package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/course-portal-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/course-portal-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/service"
)

type RegistrationService interface {
	Stats(ctx context.Context) (domain.PortalStats, error)

	ListCourseRegistrations(ctx context.Context) ([]domain.CourseRegistration, error)
	ListCourseRegistrationViews(ctx context.Context) ([]domain.CourseRegistrationView, error)
	GetCourseRegistration(ctx context.Context, id uint) (domain.CourseRegistration, error)
	RegisterForCourse(ctx context.Context, in domain.InsertCourseRegistration) (domain.CourseRegistration, error)
	UpdateCourseRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.CourseRegistration, error)
	DeleteCourseRegistration(ctx context.Context, id uint) error

	ListTourRegistrations(ctx context.Context) ([]domain.TourRegistration, error)
	GetTourRegistration(ctx context.Context, id uint) (domain.TourRegistration, error)
	RegisterForTour(ctx context.Context, in domain.InsertTourRegistration) (domain.TourRegistration, error)
	UpdateTourRegistrationStatus(ctx context.Context, id uint, status domain.RegistrationStatus) (domain.TourRegistration, error)
	DeleteTourRegistration(ctx context.Context, id uint) error
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// bindStatus reads and validates a {status} body.
func bindStatus(ctx *gin.Context) (domain.RegistrationStatus, *response.Err) {
	var req request.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return "", response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return "", response.ErrValidation(err)
	}

	status, err := domain.ParseRegistrationStatus(req.Status)
	if err != nil {
		return "", response.ErrBadRequest(err)
	}

	return status, nil
}

// HandleGetCourseRegistrations godoc
// @Summary      List course registrations
// @Tags         course-registrations
// @Produce      json
// @Success      200  {array}   domain.CourseRegistration
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /course-registrations [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetCourseRegistrations(ctx *gin.Context) {
	regs, err := h.svc.ListCourseRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCourseRegistrations -> h.svc.ListCourseRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleGetCourseRegistrationViews godoc
// @Summary      List course registrations with course names
// @Description  Registrations whose course no longer exists are labelled "Curso desconocido".
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.CourseRegistrationView
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/course-registrations [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetCourseRegistrationViews(ctx *gin.Context) {
	views, err := h.svc.ListCourseRegistrationViews(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCourseRegistrationViews -> h.svc.ListCourseRegistrationViews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// HandleGetStats godoc
// @Summary      Portal statistics
// @Description  Counts of courses, tours and registrations, registrations split by status.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.PortalStats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/stats [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleGetCourseRegistration godoc
// @Summary      Get a course registration
// @Tags         course-registrations
// @Produce      json
// @Param        registrationID  path      int  true  "Registration ID"
// @Success      200             {object}  domain.CourseRegistration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Router       /course-registrations/{registrationID} [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetCourseRegistration(ctx *gin.Context) {
	id, respErr := idParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reg, err := h.svc.GetCourseRegistration(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCourseRegistration -> h.svc.GetCourseRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleCreateCourseRegistration godoc
// @Summary      Register for a course
// @Description  New registrations always start as pending. The course id is not checked.
// @Tags         course-registrations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CourseRegistrationRequest  true  "request body"
// @Success      201      {object}  domain.CourseRegistration
// @Failure      400      {object}  response.Err
// @Failure      429      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /course-registrations [post]
func (h *RegistrationHandler) HandleCreateCourseRegistration(ctx *gin.Context) {
	var req request.CourseRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	reg, err := h.svc.RegisterForCourse(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCourseRegistration -> h.svc.RegisterForCourse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleUpdateCourseRegistrationStatus godoc
// @Summary      Change a course registration status
// @Tags         course-registrations
// @Accept       json
// @Produce      json
// @Param        registrationID  path      int                          true  "Registration ID"
// @Param        request         body      request.UpdateStatusRequest  true  "pending, confirmed or cancelled"
// @Success      200             {object}  domain.CourseRegistration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /course-registrations/{registrationID}/status [patch]
// @Security BearerAuth
func (h *RegistrationHandler) HandleUpdateCourseRegistrationStatus(ctx *gin.Context) {
	id, respErr := idParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	status, respErr := bindStatus(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reg, err := h.svc.UpdateCourseRegistrationStatus(ctx.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, service.ErrCourseRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCourseRegistrationStatus -> h.svc.UpdateCourseRegistrationStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleDeleteCourseRegistration godoc
// @Summary      Delete a course registration
// @Tags         course-registrations
// @Param        registrationID  path  int  true  "Registration ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /course-registrations/{registrationID} [delete]
// @Security BearerAuth
func (h *RegistrationHandler) HandleDeleteCourseRegistration(ctx *gin.Context) {
	id, respErr := idParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteCourseRegistration(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCourseRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCourseRegistration -> h.svc.DeleteCourseRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetTourRegistrations godoc
// @Summary      List tour registrations
// @Tags         tour-registrations
// @Produce      json
// @Success      200  {array}   domain.TourRegistration
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tour-registrations [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetTourRegistrations(ctx *gin.Context) {
	regs, err := h.svc.ListTourRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTourRegistrations -> h.svc.ListTourRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleGetTourRegistration godoc
// @Summary      Get a tour registration
// @Tags         tour-registrations
// @Produce      json
// @Param        registrationID  path      int  true  "Registration ID"
// @Success      200             {object}  domain.TourRegistration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Router       /tour-registrations/{registrationID} [get]
// @Security BearerAuth
func (h *RegistrationHandler) HandleGetTourRegistration(ctx *gin.Context) {
	id, respErr := idParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reg, err := h.svc.GetTourRegistration(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTourRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tour registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetTourRegistration -> h.svc.GetTourRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleCreateTourRegistration godoc
// @Summary      Book a guided tour
// @Tags         tour-registrations
// @Accept       json
// @Produce      json
// @Param        request  body      request.TourRegistrationRequest  true  "request body"
// @Success      201      {object}  domain.TourRegistration
// @Failure      400      {object}  response.Err
// @Failure      429      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tour-registrations [post]
func (h *RegistrationHandler) HandleCreateTourRegistration(ctx *gin.Context) {
	var req request.TourRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	reg, err := h.svc.RegisterForTour(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTourRegistration -> h.svc.RegisterForTour -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleUpdateTourRegistrationStatus godoc
// @Summary      Change a tour registration status
// @Tags         tour-registrations
// @Accept       json
// @Produce      json
// @Param        registrationID  path      int                          true  "Registration ID"
// @Param        request         body      request.UpdateStatusRequest  true  "pending, confirmed or cancelled"
// @Success      200             {object}  domain.TourRegistration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /tour-registrations/{registrationID}/status [patch]
// @Security BearerAuth
func (h *RegistrationHandler) HandleUpdateTourRegistrationStatus(ctx *gin.Context) {
	id, respErr := idParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	status, respErr := bindStatus(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reg, err := h.svc.UpdateTourRegistrationStatus(ctx.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, service.ErrTourRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tour registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTourRegistrationStatus -> h.svc.UpdateTourRegistrationStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reg)
}

// HandleDeleteTourRegistration godoc
// @Summary      Delete a tour registration
// @Tags         tour-registrations
// @Param        registrationID  path  int  true  "Registration ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tour-registrations/{registrationID} [delete]
// @Security BearerAuth
func (h *RegistrationHandler) HandleDeleteTourRegistration(ctx *gin.Context) {
	id, respErr := idParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteTourRegistration(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTourRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tour registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTourRegistration -> h.svc.DeleteTourRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
