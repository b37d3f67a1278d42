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

type CatalogService interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id uint) (domain.Course, error)
	CreateCourse(ctx context.Context, course domain.InsertCourse) (domain.Course, error)
	UpdateCourse(ctx context.Context, id uint, update domain.CourseUpdate) (domain.Course, error)
	DeleteCourse(ctx context.Context, id uint) error
	ListTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, id uint) (domain.Tour, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleGetCourses godoc
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}   domain.Course
// @Failure      500  {object}  response.Err
// @Router       /courses [get]
func (h *CatalogHandler) HandleGetCourses(ctx *gin.Context) {
	courses, err := h.svc.ListCourses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCourses -> h.svc.ListCourses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// HandleGetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {object}  domain.Course
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID} [get]
func (h *CatalogHandler) HandleGetCourse(ctx *gin.Context) {
	id, respErr := idParam(ctx, "courseID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	course, err := h.svc.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCourse -> h.svc.GetCourse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// HandleCreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCourseRequest  true  "request body"
// @Success      201      {object}  domain.Course
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /courses [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateCourse(ctx *gin.Context) {
	var req request.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	course, err := h.svc.CreateCourse(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCourse -> h.svc.CreateCourse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// HandleUpdateCourse godoc
// @Summary      Partially update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        courseID  path      int                          true  "Course ID"
// @Param        request   body      request.UpdateCourseRequest  true  "fields to change"
// @Success      200       {object}  domain.Course
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /courses/{courseID} [patch]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateCourse(ctx *gin.Context) {
	id, respErr := idParam(ctx, "courseID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	course, err := h.svc.UpdateCourse(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCourse -> h.svc.UpdateCourse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// HandleDeleteCourse godoc
// @Summary      Delete a course
// @Description  Registrations that reference the course are kept.
// @Tags         courses
// @Param        courseID  path  int  true  "Course ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /courses/{courseID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteCourse(ctx *gin.Context) {
	id, respErr := idParam(ctx, "courseID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteCourse(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("course", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCourse -> h.svc.DeleteCourse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetTours godoc
// @Summary      List tours
// @Tags         tours
// @Produce      json
// @Success      200  {array}   domain.Tour
// @Failure      500  {object}  response.Err
// @Router       /tours [get]
func (h *CatalogHandler) HandleGetTours(ctx *gin.Context) {
	tours, err := h.svc.ListTours(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTours -> h.svc.ListTours -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tours)
}

// HandleGetTour godoc
// @Summary      Get a tour
// @Tags         tours
// @Produce      json
// @Param        tourID  path      int  true  "Tour ID"
// @Success      200     {object}  domain.Tour
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /tours/{tourID} [get]
func (h *CatalogHandler) HandleGetTour(ctx *gin.Context) {
	id, respErr := idParam(ctx, "tourID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tour, err := h.svc.GetTour(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tour", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetTour -> h.svc.GetTour -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tour)
}
