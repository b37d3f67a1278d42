package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/course-portal-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/course-portal-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/course-portal-api/internal/config"
	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/course-portal-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.User, error)
}

type AuthHandler struct {
	apiConf   *config.APIConfig
	adminConf *config.AdminConfig
	svc       AuthService
}

func NewAuthHandler(apiConf *config.APIConfig, adminConf *config.AdminConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		apiConf:   apiConf,
		adminConf: adminConf,
		svc:       svc,
	}
}

// HandleLogin godoc
// @Summary      Admin panel login
// @Description  Exchanges the shared admin credentials for a session token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.apiConf.JWTSigningKey), user.ID, ctx.Request.UserAgent(), h.adminConf.TokenTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.adminConf.TokenTTL).UTC(),
	})
}
