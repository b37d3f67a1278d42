package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation_ListsFields(t *testing.T) {
	err := validation.Errors{
		"email": errors.New("must be a valid email address"),
		"name":  errors.New("cannot be blank"),
	}

	e := ErrValidation(err)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatusCode)
	assert.Equal(t, map[string]string{
		"email": "must be a valid email address",
		"name":  "cannot be blank",
	}, e.Errors)
}

func TestErrValidation_FallsBackToBadRequest(t *testing.T) {
	e := ErrValidation(errors.New("invalid character"))
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatusCode)
	assert.Equal(t, "invalid character", e.Message)
	assert.Nil(t, e.Errors)
}

func TestRenderErr_HidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/courses", nil)

	RenderErr(ctx, ErrInternalServerError(errors.New("dial tcp: refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, ctx.IsAborted())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong", body["message"])
	assert.NotContains(t, w.Body.String(), "refused")
}
