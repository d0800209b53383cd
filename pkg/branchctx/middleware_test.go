package branchctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	seenCtx context.Context
	seenID  string
	valid   bool
	err     error
}

func (s *stubValidator) ValidateBranch(ctx context.Context, branchID string) (bool, error) {
	s.seenCtx = ctx
	s.seenID = branchID
	return s.valid, s.err
}

func newBranchRouter(v *stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(v))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("branch_id"))
	})
	return router
}

func TestMiddlewareRequiresHeader(t *testing.T) {
	v := &stubValidator{valid: true}
	router := newBranchRouter(v)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, v.seenID)
}

func TestMiddlewareRejectsUnknownBranch(t *testing.T) {
	v := &stubValidator{valid: false}
	router := newBranchRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Branch-ID", "ghost")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ghost", v.seenID)
}

type markerKey struct{}

func TestMiddlewarePassesRequestContextToValidator(t *testing.T) {
	v := &stubValidator{valid: true}
	router := newBranchRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req = req.WithContext(context.WithValue(req.Context(), markerKey{}, "marker"))
	req.Header.Set("X-Branch-ID", "b1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b1", rec.Body.String())

	// the validator must see the request's own context, not a fresh one
	require.NotNil(t, v.seenCtx)
	assert.Equal(t, "marker", v.seenCtx.Value(markerKey{}))
}

func TestMiddlewareStoresBranchInRequestContext(t *testing.T) {
	v := &stubValidator{valid: true}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(v))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetBranchIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Branch-ID", "b1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "b1", rec.Body.String())
}
