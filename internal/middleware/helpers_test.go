package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, mws ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mws...)
	handle := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.POST("/ping", handle)
	router.OPTIONS("/ping", handle)
	return router
}
