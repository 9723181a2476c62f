package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ardiansyah/laundry-pos/controllers"
)

func setupStreamRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.GET("/ws/board", func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}, controllers.BoardStreamHandler)
	return router
}

func TestBoardStreamRejectsUnknownRole(t *testing.T) {
	router := setupStreamRouter("guest")

	req, _ := http.NewRequest("GET", "/ws/board", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["status"])
	assert.Equal(t, controllers.ErrNoPermission.Error(), resp["message"])
}

func TestBoardStreamRequiresRole(t *testing.T) {
	router := setupStreamRouter("")

	req, _ := http.NewRequest("GET", "/ws/board", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
