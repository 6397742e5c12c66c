package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSensorRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(nil)

	for _, path := range []string{"/sensors", "/sensors/collection", "/sensors/bands"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want %d",
				path, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestAuthRoutesArePublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(nil)

	// 缺少请求体时是参数错误而不是未授权
	for _, path := range []string{"/register", "/login"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", path, nil)
		r.ServeHTTP(w, req)
		if w.Code == http.StatusUnauthorized {
			t.Errorf("POST %s: status = %d, want not %d",
				path, w.Code, http.StatusUnauthorized)
		}
	}
}
