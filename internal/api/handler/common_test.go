package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParsePaginationStrict(t *testing.T) {
	r := gin.New()
	r.GET("/list", func(c *gin.Context) {
		page, limit, ok := parsePagination(c)
		if !ok {
			return
		}
		response.OK(c, gin.H{"page": page, "limit": limit}, "ok")
	})

	cases := []struct {
		name  string
		query string
		code  int
	}{
		{"both valid", "page=1&limit=10", http.StatusOK},
		{"missing both", "", http.StatusBadRequest},
		{"missing limit", "page=1", http.StatusBadRequest},
		{"missing page", "limit=10", http.StatusBadRequest},
		{"zero page", "page=0&limit=10", http.StatusBadRequest},
		{"negative limit", "page=1&limit=-5", http.StatusBadRequest},
		{"non numeric", "page=abc&limit=10", http.StatusBadRequest},
		{"float page", "page=1.5&limit=10", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/list?"+tc.query, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/v/:videoId", func(c *gin.Context) {
		id, ok := parseIDParam(c, "videoId")
		if !ok {
			return
		}
		response.OK(c, gin.H{"id": id}, "ok")
	})

	for path, code := range map[string]int{
		"/v/7":   http.StatusOK,
		"/v/0":   http.StatusBadRequest,
		"/v/-1":  http.StatusBadRequest,
		"/v/abc": http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, code, w.Code, fmt.Sprintf("path %s", path))
	}
}
