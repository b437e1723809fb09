package controller

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/kvstore"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCurriculum struct {
	modules map[string][]service.ModuleInfo
	lessons map[string][]string
}

func (f *staticCurriculum) ModulesForCourse(_ context.Context, courseID string) ([]service.ModuleInfo, error) {
	return f.modules[courseID], nil
}

func (f *staticCurriculum) LessonIDsForModule(_ context.Context, moduleID string) ([]string, error) {
	return f.lessons[moduleID], nil
}

// asUser stubs the auth middleware with a fixed identity.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{
			UserID:           id,
			Role:             model.Student,
			RegisteredClaims: jwt.RegisteredClaims{},
		})
		c.Next()
	}
}

func newProgressRouter(progress *service.ProgressService, activity *service.ActivityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	pc := NewProgressController(progress, nil)
	ac := NewActivityController(activity)

	authed := router.Group("/api", asUser(7))
	authed.GET("/progress/courses/:courseId", pc.GetCourseProgress)
	authed.GET("/progress/courses/:courseId/modules/:moduleId/lessons/:lessonId", pc.GetLessonCompletion)
	authed.POST("/activity/tick", ac.Tick)
	authed.GET("/activity/summary", ac.Summary)

	return router
}

func newProgressFixtures() (*service.ProgressService, *service.ActivityService) {
	store := kvstore.NewMemoryStore()
	curriculum := &staticCurriculum{
		modules: map[string][]service.ModuleInfo{
			"ai-engineering": {
				{ID: "m1", Title: "Python", Order: 1},
				{ID: "m2", Title: "ML", Order: 2},
			},
		},
		lessons: map[string][]string{
			"m1": {"l1", "l2"},
			"m2": {"l3"},
		},
	}
	return service.NewProgressService(store, curriculum), service.NewActivityService(store)
}

func TestGetCourseProgressEndpoint(t *testing.T) {
	progress, activity := newProgressFixtures()
	router := newProgressRouter(progress, activity)

	require.NoError(t, progress.SaveLessonProgress(context.Background(), "7", "ai-engineering", "m1", "l1", true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/progress/courses/ai-engineering", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			CourseID string                   `json:"courseId"`
			Progress int                      `json:"progress"`
			Modules  []service.ModuleProgress `json:"modules"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// m1 is 1/2 = 50, m2 is 0: course mean is 25.
	assert.Equal(t, 25, resp.Data.Progress)
	require.Len(t, resp.Data.Modules, 2)
	assert.Equal(t, 50, resp.Data.Modules[0].Progress)
	assert.Equal(t, 0, resp.Data.Modules[1].Progress)
}

func TestGetLessonCompletionEndpoint(t *testing.T) {
	progress, activity := newProgressFixtures()
	router := newProgressRouter(progress, activity)

	require.NoError(t, progress.SaveLessonProgress(context.Background(), "7", "ai-engineering", "m1", "l1", true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/progress/courses/ai-engineering/modules/m1/lessons/l1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"completed":true`)

	// An untouched lesson reads back as not completed.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/progress/courses/ai-engineering/modules/m1/lessons/l2", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"completed":false`)
}

func TestActivityTickEndpoint(t *testing.T) {
	progress, activity := newProgressFixtures()
	router := newProgressRouter(progress, activity)

	body, _ := json.Marshal(gin.H{"secondsElapsed": 60})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/activity/tick", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// A second tick merges additively.
	body, _ = json.Marshal(gin.H{"secondsElapsed": 30})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/activity/tick", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"todaySeconds":90`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/activity/summary", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"last7DaysSeconds":90`)
	assert.Contains(t, w.Body.String(), `"1m 30s"`)
}

func TestActivityTickRejectsNegativeSeconds(t *testing.T) {
	progress, activity := newProgressFixtures()
	router := newProgressRouter(progress, activity)

	body, _ := json.Marshal(gin.H{"secondsElapsed": -10})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/activity/tick", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
