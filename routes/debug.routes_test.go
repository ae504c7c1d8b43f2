package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobportal/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, router *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestDebugRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	router := gin.New()
	RegisterDebugRoutes(router, s.db, "sqlite", cache.NewRedisClientFrom(client))

	code, body := getJSON(t, router, "/debug/database")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["database_health"])
	assert.Equal(t, "sqlite", body["driver"])

	code, body = getJSON(t, router, "/debug/stats")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "goroutines")
	assert.Contains(t, body, "memory_mb")
	redisStatus := body["redis"].(map[string]interface{})
	assert.Equal(t, true, redisStatus["connected"])
	assert.Contains(t, redisStatus, "idle_conns")

	mr.Close()
	code, body = getJSON(t, router, "/debug/stats")
	require.Equal(t, http.StatusOK, code)
	redisStatus = body["redis"].(map[string]interface{})
	assert.Equal(t, false, redisStatus["connected"])
	assert.NotEmpty(t, redisStatus["error"])
}

func TestDebugStatsWithoutRedis(t *testing.T) {
	s := newTestServer(t, 0)
	router := gin.New()
	RegisterDebugRoutes(router, s.db, "sqlite", nil)

	code, body := getJSON(t, router, "/debug/stats")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]interface{}{"connected": false}, body["redis"])
}
