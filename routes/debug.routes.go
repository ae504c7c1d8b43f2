package routes

import (
	"net/http"
	"runtime"

	"jobportal/database"
	"jobportal/internal/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterDebugRoutes mounts /debug/database and /debug/stats. redisClient may be nil.
func RegisterDebugRoutes(router *gin.Engine, db *gorm.DB, driver string, redisClient *cache.RedisClient) {
	router.GET("/debug/database", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"database_health": false,
				"driver":          driver,
				"error":           err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"database_health": true,
			"driver":          driver,
		})
	})

	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		redisStatus := map[string]interface{}{"connected": false}
		if redisClient != nil {
			status, err := redisClient.GetStatus(c.Request.Context())
			if err != nil {
				redisStatus["error"] = err.Error()
			} else {
				redisStatus = status
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"redis":      redisStatus,
		})
	})
}
