package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/itc-media/cms-backend/internal/config"
)

// UploadRateLimit caps the number of file uploads one authenticated uploader
// may perform per day. The counter resets at midnight. Redis failures never
// block an upload.
func UploadRateLimit(redisClient *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		userID, ok := CurrentUserID(c)
		if !ok {
			c.Next()
			return
		}

		today := time.Now().Format("2006-01-02")
		key := fmt.Sprintf("upload_limit:%s:%s", userID.String(), today)

		count, err := redisClient.Get(ctx, key).Int()
		if err == redis.Nil {
			now := time.Now()
			midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
			if err := redisClient.Set(ctx, key, 1, midnight.Sub(now)).Err(); err != nil {
				c.Next()
				return
			}
		} else if err != nil {
			c.Next()
			return
		} else if count >= cfg.UploadDailyLimit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"data":    nil,
				"error": gin.H{
					"code":    "UPLOAD_RATE_LIMIT_EXCEEDED",
					"message": "Too many uploads today. Please try again tomorrow.",
				},
			})
			return
		} else {
			redisClient.Incr(ctx, key)
		}

		c.Next()
	}
}
