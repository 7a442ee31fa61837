package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-job-board/internal/container"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
)

func perIP(max int) gin.HandlerFunc {
	return middleware.RateLimit(container.GetRedis(), middleware.Limit{
		Max: max, Window: time.Minute, Key: middleware.KeyByIPAndPath(),
	})
}

func perUser(max int) gin.HandlerFunc {
	return middleware.RateLimit(container.GetRedis(), middleware.Limit{
		Max: max, Window: time.Minute, Key: middleware.KeyByUserID(),
	})
}
