package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-job-board/pkg/helpers"
	"github.com/oksasatya/go-job-board/pkg/response"
)

// HealthModule serves GET /healthz outside the /api group. Only the store
// decides the status code; side channels are reported as ok, down or off.
type HealthModule struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
	ES    *elasticsearch.Client
}

func NewHealthModule(pool *pgxpool.Pool, rdb *redis.Client, es *elasticsearch.Client) *HealthModule {
	return &HealthModule{Pool: pool, Redis: rdb, ES: es}
}

func (m *HealthModule) Register(_ *gin.RouterGroup, root *gin.Engine) {
	root.GET("/healthz", m.health)
}

func (m *HealthModule) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"store": "memory", "redis": "off", "search": "off"}
	if m.Pool != nil {
		if err := m.Pool.Ping(ctx); err != nil {
			response.Error[any](c, http.StatusServiceUnavailable, "database unreachable", nil)
			return
		}
		status["store"] = "postgres"
	}
	if m.Redis != nil {
		status["redis"] = upOrDown(m.Redis.Ping(ctx).Err())
	}
	if m.ES != nil {
		status["search"] = upOrDown(helpers.PingES(ctx, m.ES))
	}
	response.Success(c, http.StatusOK, status, "ok", nil)
}

func upOrDown(err error) string {
	if err != nil {
		return "down"
	}
	return "ok"
}
