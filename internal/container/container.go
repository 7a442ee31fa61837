// Package container holds the process-wide components built in main. The
// router wires modules from them; optional clients stay nil when their
// integration is not configured.
package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/config"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

type components struct {
	cfg    *config.Config
	logger *logrus.Logger
	pool   *pgxpool.Pool
	redis  *redis.Client
	gcs    *storage.Client
	es     *elasticsearch.Client
	rabbit *helpers.RabbitPublisher
	jwt    *helpers.JWTManager
}

var app components

func SetConfig(c *config.Config) { app.cfg = c }
func GetConfig() *config.Config  { return app.cfg }

func SetLogger(l *logrus.Logger) { app.logger = l }

// GetLogger falls back to a discarding logger so handlers never log through nil.
func GetLogger() *logrus.Logger {
	if app.logger == nil {
		return helpers.NewDiscardLogger()
	}
	return app.logger
}

func SetPGPool(p *pgxpool.Pool) { app.pool = p }
func GetPGPool() *pgxpool.Pool  { return app.pool }

func SetRedis(r *redis.Client) { app.redis = r }
func GetRedis() *redis.Client  { return app.redis }

func SetGCS(s *storage.Client) { app.gcs = s }
func GetGCS() *storage.Client  { return app.gcs }

func SetES(c *elasticsearch.Client) { app.es = c }
func GetES() *elasticsearch.Client  { return app.es }

func SetRabbitPub(p *helpers.RabbitPublisher) { app.rabbit = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return app.rabbit }

func SetJWT(m *helpers.JWTManager) { app.jwt = m }
func GetJWT() *helpers.JWTManager  { return app.jwt }

// Reset clears every component. Tests call it between router builds.
func Reset() { app = components{} }
