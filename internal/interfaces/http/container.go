package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gympoint/internal/application/registration/usecases"
	"gympoint/internal/infrastructure/config"
	"gympoint/internal/infrastructure/queue"
	"gympoint/internal/interfaces/http/handlers/registration"
	"gympoint/internal/shared/logger"
)

// Container wires repositories, use cases and handlers on top of the
// database and Redis connections it is given. It does not own them; the
// caller closes both.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	redis  *redis.Client
	cfg    *config.Config
	log    logger.Interface

	jobs  usecases.JobEnqueuer
	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer builds the HTTP application. Mail jobs are pushed to Redis
// under cfg.Queue.Prefix.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	broker := queue.NewRedisBroker(redisClient, cfg.Queue.Prefix)
	return newContainer(db, redisClient, queue.NewProducer(broker, log), cfg, log)
}

func newContainer(db *gorm.DB, redisClient *redis.Client, jobs usecases.JobEnqueuer, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		redis:  redisClient,
		cfg:    cfg,
		log:    log,
		jobs:   jobs,
	}

	c.repos = newRepositories(db, log)
	c.ucs = newUseCases(c.repos, jobs, log)
	c.hdlrs = newHandlers(
		c.ucs,
		registration.NewStatusPolicy(cfg.Server.LegacyStatusCodes),
		healthChecks(db, redisClient),
		log,
	)

	return c
}

// Engine returns the gin engine. Call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
