package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/job"
	"Inkwell/internal/pkg/cache"
	"Inkwell/internal/pkg/cron"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	storyRepo := repository.NewStoryRepository(db)
	engagementRepo := repository.NewEngagementRepo(db)

	cacheStore := cache.NewRedisStore(redis.GetRdbClient())
	queryCache := cache.NewQueryCache(cacheStore, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)

	catalogService := service.NewCatalogService(storyRepo, queryCache)
	engagementService := service.NewEngagementService(engagementRepo, queryCache)

	handlers := &api.HandlersGroup{
		StoryHandler:      handler.NewStoryHandler(catalogService),
		EngagementHandler: handler.NewEngagementHandler(engagementService),
	}

	router := api.SetupRouter(handlers)

	countsJob := job.NewEngagementCountsJob(storyRepo, engagementRepo, queryCache)
	cronMgr := cron.NewCronManager(countsJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
