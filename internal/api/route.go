package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		storyGroup := apiGroup.Group("/stories")
		{
			// 公开读取
			storyGroup.GET("", group.StoryHandler.ListPublished)
			storyGroup.GET("/:story_id", group.StoryHandler.GetStory)

			// 互动接口，匿名会话标识由中间件解析
			sessionGroup := storyGroup.Group("/:story_id")
			sessionGroup.Use(middleware.SessionMiddleware())
			{
				sessionGroup.GET("/likes", group.EngagementHandler.GetLikeState)
				sessionGroup.POST("/likes", group.EngagementHandler.Like)
				sessionGroup.DELETE("/likes", group.EngagementHandler.Unlike)

				sessionGroup.GET("/comments", group.EngagementHandler.ListComments)
				sessionGroup.POST("/comments", group.EngagementHandler.CreateComment)
			}

			// 目录写操作，需要管理员角色
			adminGroup := storyGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.StoryHandler.CreateStory)
				adminGroup.PATCH("/:story_id", group.StoryHandler.UpdateStory)
				adminGroup.DELETE("/:story_id", group.StoryHandler.DeleteStory)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			adminGroup.GET("/stories", group.StoryHandler.ListAll)
		}
	}

	return r
}
