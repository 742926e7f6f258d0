package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Looz41/Diplom-sub000/config"
	"github.com/Looz41/Diplom-sub000/internal/api/handler"
	"github.com/Looz41/Diplom-sub000/internal/api/middleware"
	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/pkg/jwt"
	"github.com/Looz41/Diplom-sub000/pkg/redis"
)

// Setup собирает gin-маршрутизатор.
// Чтение доступно ролям USER и ADMIN, изменение данных только ADMIN.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── глобальные middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── проверка живости ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	anyRole := middleware.RoleAuth(model.RoleUser, model.RoleAdmin)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── аутентификация ──
	auth := r.Group("/auth")
	{
		auth.POST("/registration", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
		auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)

		authorized := auth.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/logout", h.Auth.Logout)
			authorized.GET("/users", adminOnly, h.Auth.ListUsers)
		}
	}

	// ── предметные модули ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		facultet := authorized.Group("/facultet")
		{
			facultet.POST("/add", adminOnly, h.Faculty.Add)
			facultet.GET("/get", anyRole, h.Faculty.GetAll)
			facultet.GET("/getOne", anyRole, h.Faculty.GetOne)
			facultet.POST("/edit", adminOnly, h.Faculty.Edit)
			facultet.DELETE("/delete", adminOnly, h.Faculty.Delete)
		}

		discipline := authorized.Group("/discipline")
		{
			discipline.POST("/add", adminOnly, h.Discipline.Add)
			discipline.GET("/get", anyRole, h.Discipline.GetAll)
			discipline.PUT("/edit", adminOnly, h.Discipline.Edit)
			discipline.DELETE("/delete", adminOnly, h.Discipline.Delete)
		}

		teacher := authorized.Group("/teacher")
		{
			teacher.POST("/add", adminOnly, h.Teacher.Add)
			teacher.GET("/get", anyRole, h.Teacher.GetAll)
			teacher.GET("/getTeacherByDiscipline", anyRole, h.Teacher.GetByDiscipline)
			teacher.POST("/edit", adminOnly, h.Teacher.Edit)
			teacher.DELETE("/delete", adminOnly, h.Teacher.Delete)
		}

		types := authorized.Group("/types")
		{
			types.POST("/add", adminOnly, h.LessonType.Add)
			types.GET("/get", anyRole, h.LessonType.GetAll)
			types.POST("/edit", adminOnly, h.LessonType.Edit)
			types.DELETE("/delete", adminOnly, h.LessonType.Delete)
		}

		audithories := authorized.Group("/audithories")
		{
			audithories.POST("/add", adminOnly, h.Audithoria.Add)
			audithories.GET("/get", anyRole, h.Audithoria.GetAll)
			audithories.POST("/edit", adminOnly, h.Audithoria.Edit)
			audithories.DELETE("/delete", adminOnly, h.Audithoria.Delete)
		}

		schedule := authorized.Group("/schedule")
		{
			schedule.POST("/add", adminOnly, h.Schedule.Add)
			schedule.GET("/get", anyRole, h.Schedule.GetAll)
			schedule.POST("/edit", adminOnly, h.Schedule.Edit)
			schedule.GET("/getExcel", anyRole, h.Export.ExportExcel)
			schedule.GET("/getIcs", anyRole, h.Export.ExportICS)
		}
	}

	return r
}
