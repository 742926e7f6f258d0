package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Looz41/Diplom-sub000/config"
	"github.com/Looz41/Diplom-sub000/internal/api/handler"
	"github.com/Looz41/Diplom-sub000/internal/api/router"
	"github.com/Looz41/Diplom-sub000/internal/repository"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/database"
	"github.com/Looz41/Diplom-sub000/pkg/jwt"
	applogger "github.com/Looz41/Diplom-sub000/pkg/logger"
	"github.com/Looz41/Diplom-sub000/pkg/redis"
)

func main() {
	// 1. конфигурация
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	// 2. журнал
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка инициализации журнала: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("запуск приложения",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. база данных
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("ошибка подключения к базе данных", zap.Error(err))
	}
	logger.Info("база данных подключена")

	// 3.1 миграции
	if err := database.RunMigrations(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("ошибка миграции базы данных", zap.Error(err))
	}

	// 4. Redis (необязательный: при отказе работаем без чёрного списка
	// токенов и ограничения частоты запросов)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis недоступен, отзыв токенов и rate limit отключены", zap.Error(err))
		rdb = nil
	}

	// 5. JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. внедрение зависимостей: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. маршруты
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. HTTP-сервер с мягкой остановкой
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP-сервер запущен", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ошибка HTTP-сервера", zap.Error(err))
		}
	}()

	// 9. ожидание сигнала остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("получен сигнал остановки", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("ошибка остановки сервера", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
		sqlDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("сервер остановлен")
}
