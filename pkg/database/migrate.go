package database

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations приводит схему БД к актуальной версии.
// Для PostgreSQL применяются встроенные SQL-миграции (golang-migrate),
// для SQLite — AutoMigrate по моделям, уникальные индексы создаёт GORM.
func RunMigrations(db *gorm.DB, driver string, logger *zap.Logger) error {
	if driver == "sqlite" {
		return autoMigrate(db, logger)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("ошибка получения sql.DB: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("ошибка загрузки миграций: %w", err)
	}

	mdriver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("ошибка создания драйвера миграций: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", mdriver)
	if err != nil {
		return fmt.Errorf("ошибка инициализации миграций: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("миграции в состоянии dirty", zap.Uint("version", version))
	} else {
		logger.Info("миграции применены", zap.Uint("version", version))
	}

	return nil
}

func autoMigrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Faculty{},
		&model.Group{},
		&model.Teacher{},
		&model.TeacherBurden{},
		&model.Discipline{},
		&model.Audithoria{},
		&model.LessonType{},
		&model.Schedule{},
		&model.ScheduleItem{},
	)
	if err != nil {
		return fmt.Errorf("ошибка AutoMigrate: %w", err)
	}

	// базовые роли
	for _, value := range []string{model.RoleAdmin, model.RoleUser} {
		role := model.Role{Value: value}
		if err := db.Where("value = ?", value).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("ошибка создания роли %s: %w", value, err)
		}
	}

	logger.Info("AutoMigrate завершён")
	return nil
}
