// Package wire provides dependency injection for the tlog application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/tlog/internal/adapters/sqlite"
	"github.com/example/tlog/internal/app"
	"github.com/example/tlog/internal/db"
	"github.com/example/tlog/internal/ports/primary"
)

var (
	categoryService primary.CategoryService
	tagService      primary.TagService
	activityService primary.ActivityService
	reportService   primary.ReportService
	once            sync.Once
)

// CategoryService returns the singleton CategoryService instance.
func CategoryService() primary.CategoryService {
	once.Do(initServices)
	return categoryService
}

// TagService returns the singleton TagService instance.
func TagService() primary.TagService {
	once.Do(initServices)
	return tagService
}

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	categoryRepo := sqlite.NewCategoryRepository(database)
	tagRepo := sqlite.NewTagRepository(database)
	activityRepo := sqlite.NewActivityRepository(database)
	reportRepo := sqlite.NewReportRepository(database)

	// Services (primary ports implementation)
	categoryService = app.NewCategoryService(categoryRepo)
	tagService = app.NewTagService(tagRepo, categoryRepo)
	activityService = app.NewActivityService(activityRepo, categoryRepo, tagRepo)
	reportService = app.NewReportService(reportRepo)
}
