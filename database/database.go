package database

import (
	stdlog "log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danielsolis/portfolio-site-backend/errs"
	"github.com/danielsolis/portfolio-site-backend/models"
)

type Database struct {
	userRepo     *UserRepo
	categoryRepo *CategoryRepo
	projectRepo  *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:     NewUserRepo(db),
		categoryRepo: NewCategoryRepo(db),
		projectRepo:  NewProjectRepo(db),
	}
}

// Open opens the SQLite file at path, enables foreign key enforcement and
// migrates the users, categories and projects tables.
func Open(path string) (Database, error) {
	if path == "" {
		return Database{}, errs.NewInternalError("database path cannot be empty")
	}

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return Database{}, errs.NewDatabaseError("open", "sqlite database", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Project{}); err != nil {
		return Database{}, errs.NewDatabaseError("migrate", "schema", err)
	}

	return New(db), nil
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}
