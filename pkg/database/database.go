package database

import (
	"ailearn_backend/internal/config"
	"ailearn_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release deployments migrate only when asked to via -migrate.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Course{},
			&model.CourseModule{},
			&model.Lesson{},
			&model.Quiz{},
			&model.Project{},
			&model.ProgressEntry{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	// Seed the two stock curricula so a fresh install renders dashboards.
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		defaultCourses := []model.Course{
			{
				UUIDBase:    model.UUIDBase{ID: "ai-engineering"},
				Title:       "AI Engineering",
				Description: "Master the fundamentals and advanced concepts of AI Engineering",
			},
			{
				UUIDBase:    model.UUIDBase{ID: "aiml-engineering"},
				Title:       "AIML",
				Description: "Comprehensive AI and Machine Learning engineering course",
			},
		}
		for _, c := range defaultCourses {
			db.Create(&c)
		}
	}

	return db, nil
}
