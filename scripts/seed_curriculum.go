// Seeds demo modules and lessons for the stock courses.
//
// Intended for first deployments and local development, so the dashboards
// have a curriculum to aggregate against.
//
// Usage: go run scripts/seed_curriculum.go

package main

import (
	"ailearn_backend/internal/config"
	"ailearn_backend/internal/model"
	"ailearn_backend/pkg/database"
	"ailearn_backend/pkg/logger"
	"log"
)

type seedModule struct {
	title   string
	lessons []string
}

var curriculum = map[string][]seedModule{
	"ai-engineering": {
		{"Python", []string{"Python Basics", "Data Structures", "NumPy and Pandas"}},
		{"ML", []string{"Supervised Learning", "Model Evaluation"}},
		{"Deep Learning", []string{"Neural Networks", "Backpropagation", "CNNs"}},
		{"Generative AI", []string{"Transformers", "Prompt Engineering"}},
	},
	"aiml-engineering": {
		{"Python", []string{"Python Basics", "Scientific Python"}},
		{"Machine Learning", []string{"Regression", "Classification", "Clustering"}},
		{"Deep Learning", []string{"Neural Networks", "Training at Scale"}},
		{"MLOps", []string{"Experiment Tracking", "Deployment"}},
	},
}

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceMigrate = true

	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	for courseID, modules := range curriculum {
		for order, sm := range modules {
			var existing model.CourseModule
			err := db.Where("course_id = ? AND title = ?", courseID, sm.title).First(&existing).Error
			if err == nil {
				log.Printf("module %q already exists for %s, skipping", sm.title, courseID)
				continue
			}

			module := model.CourseModule{
				CourseID: courseID,
				Title:    sm.title,
				Order:    order + 1,
			}
			if err := db.Create(&module).Error; err != nil {
				log.Fatalf("creating module %q: %v", sm.title, err)
			}

			for i, title := range sm.lessons {
				lesson := model.Lesson{
					ModuleID: module.ID,
					Title:    title,
					Order:    i + 1,
				}
				if err := db.Create(&lesson).Error; err != nil {
					log.Fatalf("creating lesson %q: %v", title, err)
				}
			}
			log.Printf("seeded module %q (%d lessons) for %s", sm.title, len(sm.lessons), courseID)
		}
	}

	log.Println("Curriculum seed finished")
}
