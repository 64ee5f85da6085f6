package database

import (
	"fmt"
	"log"

	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表与索引，测试时也复用这份模型清单
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.ListeningExercise{},
		&model.ListeningQuestion{},
		&model.ReadingExercise{},
		&model.ReadingQuestion{},
		&model.WritingTask{},
		&model.SpeakingExercise{},
		&model.ListeningAttempt{},
		&model.ReadingAttempt{},
		&model.WritingAttempt{},
		&model.SpeakingAttempt{},
		&model.MonthlyAnalytics{},
	)
}
