package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adModel "truyenhub_backend/internals/features/ads/advertisements/model"
	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	commentModel "truyenhub_backend/internals/features/community/comments/model"
	reportModel "truyenhub_backend/internals/features/community/reports/model"
	historyModel "truyenhub_backend/internals/features/library/history/model"
	topupModel "truyenhub_backend/internals/features/payment/topup/model"
	userModel "truyenhub_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=truyenhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model.
// Unique index ledger (user_id, chapter_id) dibuat eksplisit: pre-check di
// aplikasi saja tidak cukup untuk mencegah double-unlock saat race.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.User{},
		&contentModel.Author{},
		&contentModel.TranslationGroup{},
		&contentModel.Genre{},
		&contentModel.Content{},
		&chapterModel.Chapter{},
		&chapterModel.ChapterContent{},
		&chapterModel.UnlockedChapter{},
		&historyModel.ReadingHistory{},
		&commentModel.Comment{},
		&reportModel.Report{},
		&adModel.Advertisement{},
		&topupModel.TopupOrder{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	if err := DB.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_unlocked_chapters_user_chapter ON unlocked_chapters (user_id, chapter_id)",
	).Error; err != nil {
		log.Fatalf("❌ Gagal membuat unique index ledger: %v", err)
	}

	log.Println("✅ Migrasi selesai.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
