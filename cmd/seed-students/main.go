package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akademika/student-admin/internal/config"
	"github.com/akademika/student-admin/internal/database"
	"github.com/akademika/student-admin/internal/logger"
	"github.com/akademika/student-admin/internal/model"
	"github.com/akademika/student-admin/internal/repository"
	"github.com/akademika/student-admin/internal/service"
)

var majors = []string{
	"Computer Science", "Information Systems", "Mathematics",
	"Electrical Engineering", "Physics",
}

var names = []string{
	"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
	"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
	"Hendra Gunawan", "Ika Sari", "Jamal Mirdad", "Kiki Fatmala", "Lukman Hakim",
	"Maya Septiana", "Nanda Pratama", "Oki Setiana", "Putri Dian", "Qori Maharani",
	"Rafi Ahmad", "Siska Saraswati", "Toni Setiawan", "Umi Kalsum", "Vina Panduwinata",
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	studentService := service.NewStudentService(studentRepo)

	fmt.Printf("=== Seeding %d Students ===\n", len(names))

	successCount := 0
	for i, name := range names {
		req := &model.CreateStudentRequest{
			StudentCode: fmt.Sprintf("S%03d", i+1),
			FullName:    name,
			Email:       emailFor(name),
			Major:       majors[i%len(majors)],
		}

		if _, err := studentService.Create(ctx, req); err != nil {
			if errors.Is(err, repository.ErrDuplicateCode) {
				fmt.Printf("Skipping %s: code %s already exists\n", name, req.StudentCode)
				continue
			}
			fmt.Printf("Error creating student %s (%s): %v\n", name, req.StudentCode, err)
			continue
		}

		successCount++
		if successCount%10 == 0 {
			fmt.Printf("Created %d students...\n", successCount)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, len(names))
}

// emailFor turns "Budi Santoso" into "budi.santoso@student.example.ac.id".
func emailFor(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return slug + "@student.example.ac.id"
}
