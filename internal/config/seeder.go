package config

import (
	"context"
	"errors"
	"log"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	workerRepo repositories.WorkerRepository
	areaRepo   repositories.AreaRepository
	cfg        *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{
		workerRepo: repositories.NewWorkerRepository(db),
		areaRepo:   repositories.NewAreaRepository(db),
		cfg:        cfg,
	}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	ctx := context.Background()
	if err := s.seedAreas(ctx); err != nil {
		return err
	}
	if err := s.seedAdmin(ctx); err != nil {
		log.Printf("Admin seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAreas creates the organizational areas when missing
func (s *Seeder) seedAreas(ctx context.Context) error {
	names := []string{
		"Informática",
		"Audiovisual",
		"Diseño/Comunicación",
		"Formación",
	}

	for _, name := range names {
		_, err := s.areaRepo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.areaRepo.Create(ctx, &models.Area{Name: name}); err != nil {
			return err
		}
		log.Printf("Area created: %s", name)
	}

	return nil
}

// seedAdmin creates the bootstrap admin account when no admin exists.
// Intended for development; production should rotate the password
// immediately after first login.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.workerRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	area, err := s.areaRepo.GetByName(ctx, "Informática")
	if err != nil {
		return err
	}

	hashed, err := password.Hash(getEnv("ADMIN_SEED_PASSWORD", "admin123"))
	if err != nil {
		return err
	}

	admin := &models.Worker{
		Email:        "admin@permisos.cl",
		FullName:     "Administrador del Sistema",
		Password:     hashed,
		Role:         domain.RoleAdmin,
		AreaID:       area.ID,
		LeaveBalance: s.cfg.Leave.DefaultDays,
	}

	if err := s.workerRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin account created: %s", admin.Email)
	return nil
}
