// Comando seed: crea el usuario superadmin inicial si no existe.
//
//	SEED_EMAIL=admin@example.com SEED_PASSWORD=changeme123 go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/infrastructure/postgres"
	"github.com/U-Yash/Eyewear-Product-Management/pkg/config"
	"github.com/U-Yash/Eyewear-Product-Management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" || len(password) < 8 {
		log.Fatal().Msg("SEED_EMAIL y SEED_PASSWORD (mínimo 8 caracteres) son requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el superadmin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Super Admin",
		Role:         entity.RoleSuperAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatal().Err(err).Msg("crear superadmin")
	}
	log.Info().Str("email", email).Str("id", user.ID).Msg("superadmin creado")
}
