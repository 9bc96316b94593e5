package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NovaMenteServices/clinic-manager/internal/config"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedAdmin(db, cfg)

	return db
}

// Migrate aplica o esquema. A unicidade de cpf ignora pontuação, então
// o índice compara os dígitos; tag do gorm não expressa índice
// funcional, o exec fica à parte.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_patients_cpf_digits " +
			"ON patients (regexp_replace(cpf, '[^0-9]', '', 'g')) " +
			"WHERE deleted_at IS NULL",
	).Error
}

// seedAdmin cria o administrador inicial quando o banco está vazio,
// para que uma instalação nova tenha como logar.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	if cfg.SeedAdminPassword == "" {
		log.Warn().Msg("no users found and SEED_ADMIN_PASSWORD unset, skipping admin seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash seed admin password")
		return
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		Active:       true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		return
	}

	log.Info().Str("email", admin.Email).Msg("seeded initial admin user")
}
