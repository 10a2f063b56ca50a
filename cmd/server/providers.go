package main

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"aura-server/internal/config"
	"aura-server/internal/domain/account"
	"aura-server/internal/infrastructure/auth"
	"aura-server/internal/infrastructure/database"
	"aura-server/internal/infrastructure/logger"
)

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func newGormDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(database.NewConfig(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func newPasswordHasher(cfg *config.Config) *auth.PasswordHasher {
	return auth.NewPasswordHasher(cfg.BcryptCost)
}

func newTokenService(cfg *config.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.SecretKey, cfg.AccessTokenTTL())
}

func newRegistrationValidator(cfg *config.Config) *account.RegistrationValidator {
	validationConfig := account.DefaultRegistrationValidationConfig()
	if len(cfg.AllowedDomains) > 0 {
		validationConfig.AllowedDomains = cfg.AllowedDomains
	}
	return account.NewRegistrationValidator(validationConfig)
}
