// Package app wires the services on top of their dependencies.
package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/statement"
	"github.com/amirasaad/ledger/pkg/service/user"
	"github.com/gofiber/fiber/v2"
)

// Deps contains everything the services and the HTTP layer need.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	// LimiterStorage backs the rate limiter; nil keeps it in memory.
	LimiterStorage fiber.Storage
}

type App struct {
	Deps             *Deps
	Config           *config.App
	AuthService      *auth.Service
	UserService      *user.Service
	StatementService *statement.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:             deps,
		Config:           cfg,
		AuthService:      auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger),
		UserService:      user.New(deps.Uow, deps.Logger),
		StatementService: statement.New(deps.Uow, deps.Logger),
	}
}
