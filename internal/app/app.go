package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pressplay/gamestore/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Game Store Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitDatabase,
			a.InitLogger,
			a.InitJWTService,
			a.InitUserLockManager,
			a.InitErrorHandler,
			a.InitUserRepository,
			a.InitCatalogRepositories,
			a.InitStoreRepositories,
			a.InitFriendRepository,
			a.InitAccountUseCase,
			a.InitCatalogUseCase,
			a.InitStoreUseCase,
			a.InitSocialUseCase,
			a.InitAdminUseCase,
			a.InitAuthHandler,
			a.InitUserHandler,
			a.InitCatalogHandler,
			a.InitStoreHandler,
			a.InitFriendHandler,
			a.InitAdminHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.StartServer),
	)

	app.Run()
}
