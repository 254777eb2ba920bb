package app

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/http/handlers"
)

func (a *application) InitAuthHandler(uc domain.AccountUseCase) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc)
}

func (a *application) InitUserHandler(uc domain.AccountUseCase) *handlers.UserHandler {
	return handlers.NewUserHandler(uc)
}

func (a *application) InitCatalogHandler(catalogUC domain.CatalogUseCase, storeUC domain.StoreUseCase) *handlers.CatalogHandler {
	return handlers.NewCatalogHandler(catalogUC, storeUC)
}

func (a *application) InitStoreHandler(uc domain.StoreUseCase) *handlers.StoreHandler {
	return handlers.NewStoreHandler(uc)
}

func (a *application) InitFriendHandler(uc domain.SocialUseCase) *handlers.FriendHandler {
	return handlers.NewFriendHandler(uc)
}

func (a *application) InitAdminHandler(
	accountUC domain.AccountUseCase,
	catalogUC domain.CatalogUseCase,
	adminUC domain.AdminUseCase,
) *handlers.AdminHandler {
	return handlers.NewAdminHandler(accountUC, catalogUC, adminUC)
}
