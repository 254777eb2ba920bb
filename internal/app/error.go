package app

import (
	"github.com/pressplay/gamestore/internal/http/middleware"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
