package app

import (
	"github.com/go-chi/chi/v5/middleware"

	"github.com/prajwalw/tempobill/app/route/invoice"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	invoice.NewHandlerGroup(a.consultant, a.apiToken).Mount(a.router)
}
