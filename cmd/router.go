package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-admin-auth/internal/handlers"
	"github.com/sbilibin2017/gw-admin-auth/internal/middlewares"
)

type routerDeps struct {
	loginer        handlers.Loginer
	tokener        middlewares.Tokener
	throttler      middlewares.Throttler
	throttleHeader string
	log            *zap.SugaredLogger
	swaggerURL     string
}

// newRouter mounts the admin login routes.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(d.log))

	loginHandler := handlers.NewLoginHandler(d.loginer)

	// Public routes
	r.Post("/admin/login", loginHandler)
	r.With(middlewares.ThrottleMiddleware(d.throttler, d.throttleHeader)).
		Post("/v1/admin/login", loginHandler)
	r.Get("/v2/admin/login", handlers.NewLoginV2Handler())

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener))
		r.Get("/admin/permissions", handlers.NewPermissionsHandler())
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	return r
}
