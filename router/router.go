package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registers the generated swagger spec with the swagger handler.
	_ "go-waitlist-api/docs"
	"go-waitlist-api/handler"
	"go-waitlist-api/metrics"
)

func NewRouter(pageHandler *handler.PageHandler, signupHandler *handler.SignupHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", handler.ErrorHandlingMiddleware(pageHandler.Landing))
	mux.Handle("/signup", handler.ErrorHandlingMiddleware(pageHandler.Submit))
	mux.Handle("/api/signups", handler.ErrorHandlingMiddleware(signupHandler.Create))
	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.Handler())

	return handler.RequestIDMiddleware(handler.RequestLoggingMiddleware(mux))
}
