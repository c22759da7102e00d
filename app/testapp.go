// File: app/testapp.go
package app

import (
	"log"
	"net/http"

	"go-waitlist-api/handler"
	"go-waitlist-api/intake"
	"go-waitlist-api/router"
	"go-waitlist-api/service"
)

// TestApp wires the full HTTP stack around an injected intake client so
// integration tests can drive the real routes without touching the network.
type TestApp struct {
	Router http.Handler
}

func NewTestApp(intakeClient intake.Client) *TestApp {
	signupService := service.NewSignupService(intakeClient)

	pageHandler, err := handler.NewPageHandler(signupService)
	if err != nil {
		log.Fatalf("could not build page handler for tests: %v", err)
	}
	signupHandler := handler.NewSignupHandler(signupService)

	return &TestApp{
		Router: router.NewRouter(pageHandler, signupHandler),
	}
}
