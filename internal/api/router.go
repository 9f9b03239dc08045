package api

import (
	"net/http"

	_ "github.com/AlexZinkM/wallet-session/docs"
	"github.com/AlexZinkM/wallet-session/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(sessionHandler *handler.SessionHandler, notificationHandler *handler.NotificationHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Session endpoints
	mux.HandleFunc("/session", sessionHandler.State)
	mux.HandleFunc("/session/state", sessionHandler.SetState)
	mux.HandleFunc("/session/help", sessionHandler.SetHelp)
	mux.HandleFunc("/session/signup", sessionHandler.SignUp)
	mux.HandleFunc("/session/lock", sessionHandler.Lock)
	mux.HandleFunc("/session/unlock", sessionHandler.Unlock)
	mux.HandleFunc("/session/signout", sessionHandler.SignOut)

	mux.HandleFunc("/notifications", notificationHandler.List)

	return mux
}
