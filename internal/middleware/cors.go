package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware configures permissive CORS: the API is consumed by browser
// frontends on arbitrary origins and carries no credentials of its own.
func CORSMiddleware() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
