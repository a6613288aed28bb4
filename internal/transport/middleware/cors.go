package middleware

import (
	"github.com/rs/cors"

	"github.com/cours-de-latin/morphdict/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing,
// including preflight OPTIONS requests.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
