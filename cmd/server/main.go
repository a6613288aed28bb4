// Command server exposes a compiled morphological dictionary as a JSON REST
// API. Configuration comes from CONFIG_PATH (or ./config.yaml) and the
// environment; DICT_PATH is required.
//
// Endpoints:
//
//	GET  /api/parse?word=<word>[&predict=false]
//	GET  /api/known?word=<word>
//	GET  /api/resolve?paradigm_id=<n>&word_idx=<n>
//	GET  /api/tag?tag=<tag>
//	GET  /api/predict?word=<word>
//	GET  /api/complete?prefix=<prefix>[&limit=<n>]
//	GET  /api/info
//	GET  /api/grammemes
//	GET  /health
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cours-de-latin/morphdict/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		stop()
		os.Exit(1)
	}
}
