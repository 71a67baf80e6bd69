// Command relay serves the explanation relay: POST /explain forwards the
// selected text to the configured language model, GET /health reports
// liveness. It stops gracefully on SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/textscanner/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("relay: %v", err)
	}
	stop()
}
