// @title Melodia API
// @version 1.0
// @description Music catalog REST service with token-based authentication
// @host localhost:4000
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"melodia-server-go/internal/bootstrap"
)

func main() {
	fmt.Printf("[%s] [INFO] [BOOT] starting melodia-server...\n", time.Now().Format("2006-01-02 15:04:05.000"))
	if err := bootstrap.Run(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "melodia-server failed: %v\n", err)
		os.Exit(1)
	}
}
