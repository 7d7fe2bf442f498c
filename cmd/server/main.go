package main

import (
	"log"

	"campus-nav/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeNavigationServer()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Sugar().Fatalf("server stopped: %v", err)
	}
}
