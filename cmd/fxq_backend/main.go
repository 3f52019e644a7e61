package main

import (
	"os"
)

// @title FX Quote API
// @version 1.0
// @description USD-BRL quote and conversion service.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
