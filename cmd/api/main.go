package main

import (
	"context"
	"fmt"
	"os"
)

// @title Pet Shelter Hub API
// @version 1.0
// @description Marketplace de refugios y mascotas con favoritos optimistas.
// @BasePath /
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
