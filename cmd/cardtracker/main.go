package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"cardtracker/internal/cli"
)

//go:generate swag init --dir ../../ -g cmd/cardtracker/main.go -o ../../docs --parseInternal

//	@title			Card Tracker API
//	@version		1.0
//	@description	Trading card inventory: purchases, grading, sales and profit.
//	@BasePath		/
func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
