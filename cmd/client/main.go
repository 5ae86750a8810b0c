package main

import (
	"context"
	"log"

	"github.com/avasiljevs/userauth/internal/client/cli"
	"github.com/avasiljevs/userauth/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
