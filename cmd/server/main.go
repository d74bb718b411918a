package main

import (
	"context"
	"log"

	"github.com/smolenkov/listshare/internal/server"
	"github.com/smolenkov/listshare/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
