package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/atmcore/internal/atm"
	"github.com/dmitrijs2005/atmcore/internal/atm/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := atm.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
