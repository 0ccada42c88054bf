package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/drivewise/fleet-api/api/handlers"

	"go.uber.org/zap"

	"github.com/drivewise/fleet-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //load snapshots and build the router
		log.Fatal(err)
	}

	zap.S().Infow("fleet-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
