package main

import (
	"log"

	"github.com/clubstack/club-api/cmd/app"
	"github.com/clubstack/club-api/internal/adapters/config"
	setupHTTP "github.com/clubstack/club-api/internal/adapters/controller/http/setup"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	setupHTTP.Setup(a)

	a.Start()
}
