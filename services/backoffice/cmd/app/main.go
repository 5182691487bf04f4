package main

import (
	"lv33global/pkg/config"
	"lv33global/services/backoffice/internal/app"

	_ "lv33global/services/backoffice/docs" // Swagger docs
)

// @title           LV33 Global Backoffice API
// @version         1.0
// @description     Content management backend for casino listings, news posts, games and promotional cards.

// @host      localhost:3000
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
