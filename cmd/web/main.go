// @title           Job Marketplace API
// @version         1.0
// @description     REST backend for a small-jobs marketplace.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /

package main

import (
	"log"

	"jobmarket_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app.Run()
}
