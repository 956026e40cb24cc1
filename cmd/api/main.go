package main

import (
	_ "salon_campeche/docs"
	"salon_campeche/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Salón Campeche Quoting API
// @version         1.0
// @description     Quote calculator, service catalog and availability API for the Salón Campeche event venue.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
