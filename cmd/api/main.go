package main

import (
	_ "beavers_choice/docs"
	"beavers_choice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Beavers Choice Quoting API
// @version         1.0
// @description     Quote-to-fulfillment pipeline for the Beavers Choice Paper Company: inventory, pricing, fulfillment decisions and the transaction ledger.
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
