package main

import (
	_ "bransfer_gateway/docs"
	"bransfer_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bransfer Gateway API
// @version         1.0
// @description     Crypto payment gateway: starts Bransfer payments for store orders and applies the provider's IPN status notifications.
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
