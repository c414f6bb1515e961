package main

import (
	_ "splitpay/docs"
	"splitpay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Split Payment Service API
// @version         1.0
// @description     Split payments across credit card, cash, check, store credit and gift card, with an append-only transaction ledger.
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
