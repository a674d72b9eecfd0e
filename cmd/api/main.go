//	@title			Loanboard API
//	@version		1.0
//	@description	Content API for loan listings, categories, commodity prices and apply-now settings.
//
//	@host		localhost:8080
//	@BasePath	/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"os"

	"github.com/loanboard/cms/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
