package api

import (
	"net/http"

	"github.com/taskpoint/assist/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
) {
	routes.Register(
		mux,
		domain.Chat.Handler().Routes(),
		domain.Employees.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
	)
}
