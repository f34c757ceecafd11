package http

import (
	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

// Handlers bundles the services the HTTP layer exposes.
type Handlers struct {
	Catalog     *service.CatalogService
	Forms       *service.FormService
	Nav         *service.NavService
	Invocations *service.InvocationService
	Prefs       *service.PrefsService
}
