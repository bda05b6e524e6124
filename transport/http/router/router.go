package router

import (
	"reception/internal/handlers/auth"
	"reception/internal/handlers/inventory"
	"reception/internal/handlers/preventive"
	"reception/internal/handlers/report"
	"reception/internal/handlers/request"
	"reception/internal/handlers/room"
	"reception/internal/handlers/staff"
	"reception/internal/handlers/workorder"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Room       room.Handler
	Staff      staff.Handler
	Request    request.Handler
	WorkOrder  workorder.Handler
	Inventory  inventory.Handler
	Preventive preventive.Handler
	Report     report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
		r.DomainHandlers.WorkOrder.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Preventive.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
