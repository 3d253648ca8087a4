package router

import (
	"net/http"

	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/room"
	"lodge/shared/constant"
	"lodge/shared/timezone"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

const apiVersion = "1.0.0"

type DomainHandlers struct {
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.Recovery)
	router.Use(r.Middleware.CORS)
	router.Use(r.Middleware.Logging)
	router.Use(r.Middleware.Tracing)

	router.NotFound(response.WithNotFoundRoute)
	router.MethodNotAllowed(response.WithNotFoundRoute)

	router.Get("/", r.index)
	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func (r *Router) index(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSONMessage(writer, http.StatusOK, "Hotel Management API", map[string]any{
		"version":   apiVersion,
		"timestamp": timezone.Format(timezone.Now(), constant.DateFormat),
		"endpoints": map[string]any{
			"rooms": map[string]string{
				"getAll":      "GET /api/rooms",
				"getOne":      "GET /api/rooms/{id}",
				"getByStatus": "GET /api/rooms/status/{status}",
				"create":      "POST /api/rooms",
				"update":      "PUT /api/rooms/{id}",
				"delete":      "DELETE /api/rooms/{id}",
			},
			"guests": map[string]string{
				"getAll": "GET /api/guests",
				"getOne": "GET /api/guests/{id}",
				"create": "POST /api/guests",
				"update": "PUT /api/guests/{id}",
				"delete": "DELETE /api/guests/{id}",
			},
			"bookings": map[string]string{
				"getAll":     "GET /api/bookings",
				"getOne":     "GET /api/bookings/{id}",
				"getByGuest": "GET /api/bookings/guest/{guestId}",
				"getByRoom":  "GET /api/bookings/room/{roomId}",
				"create":     "POST /api/bookings",
				"update":     "PUT /api/bookings/{id}",
				"delete":     "DELETE /api/bookings/{id}",
			},
		},
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
