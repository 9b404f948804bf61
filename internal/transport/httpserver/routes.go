package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"petcare-go/internal/config"
	"petcare-go/internal/transport/httpserver/handler"
	"petcare-go/internal/transport/httpserver/middleware"
	"petcare-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(middleware.NewCORS(cfg.HTTP.AllowedOrigins()))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/users", handlers.ListUsers)
		r.Post("/users", handlers.CreateUser)
		r.Get("/users/{id}", handlers.GetUser)
		r.Put("/users/{id}", handlers.UpdateUser)
		r.Delete("/users/{id}", handlers.DeleteUser)
		r.Get("/users/{id}/tickets", handlers.ListUserTickets)
		r.Get("/users/{id}/notifications", handlers.ListUserNotifications)
		r.Delete("/users/{id}/notifications", handlers.DeleteUserNotifications)
		r.Get("/users/{id}/schedules", handlers.ListUserSchedules)

		r.Get("/managers", handlers.ListManagers)
		r.Get("/managers/{id}", handlers.GetManager)
		r.Get("/managers/{id}/tickets", handlers.ListManagerTickets)

		r.Get("/pet-owners", handlers.ListPetOwners)
		r.Get("/pet-owners/{id}", handlers.GetPetOwner)
		r.Put("/pet-owners/{id}", handlers.UpdatePetOwner)
		r.Get("/pet-owners/{id}/pets", handlers.ListOwnerPets)
		r.Get("/pet-owners/{id}/bookings", handlers.ListOwnerBookings)

		r.Get("/service-providers", handlers.ListServiceProviders)
		r.Get("/service-providers/{id}", handlers.GetServiceProvider)
		r.Put("/service-providers/{id}", handlers.UpdateServiceProvider)
		r.Get("/service-providers/{id}/services", handlers.ListProviderServices)

		r.Get("/tickets", handlers.ListTickets)
		r.Post("/tickets", handlers.CreateTicket)
		r.Get("/tickets/{id}", handlers.GetTicket)
		r.Put("/tickets/{id}", handlers.UpdateTicket)
		r.Delete("/tickets/{id}", handlers.DeleteTicket)
		r.Post("/tickets/{id}/assign", handlers.AssignTicket)
		r.Post("/tickets/{id}/response", handlers.RespondTicket)

		r.Post("/pets", handlers.CreatePet)
		r.Get("/pets/{id}", handlers.GetPet)
		r.Put("/pets/{id}", handlers.UpdatePet)
		r.Delete("/pets/{id}", handlers.DeletePet)
		r.Get("/pets/{id}/diets", handlers.ListPetDiets)
		r.Get("/pets/{id}/activities", handlers.ListPetActivities)

		r.Post("/diets", handlers.CreateDiet)
		r.Get("/diets/{id}", handlers.GetDiet)
		r.Put("/diets/{id}", handlers.UpdateDiet)
		r.Delete("/diets/{id}", handlers.DeleteDiet)
		r.Get("/diets/{id}/schedules", handlers.ListDietSchedules)

		r.Post("/activities", handlers.CreateActivity)
		r.Get("/activities/{id}", handlers.GetActivity)
		r.Put("/activities/{id}", handlers.UpdateActivity)
		r.Delete("/activities/{id}", handlers.DeleteActivity)
		r.Get("/activities/{id}/schedules", handlers.ListActivitySchedules)

		r.Post("/pet-schedules", handlers.CreatePetSchedule)
		r.Get("/pet-schedules/{id}", handlers.GetPetSchedule)
		r.Put("/pet-schedules/{id}", handlers.UpdatePetSchedule)
		r.Delete("/pet-schedules/{id}", handlers.DeletePetSchedule)

		r.Get("/service-types", handlers.ListServiceTypes)
		r.Post("/service-types", handlers.CreateServiceType)
		r.Get("/service-types/{id}", handlers.GetServiceType)
		r.Put("/service-types/{id}", handlers.UpdateServiceType)
		r.Delete("/service-types/{id}", handlers.DeleteServiceType)
		r.Get("/service-types/{id}/services", handlers.ListTypeServices)

		r.Get("/services", handlers.ListServices)
		r.Post("/services", handlers.CreateService)
		r.Get("/services/{id}", handlers.GetService)
		r.Put("/services/{id}", handlers.UpdateService)
		r.Delete("/services/{id}", handlers.DeleteService)
		r.Get("/services/{id}/slots", handlers.ListServiceTimeSlots)
		r.Post("/services/{id}/slots", handlers.CreateTimeSlot)
		r.Delete("/services/{id}/slots/{slot}", handlers.DeleteTimeSlot)
		r.Get("/slots", handlers.ListTimeSlots)

		r.Post("/bookings", handlers.CreateBooking)
		r.Get("/bookings/{id}", handlers.GetBooking)
		r.Delete("/bookings/{id}", handlers.DeleteBooking)
		r.Put("/bookings/{id}/status", handlers.UpdateBookingStatus)
		r.Get("/bookings/{id}/pets", handlers.ListBookingPets)
		r.Post("/bookings/{id}/pets", handlers.AddBookingPet)
		r.Get("/bookings/{id}/report", handlers.GetServiceReport)
		r.Post("/bookings/{id}/report", handlers.CreateServiceReport)
		r.Get("/bookings/{id}/review", handlers.GetServiceReview)
		r.Post("/bookings/{id}/review", handlers.CreateServiceReview)
		r.Get("/bookings/{id}/updates", handlers.ListServiceUpdates)
		r.Post("/bookings/{id}/updates", handlers.CreateServiceUpdate)

		r.Post("/notifications", handlers.CreateNotification)
		r.Get("/notifications/{id}", handlers.GetNotification)
		r.Put("/notifications/{id}", handlers.UpdateNotification)
		r.Delete("/notifications/{id}", handlers.DeleteNotification)

		r.Post("/schedules", handlers.CreateSchedule)
		r.Get("/schedules/{id}", handlers.GetSchedule)
		r.Put("/schedules/{id}", handlers.UpdateSchedule)
		r.Delete("/schedules/{id}", handlers.DeleteSchedule)
	})

	return r
}
