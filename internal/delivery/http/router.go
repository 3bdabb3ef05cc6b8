package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mezcaltasting/internal/delivery/http/controllers"
	"mezcaltasting/internal/delivery/http/middleware"
	"mezcaltasting/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	calendar *controllers.CalendarController,
	experiences *controllers.ExperienceController,
	registrations *controllers.RegistrationController,
	store *controllers.StoreController,
	forum *controllers.ForumController,
	home *controllers.HomeController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	verified := middleware.RequireVerification(verifier, logger)

	// Calendar
	mux.HandleFunc("GET /calendar", calendar.Month)

	// Experiences
	mux.HandleFunc("GET /experiences", experiences.List)
	mux.HandleFunc("GET /experiences/{id}", experiences.Get)
	mux.HandleFunc("POST /experiences", experiences.Create)
	mux.HandleFunc("PATCH /experiences/{id}", experiences.Update)
	mux.HandleFunc("DELETE /experiences/{id}", experiences.Delete)
	mux.HandleFunc("GET /experiences/{id}/attendees", experiences.Attendees)
	mux.HandleFunc("GET /experiences/{id}/visitor", experiences.Visitor)

	// Registrations
	mux.HandleFunc("POST /registrations", registrations.Register)

	// Store
	mux.HandleFunc("GET /store/beverages", store.ListBeverages)
	mux.HandleFunc("GET /store/beverages/{id}", store.GetBeverage)
	mux.HandleFunc("POST /store/beverages", store.CreateBeverage)
	mux.HandleFunc("PATCH /store/beverages/{id}", store.UpdateBeverage)
	mux.HandleFunc("DELETE /store/beverages/{id}", store.DeleteBeverage)
	mux.HandleFunc("GET /store/beverages/category/{name}", store.ListBeveragesByCategory)
	mux.HandleFunc("GET /store/products", store.ListProducts)
	mux.HandleFunc("GET /store/categories", store.ListCategories)
	mux.HandleFunc("GET /store/users", store.ListUsers)
	mux.HandleFunc("PATCH /store/users/{id}", store.UpdateUser)
	mux.HandleFunc("POST /store/verify", store.Verify)
	mux.HandleFunc("GET /store/reservations", verified(store.MyReservations))
	mux.HandleFunc("POST /store/reservations", verified(store.Reserve))
	mux.HandleFunc("DELETE /store/reservations/{id}", verified(store.CancelReservation))

	// Forum
	mux.HandleFunc("GET /forum/posts", forum.ListPosts)
	mux.HandleFunc("GET /forum/posts/{id}", forum.GetPost)
	mux.HandleFunc("GET /forum/posts/{id}/comments", forum.ListComments)
	mux.HandleFunc("POST /forum/posts/{id}/comments", forum.AddComment)

	// Home
	mux.HandleFunc("GET /home", home.Info)
	mux.HandleFunc("PATCH /home/{id}", home.Update)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
