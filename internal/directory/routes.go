package directory

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/honestng/honest-backend/internal/auth"
	"github.com/honestng/honest-backend/internal/middleware"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	// Debounce for review/vote double submits
	writeLimit := middleware.RateLimit(rate.Every(time.Second), 5)

	r.Get("/", IndexHandler)
	r.Get("/categories", AllCategoriesHandler)
	r.Get("/categories/{categorySlug}", CategoryHandler)
	r.Get("/areas", AllAreasHandler)
	r.Get("/areas/{areaSlug}", AreaHandler)
	r.Get("/areas/{areaSlug}/categories/{categorySlug}", CategoryInAreaHandler)
	r.Get("/people/{id}", PersonHandler)
	r.With(writeLimit).Post("/people/{id}/reviews", ReviewHandler)
	r.With(writeLimit).Post("/people/{id}/vote", VoteHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/categories", AddCategoryHandler)
		r.Delete("/categories/{categorySlug}", DeleteCategoryHandler)
		r.Post("/areas", AddAreaHandler)
		r.Delete("/areas/{areaSlug}", DeleteAreaHandler)
		r.Post("/people", AddPersonHandler)
	})

	return r
}
