package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// Router assembles the full middleware chain and route table.
func Router() *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(200, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)
	r.Use(TryPutUserInContextMiddleware)

	r.Get("/", Home)

	r.HandleFunc("/register", Register)
	r.HandleFunc("/login", Login)
	r.With(RequireAuthenticatedMiddleware).Get("/logout", Logout)

	r.HandleFunc("/post/{postID}", ShowPost)

	r.Get("/about", About)
	r.Get("/contact", Contact)

	r.With(RequireAdminMiddleware).HandleFunc("/new-post", NewPost)
	r.With(RequireAdminMiddleware).HandleFunc("/edit-post/{postID}", EditPost)
	r.With(RequireAdminMiddleware).Get("/delete/{postID}", DeletePost)

	fileServer := http.FileServer(http.Dir("./assets"))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}
