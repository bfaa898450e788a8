// Package web serves the factory and warehouse HTML pages. Every warehouse
// page is gated on an authenticated session carried in a cookie; the
// templates are thin named-value sinks owned by the presentation layer.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	db        *sqlx.DB
	secret    string
	templates *template.Template
}

// New constructs a Handler.
func New(db *sqlx.DB, secret string) *Handler {
	return &Handler{
		db:        db,
		secret:    secret,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Router wires up the HTTP surface.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.homepage)
	r.Get("/details", h.detailsPage)
	r.Get("/acknowledgements", h.acknowledgementsPage)

	r.Route("/factory", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/factory/login", http.StatusFound)
		})
		r.Get("/login", h.login)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Group(func(pr chi.Router) {
			pr.Use(h.sessionMiddleware)
			pr.Get("/dashboard", h.dashboard)
		})
	})

	r.Route("/warehouse", func(r chi.Router) {
		r.Use(h.sessionMiddleware)
		r.Get("/", h.warehouseHome)

		r.Get("/manufacturers", h.manufacturers)
		r.Get("/manufacturers/update", h.manufacturerUpdate)
		r.Post("/manufacturers/update", h.manufacturerUpdate)
		r.Get("/manufacturers/{id}", h.manufacturer)

		r.Get("/medicines", h.medicines)
		r.Get("/medicines/update", h.medicineUpdate)
		r.Post("/medicines/update", h.medicineUpdate)
		r.Get("/medicines/{id}", h.medicine)

		r.Get("/sales", h.sales)
		r.Get("/sales/update", h.saleUpdate)
		r.Post("/sales/update", h.saleUpdate)
		r.Get("/sales/{id}", h.sale)

		r.Get("/salts", h.salts)
		r.Get("/salts/update", h.saltUpdate)
		r.Post("/salts/update", h.saltUpdate)
		r.Get("/salts/{id}", h.salt)
	})

	return r
}

func (h *Handler) homepage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "homepage.html", nil)
}

func (h *Handler) detailsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "details.html", nil)
}

func (h *Handler) acknowledgementsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "acknowledgements.html", nil)
}

func (h *Handler) warehouseHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, "warehouse_home.html", nil)
}

// Helpers

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func encodeJSON(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
