package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	punchHandler PunchHandler,
	catalogHandler CatalogHandler,
	exceptionHandler ExceptionHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.Create)
				r.Get("/", punchHandler.List)
				r.Get("/{id}", punchHandler.Get)
				r.Get("/{id}/exceptions", exceptionHandler.ListByTimeEntry)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/", catalogHandler.CreateShift)
				r.Get("/", catalogHandler.ListShifts)
				r.Get("/{id}", catalogHandler.GetShift)
				r.Delete("/{id}", catalogHandler.DeactivateShift)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", catalogHandler.CreateAssignment)
				r.Get("/", catalogHandler.ListAssignments)
				r.Delete("/{id}", catalogHandler.DeleteAssignment)
			})

			r.Route("/rounding-rules", func(r chi.Router) {
				r.Post("/", catalogHandler.CreateRoundingRule)
				r.Get("/", catalogHandler.ListRoundingRules)
				r.Delete("/{id}", catalogHandler.DeleteRoundingRule)
			})

			r.Get("/exceptions", exceptionHandler.List)

			r.Post("/reconcile/run", punchHandler.Reconcile)
		})
	})

	return r
}
