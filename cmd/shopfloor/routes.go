package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"shopfloor/http-server/auth/signin"
	getdirectory "shopfloor/http-server/directory/get"
	generate_excel "shopfloor/http-server/generate-report/generate-excel"
	"shopfloor/http-server/operations/action"
	getproduction "shopfloor/http-server/production/get"
	"shopfloor/http-server/production/live"
	upproduction "shopfloor/http-server/production/update"
	getorders "shopfloor/http-server/work-orders/get"
	"shopfloor/http-server/work-orders/remove"
	"shopfloor/http-server/work-orders/save"
	uporders "shopfloor/http-server/work-orders/update"
	"shopfloor/internal/config"
	"shopfloor/internal/middleware/auth"
)

func routes(cfg *config.Config, log *slog.Logger, a *app) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins, // Разрешаем запросы с фронтенда
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	b := a.board

	router.Post("/api/auth/sign-in", signin.SignIn(log, a.tokens))

	router.Group(func(r chi.Router) {
		r.Use(a.tokens.RequireToken)

		// наряды
		r.Get("/api/work-orders", getorders.GetWorkOrders(log, b))
		r.Post("/api/work-orders", save.SaveWorkOrder(log, b))
		r.Get("/api/work-orders/{id}", getorders.GetWorkOrder(log, b))
		r.Delete("/api/work-orders/{id}", remove.DeleteWorkOrder(log, b))
		r.Put("/api/work-orders/{id}/produced", uporders.UpdateProduced(log, b))
		r.Put("/api/work-orders/{id}/status", uporders.UpdateStatus(log, b))

		// таймер операций
		r.Route("/api/work-orders/{id}/operations/{opID}", func(r chi.Router) {
			r.Post("/play", action.Play(log, b))
			r.Post("/pause", action.Pause(log, b))
			r.Post("/complete", action.Complete(log, b))
			r.Post("/break", action.StartBreak(log, b))
			r.Post("/indirect", action.StartIndirect(log, b))
			r.Post("/manual-time", action.RecordManualTime(log, b))
		})

		r.Post("/api/production/start-all", upproduction.StartAll(log, b))
		r.Get("/api/production/summary", getproduction.GetSummary(log, b))
		r.Get("/api/production/activity", getproduction.GetActivity(log, b))
		r.Get("/api/production/live", live.Live(log, b))

		// справочники
		r.Get("/api/sites", getdirectory.GetSites(log, b))
		r.Get("/api/teams", getdirectory.GetTeams(log, b))
		r.Get("/api/employees", getdirectory.GetEmployees(log, b))
		r.Get("/api/boms", getdirectory.GetBOMs(log, b))
		r.Get("/api/routings", getdirectory.GetRoutings(log, b))
		r.Get("/api/pick-lists", getdirectory.GetPickLists(log, b))

		r.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, a.report))
	})

	router.With(auth.BasicAuth(cfg.Auth.MetricsUser, cfg.Auth.MetricsPass)).Handle("/metrics", a.metrics.Handler())

	return router
}
