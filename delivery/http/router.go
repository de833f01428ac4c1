package http

import (
	"net/http"

	"travel-crm-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	ClientHandler    *ClientHandler
	LeadHandler      *LeadHandler
	QuoteHandler     *QuoteHandler
	FlightHandler    *FlightHandler
	PassengerHandler *PassengerHandler
	SaleHandler      *SaleHandler
	BoardHandler     *BoardHandler
	FinanceHandler   *FinanceHandler
	AgendaHandler    *AgendaHandler
	LookupHandler    *LookupHandler
	PrintHandler     *PrintHandler
	AdminHandler     *AdminHandler
	WebhookHandler   *WebhookHandler
	HealthHandler    *HealthHandler
	AdminServiceKey  string
	AppLogger        logger.LoggerInterface
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(LoggingMiddleware(r.AppLogger))

	// Health check endpoint
	router.Get("/health", r.HealthHandler.HealthCheckHandler)

	// Webhook proxy sits outside the versioned API, it is called by the
	// browser directly and answers its own CORS preflight
	router.HandleFunc("/webhook/proxy", r.WebhookHandler.ProxyHandler)

	router.Route("/api/v1", func(api chi.Router) {
		// Client routes
		api.Route("/clients", func(clients chi.Router) {
			clients.Post("/", r.ClientHandler.CreateHandler)
			clients.Get("/", r.ClientHandler.ListHandler)
			clients.Get("/{id}", r.ClientHandler.GetByIDHandler)
			clients.Put("/{id}", r.ClientHandler.UpdateHandler)
			clients.Delete("/{id}", r.ClientHandler.DeleteHandler)
		})

		// Lead routes
		api.Route("/leads", func(leads chi.Router) {
			leads.Post("/", r.LeadHandler.CreateHandler)
			leads.Get("/", r.LeadHandler.ListHandler)
			leads.Get("/{id}", r.LeadHandler.GetByIDHandler)
			leads.Put("/{id}", r.LeadHandler.UpdateHandler)
			leads.Delete("/{id}", r.LeadHandler.DeleteHandler)
			leads.Post("/{id}/convert", r.LeadHandler.ConvertHandler)
		})

		// Quote routes and the nested quote tabs
		api.Route("/quotes", func(quotes chi.Router) {
			quotes.Post("/", r.QuoteHandler.CreateHandler)
			quotes.Get("/", r.QuoteHandler.ListHandler)
			quotes.Get("/{quoteID}", r.QuoteHandler.GetByIDHandler)
			quotes.Get("/{quoteID}/full", r.QuoteHandler.GetFullHandler)
			quotes.Put("/{quoteID}", r.QuoteHandler.UpdateHandler)
			quotes.Delete("/{quoteID}", r.QuoteHandler.DeleteHandler)

			quotes.Route("/{quoteID}/flights", func(flights chi.Router) {
				flights.Post("/", r.FlightHandler.CreateHandler)
				flights.Get("/", r.FlightHandler.ListByQuoteHandler)
			})

			quotes.Route("/{quoteID}/passengers", func(passengers chi.Router) {
				passengers.Post("/", r.PassengerHandler.AddHandler)
				passengers.Get("/", r.PassengerHandler.ListByQuoteHandler)
			})

			quotes.Route("/{quoteID}/sale", func(sale chi.Router) {
				sale.Get("/", r.SaleHandler.GetHandler)
				sale.Put("/", r.SaleHandler.UpdateFiguresHandler)
				sale.Post("/items", r.SaleHandler.AddItemHandler)
				sale.Post("/launch", r.SaleHandler.LaunchHandler)
				sale.Post("/unlaunch", r.SaleHandler.UnlaunchHandler)
			})

			quotes.Get("/{quoteID}/print", r.PrintHandler.RenderHandler)
			quotes.Get("/{quoteID}/pix", r.PrintHandler.PixHandler)
		})

		// Leg and traveler routes addressed by their own IDs
		api.Put("/flights/{id}", r.FlightHandler.UpdateHandler)
		api.Delete("/flights/{id}", r.FlightHandler.DeleteHandler)
		api.Delete("/passengers/{id}", r.PassengerHandler.RemoveHandler)
		api.Put("/sale-items/{id}", r.SaleHandler.UpdateItemHandler)
		api.Delete("/sale-items/{id}", r.SaleHandler.RemoveItemHandler)

		// Pipeline board routes
		api.Route("/board", func(board chi.Router) {
			board.Get("/", r.BoardHandler.GetHandler)
			board.Post("/move", r.BoardHandler.MoveCardHandler)
		})

		// Ledger routes
		api.Route("/finance", func(finance chi.Router) {
			finance.Route("/payables", func(payables chi.Router) {
				payables.Post("/", r.FinanceHandler.CreatePayableHandler)
				payables.Get("/", r.FinanceHandler.ListPayablesHandler)
				payables.Put("/{id}", r.FinanceHandler.UpdatePayableHandler)
				payables.Delete("/{id}", r.FinanceHandler.DeletePayableHandler)
			})
			finance.Route("/receivables", func(receivables chi.Router) {
				receivables.Post("/", r.FinanceHandler.CreateReceivableHandler)
				receivables.Get("/", r.FinanceHandler.ListReceivablesHandler)
				receivables.Put("/{id}", r.FinanceHandler.UpdateReceivableHandler)
				receivables.Delete("/{id}", r.FinanceHandler.DeleteReceivableHandler)
			})
		})

		// Agenda routes
		api.Route("/tasks", func(tasks chi.Router) {
			tasks.Post("/", r.AgendaHandler.CreateTaskHandler)
			tasks.Get("/", r.AgendaHandler.ListTasksHandler)
			tasks.Put("/{id}", r.AgendaHandler.UpdateTaskHandler)
			tasks.Delete("/{id}", r.AgendaHandler.DeleteTaskHandler)
		})
		api.Route("/appointments", func(appointments chi.Router) {
			appointments.Post("/", r.AgendaHandler.CreateAppointmentHandler)
			appointments.Get("/", r.AgendaHandler.ListAppointmentsHandler)
			appointments.Put("/{id}", r.AgendaHandler.UpdateAppointmentHandler)
			appointments.Delete("/{id}", r.AgendaHandler.DeleteAppointmentHandler)
		})

		// Lookup routes
		api.Route("/suppliers", func(suppliers chi.Router) {
			suppliers.Post("/", r.LookupHandler.CreateSupplierHandler)
			suppliers.Get("/", r.LookupHandler.ListSuppliersHandler)
			suppliers.Delete("/{id}", r.LookupHandler.DeleteSupplierHandler)
		})
		api.Route("/categories", func(categories chi.Router) {
			categories.Post("/", r.LookupHandler.CreateCategoryHandler)
			categories.Get("/", r.LookupHandler.ListCategoriesHandler)
			categories.Delete("/{id}", r.LookupHandler.DeleteCategoryHandler)
		})
		api.Route("/payment-methods", func(methods chi.Router) {
			methods.Post("/", r.LookupHandler.CreatePaymentMethodHandler)
			methods.Get("/", r.LookupHandler.ListPaymentMethodsHandler)
			methods.Delete("/{id}", r.LookupHandler.DeletePaymentMethodHandler)
		})
		api.Route("/companies", func(companies chi.Router) {
			companies.Post("/", r.LookupHandler.CreateCompanyHandler)
			companies.Get("/", r.LookupHandler.ListCompaniesHandler)
			companies.Put("/{id}", r.LookupHandler.UpdateCompanyHandler)
		})
		api.Get("/airlines", r.LookupHandler.ListAirlinesHandler)

		// Admin routes behind the shared service key
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(ServiceKeyMiddleware(r.AdminServiceKey, r.AppLogger, r.AdminHandler.API))
			admin.Post("/users", r.AdminHandler.CreateUserHandler)
			admin.Post("/users/confirm", r.AdminHandler.ConfirmUserHandler)
			admin.Get("/users/{id}/signin-link", r.AdminHandler.SignInLinkHandler)
		})
	})

	return router
}
