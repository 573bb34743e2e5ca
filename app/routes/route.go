package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/jmarinco/go-inventario/app/configs"
	"github.com/jmarinco/go-inventario/app/handlers"
	"github.com/jmarinco/go-inventario/app/middlewares"
	"github.com/jmarinco/go-inventario/app/repositories"
	"github.com/jmarinco/go-inventario/app/services"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/renderer"
	"github.com/jmarinco/go-inventario/app/utils/sessions"
)

type RouterDeps struct {
	Env          configs.ENV
	Store        *store.Store
	Gate         *store.Gate
	SessionStore sessions.SessionStore
	UserRepo     repositories.UserRepositoryImpl
}

// NewRouter wires the full HTTP surface. The storefront lives under
// /api/public and stays open; everything else is the merchant API, which
// goes through the session gate and, when a key is configured, CSRF.
func NewRouter(deps RouterDeps) http.Handler {
	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.SessionGateMiddleware(deps.SessionStore, deps.Gate))

	r := renderer.New()
	validate := validator.New()

	importer := services.NewImportService()
	analyzer := services.NewAnalyzerService(deps.Env.AnalyzerBaseURL, deps.Env.AnalyzerAPIKey)
	checkout := services.NewCheckoutService(deps.Store)
	reports := services.NewReportService(deps.Store)

	productHandler := handlers.NewProductHandler(r, deps.Store, validate)
	folderHandler := handlers.NewFolderHandler(r, deps.Store, validate)
	categoryHandler := handlers.NewCategoryHandler(r, deps.Store, validate)
	orderHandler := handlers.NewOrderHandler(r, deps.Store)
	importHandler := handlers.NewImportHandler(r, deps.Store, importer)
	catalogHandler := handlers.NewCatalogHandler(r, deps.Store, checkout)
	settingsHandler := handlers.NewSettingsHandler(r, deps.Store)
	reportHandler := handlers.NewReportHandler(r, deps.Store, reports)
	analyzeHandler := handlers.NewAnalyzeHandler(r, analyzer)
	authHandler := handlers.NewAuthHandler(r, deps.UserRepo, deps.SessionStore, deps.Gate, validate)

	public := router.PathPrefix("/api/public").Subrouter()
	public.HandleFunc("/catalog", catalogHandler.GetCatalog).Methods("GET")
	public.HandleFunc("/checkout", catalogHandler.Checkout).Methods("POST")

	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	auth.HandleFunc("/session", authHandler.Session).Methods("GET")
	auth.HandleFunc("/dismiss-prompt", authHandler.DismissAuthPrompt).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	if deps.Env.CSRFKey != "" {
		api.Use(csrf.Protect(
			[]byte(deps.Env.CSRFKey),
			csrf.Secure(deps.Env.APP_ENV == "production"),
			csrf.Path("/"),
		))
		api.HandleFunc("/csrf", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-CSRF-Token", csrf.Token(req))
			w.WriteHeader(http.StatusNoContent)
		}).Methods("GET")
	}

	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")
	api.HandleFunc("/products/{id}/increment", productHandler.IncrementStock).Methods("POST")
	api.HandleFunc("/products/{id}/decrement", productHandler.DecrementStock).Methods("POST")
	api.HandleFunc("/products/{id}/move", productHandler.MoveProduct).Methods("POST")

	api.HandleFunc("/folders", folderHandler.ListFolders).Methods("GET")
	api.HandleFunc("/folders", folderHandler.CreateFolder).Methods("POST")
	api.HandleFunc("/folders/{id}", folderHandler.UpdateFolder).Methods("PUT")
	api.HandleFunc("/folders/{id}", folderHandler.DeleteFolder).Methods("DELETE")
	api.HandleFunc("/folders/{id}/move", folderHandler.MoveFolder).Methods("POST")
	api.HandleFunc("/folders/{id}/breadcrumbs", folderHandler.GetBreadcrumbs).Methods("GET")

	api.HandleFunc("/categories", categoryHandler.ListCategories).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.CreateCategory).Methods("POST")
	api.HandleFunc("/categories/{id}", categoryHandler.UpdateCategory).Methods("PUT")
	api.HandleFunc("/categories/{id}", categoryHandler.DeleteCategory).Methods("DELETE")

	api.HandleFunc("/orders", orderHandler.ListOrders).Methods("GET")
	api.HandleFunc("/orders/{id}/complete", orderHandler.CompleteOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/cancel", orderHandler.CancelOrder).Methods("POST")

	api.HandleFunc("/import", importHandler.UploadCSV).Methods("POST")
	api.HandleFunc("/import/template", importHandler.DownloadTemplate).Methods("GET")

	api.HandleFunc("/settings", settingsHandler.GetSettings).Methods("GET")
	api.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods("PUT")
	api.HandleFunc("/settings/save", settingsHandler.SaveSettings).Methods("POST")
	api.HandleFunc("/offer/claim", settingsHandler.ClaimOffer).Methods("POST")

	api.HandleFunc("/reports/summary", reportHandler.GetSummary).Methods("GET")
	api.HandleFunc("/reports/stagnant", reportHandler.GetStagnant).Methods("GET")
	api.HandleFunc("/reports/abc", reportHandler.GetABCClassification).Methods("GET")

	api.HandleFunc("/analyze/image", analyzeHandler.AnalyzeImage).Methods("POST")
	api.HandleFunc("/analyze/name", analyzeHandler.AnalyzeName).Methods("POST")

	return router
}
