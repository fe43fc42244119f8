package main

import (
	auth "Quarry/internal/auth"
	batch "Quarry/internal/calc/batch"
	border "Quarry/internal/calc/border"
	estimate "Quarry/internal/calc/estimate"
	geometry "Quarry/internal/calc/geometry"
	importer "Quarry/internal/calc/importer"
	pattern "Quarry/internal/calc/pattern"
	quote "Quarry/internal/calc/quote"
	tonnage "Quarry/internal/calc/tonnage"
	catalog "Quarry/internal/catalog"
	profile "Quarry/internal/profile"
	registry "Quarry/internal/registry"
	repo "Quarry/internal/repo"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgres(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Users: store}
	profileH := &profile.ProfileHandler{Repo: store}
	registryH := &registry.Handler{Store: store}

	estimateCfg := estimate.LoadConfig()
	catalogH := &catalog.Handler{}
	geometryH := &geometry.Handler{}
	tonnageH := &tonnage.Handler{}
	patternH := &pattern.Handler{}
	borderH := &border.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	estimateH := &estimate.Handler{Config: estimateCfg}
	quoteH := &quote.Handler{Config: estimateCfg}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	// Public: reference data, hardcoded calculators, registry widget.
	api.HandleFunc("/catalog", catalogH.Get).Methods("GET")
	api.HandleFunc("/tools/area/calc", geometryH.Calc).Methods("POST")
	api.HandleFunc("/tools/tonnage/calc", tonnageH.Calc).Methods("POST")
	api.HandleFunc("/tools/tonnage/batch", batchH.Tonnage).Methods("POST")
	api.HandleFunc("/tools/pattern/calc", patternH.Calc).Methods("POST")
	api.HandleFunc("/tools/border/calc", borderH.Calc).Methods("POST")

	api.HandleFunc("/calculators", registryH.List).Methods("GET")
	api.HandleFunc("/calculators/{id}/evaluate", registryH.Evaluate).Methods("POST")

	// Authenticated: profile and the contractor tools.
	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/tools/estimate/calc", estimateH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/quote/pdf", quoteH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/tonnage/import", importerH.Tonnage).Methods("POST")

	// Admin: calculator definition management.
	adminApi := api.PathPrefix("/admin").Subrouter()
	adminApi.Use(authEnv.AuthMiddleware)
	adminApi.Use(authEnv.RequireAdmin)

	adminApi.HandleFunc("/calculators", registryH.ListAll).Methods("GET")
	adminApi.HandleFunc("/calculators", registryH.Create).Methods("POST")
	adminApi.HandleFunc("/calculators/{id}", registryH.Update).Methods("PUT")
	adminApi.HandleFunc("/calculators/{id}", registryH.Delete).Methods("DELETE")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	db := auth.InitDB()
	defer db.Close()
	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting server on", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
