package main

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/Mountainraceshop/pressure-balance-app/internal/auth"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/authority"
	chartpng "github.com/Mountainraceshop/pressure-balance-app/internal/calc/chart"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/damping"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/export"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/fit"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/geometry"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/premium/autodesign"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/premium/batch"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/premium/importer"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/premium/recommend"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/report"
	"github.com/Mountainraceshop/pressure-balance-app/internal/pay"
	"github.com/Mountainraceshop/pressure-balance-app/internal/profile"
	"github.com/Mountainraceshop/pressure-balance-app/internal/repo"
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
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{
		JWTkey:          []byte(tokenKey),
		Repo:            userRepo,
		PaymentDisabled: os.Getenv("PAYMENT_DISABLED") == "1",
	}
	if clientID, secret := os.Getenv("PAYPAL_CLIENT_ID"), os.Getenv("PAYPAL_SECRET"); clientID != "" && secret != "" {
		authEnv.Pay = pay.NewClient(clientID, secret)
	} else if !authEnv.PaymentDisabled {
		log.Println("PAYPAL_CLIENT_ID / PAYPAL_SECRET not set; unlock endpoint will refuse")
	}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile/geometry", profileH.UpdateGeometry).Methods("PUT")
	secureApi.HandleFunc("/unlock", authEnv.UnlockHandler).Methods("POST")

	geometryH := &geometry.Handler{}
	interpH := &interp.Handler{}
	fitH := &fit.Handler{}
	dampingH := &damping.Handler{}
	authorityH := &authority.Handler{}
	reportH := &report.Handler{}
	chartH := &chartpng.Handler{}
	exportH := &export.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{}

	secureApi.HandleFunc("/tools/geometry/calc", geometryH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/interp/calc", interpH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/fit/calc", fitH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/damping/calc", dampingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/authority/calc", authorityH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/authority/table", authorityH.Table).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/chart/png", chartH.PNG).Methods("POST")
	secureApi.HandleFunc("/tools/export/csv", exportH.CSV).Methods("POST")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.XLSX).Methods("POST")

	premiumApi := secureApi.PathPrefix("/tools-premium").Subrouter()
	premiumApi.Use(authEnv.PremiumMiddleware)

	premiumApi.HandleFunc("/batch/tables", batchH.Tables).Methods("POST")
	premiumApi.HandleFunc("/import/samples", importerH.Samples).Methods("POST")
	premiumApi.HandleFunc("/recommend/authority", recommendH.Authority).Methods("POST")
	premiumApi.HandleFunc("/autodesign/zeta", autodesignH.Zeta).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
