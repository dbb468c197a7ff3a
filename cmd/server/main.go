package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/skillwisehq/skillswap/internal/api"
	"github.com/skillwisehq/skillswap/internal/middleware"
	"github.com/skillwisehq/skillswap/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded configuration from .env")
	}

	addr := utils.SafeEnv("SKILLSWAP_ADDR", ":8080")

	router := api.NewRouter()
	adminEmail := utils.SafeEnv("SKILLSWAP_BOOTSTRAP_ADMIN_EMAIL", "admin@skillwise.in")
	adminPassword := utils.SafeEnv("SKILLSWAP_BOOTSTRAP_ADMIN_PASSWORD", "admin123")
	adminName := utils.SafeEnv("SKILLSWAP_BOOTSTRAP_ADMIN_NAME", "Platform Admin")
	if err := router.BootstrapAdmin(adminName, adminEmail, adminPassword); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	mux := http.NewServeMux()
	router.Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"name": "SkillSwap API",
		})
	})

	handler := middleware.CORS(middleware.SecureHeaders(middleware.NoStore(mux)))

	log.Printf("SkillSwap server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
