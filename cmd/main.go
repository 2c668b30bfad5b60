package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Wayn-App/internal/config"
	"Wayn-App/internal/domain/repository"
	"Wayn-App/internal/domain/service"
	"Wayn-App/internal/handler"
	"Wayn-App/internal/infrastructure/database"
	"Wayn-App/internal/infrastructure/firestore"
	"Wayn-App/internal/infrastructure/googleauth"
	"Wayn-App/internal/infrastructure/images"
	repoimpl "Wayn-App/internal/repository"
	"Wayn-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()
	if missing := cfg.Missing(); len(missing) > 0 {
		log.Fatalf("Environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.Seasonal.Active {
		log.Println("☀️ It's summer! Outdoor activities will be excluded.")
	}

	ctx := context.Background()

	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	placesRepo, cleanup, err := newPlacesRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize places repository: %v", err)
	}
	defer cleanup()

	usersRepo := repoimpl.NewFirestoreUsersRepository(firestoreClient.GetClient())
	sessionsRepo := repoimpl.NewFirestoreSessionsRepository(firestoreClient.GetClient())

	oauthClient := googleauth.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL())
	pexelsClient := images.NewPexelsClient(cfg.PexelsAPIKey)

	ledger := service.NewQuotaLedger()
	selector := service.NewSuggestionSelector(cfg.Seasonal)
	resolver := service.NewImageResolver(pexelsClient, placesRepo)

	suggestionUseCase := usecase.NewSuggestionUseCase(usersRepo, placesRepo, ledger, selector, resolver)
	authUseCase := usecase.NewAuthUseCase(usersRepo, sessionsRepo, oauthClient)

	secureCookies := strings.HasPrefix(cfg.BaseURL, "https://")
	authHandler := handler.NewAuthHandler(authUseCase, sessionsRepo, secureCookies)
	suggestionsHandler := handler.NewSuggestionsHandler(suggestionUseCase)

	r := gin.Default()
	handler.SetupRoutes(r, sessionsRepo, authHandler, suggestionsHandler)

	fmt.Printf("Wayn-App server starting on :%s...\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newPlacesRepository picks the catalog access path: direct PostgreSQL
// when the database password is configured, postgrest otherwise.
func newPlacesRepository(cfg *config.Config) (repository.PlacesRepository, func(), error) {
	if cfg.SupabaseDBPassword != "" {
		fmt.Println("Initializing PostgreSQL client...")
		postgresClient, err := database.NewPostgreSQLClient(cfg.SupabaseURL, cfg.SupabaseDBPassword)
		if err != nil {
			return nil, nil, err
		}
		if err := postgresClient.HealthCheck(); err != nil {
			postgresClient.Close()
			return nil, nil, err
		}
		fmt.Println("✅ PostgreSQL connection successful!")
		return repoimpl.NewPostgresPlacesRepository(postgresClient), func() { postgresClient.Close() }, nil
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		return nil, nil, err
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		return nil, nil, err
	}
	fmt.Println("✅ Supabase connection successful!")
	return repoimpl.NewSupabasePlacesRepository(supabaseClient), func() {}, nil
}
