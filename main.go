package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"safarsorted/api/database"
	"safarsorted/api/handlers"
	"safarsorted/api/middleware"
	"safarsorted/api/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize the local SQLite slot store ---
	dbClient, err := database.NewSQLiteDB(os.Getenv("SQLITE_PATH"))
	if err != nil {
		log.Fatalf("Failed to initialize SQLite database: %v", err)
	}
	defer dbClient.Close()

	// --- Initialize Stores ---
	// Everything is constructed once here and handed to its consumers.
	storage := store.NewStorage(dbClient)
	analyticsStore := store.NewAnalyticsStore(storage)
	inquiryStore := store.NewInquiryStore(storage, analyticsStore)
	travelerView := store.NewTravelerView(inquiryStore)
	settingsStore := store.NewSettingsStore(storage)
	prefsStore := store.NewPrefsStore(storage)
	dataManager := store.NewDataManager(storage, inquiryStore, settingsStore, analyticsStore)

	// --- Initialize Handlers ---
	inquiryHandlers := handlers.NewInquiryHandlers(inquiryStore, travelerView)
	trackHandlers := handlers.NewTrackHandlers(analyticsStore)
	settingsHandlers := handlers.NewSettingsHandlers(settingsStore, prefsStore, dataManager)

	// --- Admin credentials (static demo pair) ---
	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASS")
	if adminPass == "" {
		adminPass = "safarsorted123"
		log.Println("ADMIN_PASS not set, using the default demo password")
	}
	hashedAdminPass, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		// Public endpoints used by the marketing site
		api.POST("/inquiry", inquiryHandlers.SubmitInquiry)
		api.POST("/track", trackHandlers.TrackEvent)
		api.POST("/track/pageview", trackHandlers.TrackPageView)

		prefs := api.Group("/prefs")
		{
			prefs.GET("", settingsHandlers.GetPrefs)
			prefs.PUT("", settingsHandlers.UpdatePrefs)
			prefs.PUT("/traveler-type", settingsHandlers.SetTravelerType)
			prefs.POST("/recent-views", settingsHandlers.AddRecentView)
			prefs.POST("/wishlist/toggle", settingsHandlers.ToggleWishlist)
		}

		// Admin endpoints, guarded by the static basic-auth credential pair
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthRequired(adminUser, hashedAdminPass))
		{
			admin.GET("/inquiries", inquiryHandlers.ListInquiries)
			admin.GET("/inquiries/:id", inquiryHandlers.GetInquiry)
			admin.PUT("/inquiries/:id", inquiryHandlers.UpdateInquiry)
			admin.DELETE("/inquiries/:id", inquiryHandlers.DeleteInquiry)
			admin.GET("/stats", inquiryHandlers.GetStats)

			admin.GET("/travelers", inquiryHandlers.ListTravelers)
			admin.GET("/travelers/:phone", inquiryHandlers.GetTraveler)

			admin.GET("/analytics/destinations", trackHandlers.GetPopularDestinations)
			admin.GET("/analytics/weekly", trackHandlers.GetWeeklyStats)

			admin.GET("/settings", settingsHandlers.GetSettings)
			admin.PUT("/settings", settingsHandlers.UpdateSettings)
			admin.POST("/settings/reset", settingsHandlers.ResetSettings)

			admin.GET("/export", settingsHandlers.ExportData)
			admin.POST("/import", settingsHandlers.ImportData)
			admin.POST("/clear", settingsHandlers.ClearData)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("SafarSorted API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("SafarSorted API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
