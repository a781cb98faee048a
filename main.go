package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"CareDesk/cache"
	"CareDesk/config"
	"CareDesk/controllers"
	"CareDesk/jobs"
	"CareDesk/notifier"
	"CareDesk/routes"
	"CareDesk/services"
	"CareDesk/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	recordStore, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}
	recordCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)

	patients := services.NewPatientService(recordStore, recordCache)

	var sms notifier.Notifier
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		sms = notifier.NewTwilioSMS(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, patients, cfg.RequestTimeout)
	} else {
		log.Println("Twilio credentials missing, SMS delivery is log-only")
		sms = notifier.NewLogSMS()
	}
	appointments := services.NewAppointmentService(recordStore, recordCache, sms)

	jobs.NewReminder(recordStore, sms, cfg.RequestTimeout).StartDailyScheduler()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r, controllers.NewAppointmentController(appointments), controllers.NewPatientController(patients))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
