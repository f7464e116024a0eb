package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"portafolio/config"
	"portafolio/middleware"
	"portafolio/services/portafolio/delivery"
	"portafolio/services/portafolio/repository"
	"portafolio/services/portafolio/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on the environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetAllowedOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}
	defer db.Close()

	recaptchaSecret, err := config.GetRecaptchaSecret()
	if err != nil {
		log.Fatalf("Failed to load recaptcha config: %v", err)
		return
	}

	cloudName, apiKey, apiSecret, err := config.GetCloudinaryCredentials()
	if err != nil {
		log.Fatalf("Failed to load cloudinary config: %v", err)
		return
	}

	timeOut := 30 * time.Second

	contactoRepo := repository.NewContactoRepository(db)
	visitanteRepo := repository.NewVisitanteRepository(db)
	imagenRepo := repository.NewImagenRepository(db)
	verifier := repository.NewRecaptchaRepository(repository.SiteVerifyURL, recaptchaSecret)
	media := repository.NewCloudinaryRepository(repository.CloudinaryBaseURL, cloudName, apiKey, apiSecret)

	contactoUC := usecase.NewContactoUseCase(contactoRepo, verifier, timeOut)
	visitanteUC := usecase.NewVisitanteUseCase(visitanteRepo, timeOut)
	imagenUC := usecase.NewImagenUseCase(imagenRepo, media, timeOut)

	delivery.NewContactoDelivery(app, contactoUC)
	delivery.NewVisitanteDelivery(app, visitanteUC)
	delivery.NewImagenDelivery(app, imagenUC)

	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API Funcionando")
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
