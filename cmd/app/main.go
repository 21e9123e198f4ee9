package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pedidos/cmd"
	adapterhttp "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/googleworkspace"
	"pedidos/internal/adapters/out/pdftext"
	"pedidos/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	calendarapi "google.golang.org/api/calendar/v3"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	ctx := context.Background()
	mailbox, calendar := mustCreateGoogleAdapters(ctx, configs, logger)
	pdfText := pdftext.NewExtractor(logger)

	app := cmd.NewCompositionRoot(configs, gormDB, mailbox, calendar, pdfText, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		PlantEmail:            goDotEnvVariable("PLANT_EMAIL"),
		LogisticsEmail:        goDotEnvVariable("LOGISTICS_EMAIL"),
		SlotPartnerEmail:      goDotEnvVariable("SLOT_PARTNER_EMAIL"),
		MailQuery:             goDotEnvVariable("MAIL_QUERY"),
		GoogleCredentialsFile: goDotEnvVariable("GOOGLE_CREDENTIALS_FILE"),
		GoogleTokenFile:       goDotEnvVariable("GOOGLE_TOKEN_FILE"),
		CalendarID:            goDotEnvVariable("CALENDAR_ID"),
	}
	if config.MailQuery == "" {
		config.MailQuery = "is:unread subject:pedido"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func mustCreateGoogleAdapters(
	ctx context.Context,
	configs cmd.Config,
	logger *slog.Logger,
) (*googleworkspace.GmailMailbox, *googleworkspace.GoogleCalendar) {
	client, err := googleworkspace.NewHTTPClient(ctx, configs.GoogleCredentialsFile, configs.GoogleTokenFile)
	if err != nil {
		log.Fatalf("Error creating Google API client: %v", err)
	}

	gmailSvc, err := gmailapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Fatalf("Error creating Gmail service: %v", err)
	}

	calendarSvc, err := calendarapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Fatalf("Error creating Calendar service: %v", err)
	}

	return googleworkspace.NewGmailMailbox(gmailSvc, logger),
		googleworkspace.NewGoogleCalendar(calendarSvc, configs.CalendarID, logger)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
