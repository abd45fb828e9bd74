package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/catalog"
	"salonbook/config"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/models"
	"salonbook/routes"
	"salonbook/services/gcal"
	"salonbook/services/notify"
	"salonbook/services/schedule"
	"salonbook/services/staffstatus"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(config.AppConfig.SalonTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid salon timezone %q: %v", config.AppConfig.SalonTimezone, err)
	}

	// External collaborators.
	var resolver *gcal.Resolver
	if config.AppConfig.CalendarIDsAPIURL != "" {
		resolver = gcal.NewResolver(config.AppConfig.CalendarIDsAPIURL, gcal.DefaultResolverTTL)
	}

	staffCalendars := make(map[models.StaffID]string)
	for _, id := range catalog.StaffIDs() {
		if calID := config.StaffCalendarID(string(id)); calID != "" {
			staffCalendars[id] = calID
		}
	}

	calendarSvc, err := gcal.New(context.Background(), gcal.Config{
		ServiceAccountEmail: config.AppConfig.GoogleServiceAccountEmail,
		PrivateKey:          config.AppConfig.GooglePrivateKey,
		DefaultCalendarID:   config.AppConfig.GoogleCalendarID,
		StaffCalendarIDs:    staffCalendars,
		Timezone:            config.AppConfig.SalonTimezone,
	}, resolver)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}
	if !calendarSvc.Configured() {
		logger.Warn("calendar integration not configured: availability reads will show no conflicts, bookings will be rejected")
	}

	statusFeed := staffstatus.NewClient(config.AppConfig.StaffStatusAPIURL)
	mailer := notify.NewHTTPMailer(config.AppConfig.NotifyBackendURL)

	// Scheduling engine.
	scheduleSvc := &schedule.DefaultService{
		Calendar: calendarSvc,
		Status:   statusFeed,
		Mail:     mailer,
		Loc:      loc,
	}

	// Warm the resolver cache ahead of the first request; a failed
	// warm-up just leaves the cache lazy.
	if resolver != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := resolver.WarmUp(ctx); err != nil {
				logger.Warn("calendar-id cache warm-up failed", zap.Error(err))
			}
		}()
	}

	utils.StartHealthMonitor(
		func(ctx context.Context) error {
			if !calendarSvc.Configured() {
				return nil
			}
			return calendarSvc.Ping(ctx)
		},
		func(ctx context.Context) error {
			_, err := statusFeed.Fetch(ctx)
			return err
		},
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	scheduleHandler := handlers.NewScheduleHandler(scheduleSvc, logger)
	calendarHandler := handlers.NewCalendarOpsHandler(calendarSvc, resolver)

	handlerBundle := &handlers.HandlerBundle{
		Availability:      scheduleHandler.Availability,
		CreateAppointment: scheduleHandler.CreateAppointment,
		ListServices:      handlers.ListServicesHandler,
		ListStaff:         handlers.ListStaffHandler,
		VerifyCalendars:   calendarHandler.Verify,
		CalendarIDs:       calendarHandler.IDs,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
