package app

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"petcare-go/internal/config"
	"petcare-go/internal/db"
	bookingdomain "petcare-go/internal/domain/booking"
	catalogdomain "petcare-go/internal/domain/catalog"
	notificationdomain "petcare-go/internal/domain/notification"
	petdomain "petcare-go/internal/domain/pet"
	scheduledomain "petcare-go/internal/domain/schedule"
	ticketdomain "petcare-go/internal/domain/ticket"
	userdomain "petcare-go/internal/domain/user"
	bookingrepo "petcare-go/internal/repository/postgres/booking"
	catalogrepo "petcare-go/internal/repository/postgres/catalog"
	notificationrepo "petcare-go/internal/repository/postgres/notification"
	petrepo "petcare-go/internal/repository/postgres/pet"
	schedulerepo "petcare-go/internal/repository/postgres/schedule"
	ticketrepo "petcare-go/internal/repository/postgres/ticket"
	userrepo "petcare-go/internal/repository/postgres/user"
	"petcare-go/internal/transport/httpserver"
	"petcare-go/internal/transport/httpserver/handler"
	"petcare-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	log        logger.Logger
}

func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, NewHandlers(dbConn, log), log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		log:        log,
	}, nil
}

// NewHandlers builds every repository and service on one gorm handle.
func NewHandlers(dbConn *gorm.DB, log logger.Logger) *handler.Handlers {
	services := handler.Services{
		Users:         userdomain.NewService(userrepo.NewPostgres(dbConn)),
		Tickets:       ticketdomain.NewService(ticketrepo.NewPostgres(dbConn)),
		Pets:          petdomain.NewService(petrepo.NewPostgres(dbConn)),
		Catalog:       catalogdomain.NewService(catalogrepo.NewPostgres(dbConn)),
		Bookings:      bookingdomain.NewService(bookingrepo.NewPostgres(dbConn)),
		Notifications: notificationdomain.NewService(notificationrepo.NewPostgres(dbConn)),
		Schedules:     scheduledomain.NewService(schedulerepo.NewPostgres(dbConn)),
	}

	ping := func(ctx context.Context) error {
		return db.Check(ctx, dbConn)
	}
	return handler.New(services, ping, log)
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// Migrate applies pending schema migrations on the app's pool.
func (a *App) Migrate() ([]string, error) {
	return db.Migrate(a.db, a.cfg.DB.MigrationsDir, a.log)
}

func (a *App) Close() error {
	return db.Close(a.db)
}
