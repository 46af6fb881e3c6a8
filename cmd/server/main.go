// Command server runs the convene HTTP API.
//
// Storage is selected from the environment: postgres when
// CONVENE_DATABASE_URL is set, otherwise in-memory. Tickets move to redis
// when CONVENE_REDIS_URL is set. Audit events go to Kafka when
// CONVENE_KAFKA_BROKERS is set, otherwise they are dropped.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"convene/internal/audit"
	meetinghandler "convene/internal/meeting/handler"
	meetingmetrics "convene/internal/meeting/metrics"
	meetingservice "convene/internal/meeting/service"
	meetingstore "convene/internal/meeting/store"
	"convene/internal/platform/config"
	"convene/internal/platform/httpserver"
	"convene/internal/platform/logger"
	"convene/internal/platform/metrics"
	platformredis "convene/internal/platform/redis"
	"convene/internal/sessiontoken"
	tickethandler "convene/internal/ticket/handler"
	ticketmetrics "convene/internal/ticket/metrics"
	ticketservice "convene/internal/ticket/service"
	ticketstore "convene/internal/ticket/store"
	httptransport "convene/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]httptransport.HealthChecker{}

	var (
		organisations meetingservice.OrganisationStore
		divisions     meetingservice.DivisionStore
		meetings      meetingservice.MeetingStore
		agenda        meetingservice.AgendaStore
		tickets       ticketservice.TicketStore
	)

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		pg := meetingstore.NewPostgres(db)
		organisations = pg.Organisations()
		divisions = pg.Divisions()
		meetings = pg.Meetings()
		agenda = pg.Agenda()
		tickets = ticketstore.NewPostgres(db)
		healthChecks["postgres"] = dbHealth{db}
		log.Info("using postgres storage")
	} else {
		mem := meetingstore.NewInMemory()
		organisations = mem.Organisations()
		divisions = mem.Divisions()
		meetings = mem.Meetings()
		agenda = mem.Agenda()
		tickets = ticketstore.NewInMemory()
		log.Warn("no database configured, using in-memory storage")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		tickets = ticketstore.NewRedis(redisClient.Client, 0)
		healthChecks["redis"] = redisClient
		log.Info("using redis ticket storage")
	}

	var auditor audit.Publisher = audit.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			return err
		}
		defer kafka.Close()
		auditor = kafka
		log.Info("audit events publishing to kafka", "topic", cfg.AuditTopic)
	}

	sessions := sessiontoken.New(cfg.JWTSigningKey, cfg.SessionTTL)

	meetingSvc := meetingservice.New(organisations, divisions, meetings, agenda,
		meetingservice.WithLogger(log),
		meetingservice.WithMetrics(meetingmetrics.New()),
		meetingservice.WithAuditPublisher(auditor),
	)
	ticketSvc := ticketservice.New(tickets, meetings, sessions,
		ticketservice.WithLogger(log),
		ticketservice.WithMetrics(ticketmetrics.New()),
		ticketservice.WithAuditPublisher(auditor),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      metrics.New(),
		Meetings:     meetinghandler.New(meetingSvc, log),
		Tickets:      tickethandler.New(ticketSvc, log),
		HealthChecks: healthChecks,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type dbHealth struct {
	db *sql.DB
}

func (h dbHealth) Health(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
