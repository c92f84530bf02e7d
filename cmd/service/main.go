package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"demo/printshop/internal/api"
	"demo/printshop/internal/config"
	"demo/printshop/internal/events"
	"demo/printshop/internal/files"
	"demo/printshop/internal/service"
	"demo/printshop/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("dotenv: %v", err)
	}
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// DB pool
	pcfg, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("db config: %v", err)
	}
	if cfg.DB.MaxConns > 0 {
		pcfg.MaxConns = int32(cfg.DB.MaxConns)
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := store.Migrate(cfg.DB.DSN); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		log.Printf("migrations applied")
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.Kafka.Enabled() {
		k := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := k.Close(); err != nil {
				log.Printf("close kafka writer: %v", err)
			}
		}()
		publisher = k
		log.Printf("events: brokers=%v topic=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		log.Printf("events: disabled (KAFKA_BROKERS empty)")
	}

	docs, err := files.NewDisk(cfg.Files.Dir, cfg.Files.PublicBase)
	if err != nil {
		log.Fatalf("invoice dir: %v", err)
	}

	opts := []service.Option{service.WithEvents(publisher), service.WithDocuments(docs)}
	if cfg.App.CacheEnabled {
		opts = append(opts, service.WithInvoiceItemCache())
	}
	svc := service.New(store.New(pool), opts...)

	h := api.NewHandler(svc, api.Options{
		CORSOrigins:        cfg.HTTP.CORSOrigins,
		ExposeErrorDetails: cfg.App.ExposeErrorDetails,
	})
	srv := &http.Server{Addr: cfg.HTTP.Addr(), Handler: h.Routes()}

	go func() {
		log.Printf("http: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	shCtx, cancel2 := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel2()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	log.Println("bye")
}
