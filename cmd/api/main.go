package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rkleiv/pos-backend/internal/catalog"
	"github.com/rkleiv/pos-backend/internal/config"
	"github.com/rkleiv/pos-backend/internal/events"
	"github.com/rkleiv/pos-backend/internal/httpx"
	"github.com/rkleiv/pos-backend/internal/sales"
	"github.com/rkleiv/pos-backend/internal/stock"
	"github.com/rkleiv/pos-backend/internal/tabular"
)

func main() {
	_ = godotenv.Load()

	env := config.Load()
	ctx := context.Background()
	opts := config.FileProvider{Path: env.OptionsPath}

	// store backend
	var store tabular.Store
	switch env.StoreBackend {
	case "postgres":
		db, err := tabular.ConnectPostgres(ctx, env.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		store = tabular.PostgresStore{DB: db}
	default:
		store = tabular.SheetsStore{Opts: opts}
	}
	if env.RedisAddr != "" {
		rdb := tabular.NewRedis(env.RedisAddr)
		defer rdb.Close()
		store = tabular.Cache{Store: store, Redis: rdb}
	}

	// event sinks
	pubs := events.Fanout{events.NewHAPublisher(env.HAURL)}
	var sink *events.KafkaSink
	if len(env.KafkaBrokers) > 0 {
		sink = events.NewKafkaSink(env.KafkaBrokers, events.TopicSaleCompleted, env.ServiceName, 1024)
		sink.Start()
		pubs = append(pubs, sink)
	}

	orch := sales.NewOrchestrator(store, opts, pubs)
	router := httpx.NewRouter()
	ph := &httpx.POSHandler{
		Sales:   orch,
		Catalog: catalog.Resolver{Store: store},
		Stock:   stock.Service{Store: store},
		Port:    strings.TrimPrefix(env.HTTPAddr, ":"),
	}
	ph.Register(router)

	srv := &http.Server{Addr: env.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", env.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx2)
	if sink != nil {
		sink.Close()      // close inbox -> flush & close writer
		sink.WaitClosed() // drain
	}
}
