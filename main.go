package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-table-order/controllers"
	"go-table-order/database"
	"go-table-order/helpers"
	"go-table-order/routes"
	"go-table-order/services"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		// .env is optional, the environment may already be set
		slog.Info("no .env file loaded", "error", err)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "table_order"
	}
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:9000"
	}
	cooldown := services.DefaultCallCooldown
	if v := os.Getenv("WAITER_CALL_COOLDOWN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cooldown = d
		} else {
			log.Warn("ignoring invalid WAITER_CALL_COOLDOWN", "value", v)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, mongoURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Error("database disconnect failed", "error", err)
		}
	}()
	store := database.NewStore(client.Database(dbName), log)

	hub := helpers.NewHub(log)
	carts := services.NewCartService()
	orders := services.NewOrderService(store, log)
	calls := services.NewWaiterCallService(store, log, cooldown)
	board := services.NewKitchenBoard(store, log, func(ev services.BoardEvent) {
		hub.Broadcast(ev.Collection, ev)
	})
	if err := board.Start(ctx); err != nil {
		log.Error("kitchen board start failed", "error", err)
		os.Exit(1)
	}
	defer board.Stop()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.MenuRoutes(router, controllers.NewMenuController())
	routes.CartRoutes(router, controllers.NewCartController(carts))
	routes.OrderRoutes(router, controllers.NewOrderController(orders, carts))
	routes.WaiterCallRoutes(router, controllers.NewWaiterCallController(calls))
	routes.KitchenRoutes(router, controllers.NewKitchenController(board, hub))

	srv := &http.Server{Addr: ":" + port, Handler: router}
	go func() {
		log.Info("server started", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
}
