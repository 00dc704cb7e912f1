package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"chatline/internal/common"
	"chatline/internal/config"
	"chatline/internal/dbmongo"
	"chatline/internal/dbmysql"
	"chatline/internal/di"
	"chatline/internal/notif"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	if err := dbmysql.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Avatar storage is optional; the chat works without it.
	var avatars *dbmongo.AvatarStorage
	if cfg.Mongo.URI != "" {
		mongoClient, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Close(context.Background())
		avatars = dbmongo.NewAvatarStorage(mongoClient)
	} else {
		log.Println("MONGO_URI not set, avatar routes disabled")
	}

	nm := notif.NewNotificationManager(4)
	defer nm.Shutdown()
	nm.Subscribe(notif.NewDatabaseNotificationObserver(dbmysql.NewNotificationStore(db)))

	app := di.InitializeApplication(db, rdb, avatars, nm)

	r := mux.NewRouter()
	r.Use(common.RequestIDMiddleware)

	app.UserHandler.PublicRoutes(r)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	app.ChatHandler.Routes(authed)
	app.UserHandler.Routes(authed)
	app.DetailHandler.Routes(authed)
	app.QuizHandler.Routes(authed)
	app.PresenceHandler.Routes(authed)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
