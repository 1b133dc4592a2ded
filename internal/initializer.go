// Package internal boots the service: environment, database pool, managers,
// router, and the HTTP listener.
package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"starwars-blog/internal/managers"
	"starwars-blog/internal/routing"
)

const (
	defaultPort = "3000"
	envFile     = ".env"
)

func Init() {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	setLogLevel(os.Getenv("LOG_LEVEL"))

	pool := initializeDatabase()
	defer pool.Close()

	databaseMgr := managers.NewDatabaseManager(pool)

	jwtMgr, err := managers.NewJWTManagerFromFile()
	if err != nil {
		log.Fatal("error initializing JWT manager: ", err)
	}

	r := routing.InitRouter(databaseMgr, jwtMgr)
	log.Info("Initialized router")

	// Handle interrupt signal gracefully
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)

		<-c
		log.Info("Server shutting down...")
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	log.Infof("Starting server on port %s...", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal("Error starting server: ", err)
	}
}

func initializeDatabase() *pgxpool.Pool {
	log.Info("Initializing database")

	url := os.Getenv("DB_CONNECTION_STRING")
	if url == "" {
		// Fall back to discrete connection variables.
		var (
			dbHost     = os.Getenv("DB_HOST")
			dbPort     = os.Getenv("DB_PORT")
			dbUser     = os.Getenv("DB_USER")
			dbPassword = os.Getenv("DB_PASS")
			dbName     = os.Getenv("DB_NAME")
		)

		if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			log.Fatal("database environment variables not set")
		}

		url = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort, dbUser, dbPassword, dbName)
	}

	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Fatal("error configuring database: ", err)
	}

	config.MinConns = 5
	config.MaxConns = 30
	config.MaxConnIdleTime = time.Minute * 2
	config.HealthCheckPeriod = time.Minute * 1

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal("error connecting to database: ", err)
	}

	log.Info("Connected to database")
	return pool
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetOutput(os.Stdout)
}
