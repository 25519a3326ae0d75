package main

import (
	"io"
	"os"
	"path/filepath"

	v1 "github.com/finflow/backend/internal/controllers/v1"
	"github.com/finflow/backend/internal/keyvalue"
	"github.com/finflow/backend/internal/ledger"
	"github.com/finflow/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	store, err := connectStorage()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer store.Close()

	l := ledger.New(store)

	r, teardown, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.NewController(l), store, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// connectStorage opens the storage backend selected by the STORAGE
// environment variable. sqlite is the default; file keeps everything in
// one JSON file; memory keeps nothing across restarts.
func connectStorage() (keyvalue.Store, error) {
	backend, ok := os.LookupEnv("STORAGE")
	if !ok {
		backend = "sqlite"
	}

	if backend == "memory" {
		log.Warn().Msg("STORAGE is set to memory, data is lost when the process exits")
		return keyvalue.NewMemory(), nil
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return nil, err
	}

	path, ok := os.LookupEnv("STORAGE_PATH")
	if backend == "file" {
		if !ok {
			path = filepath.Join(dataDir, "finflow.json")
		}
		return keyvalue.OpenFile(path)
	}

	if !ok {
		path = filepath.Join(dataDir, "finflow.db")
	}
	return keyvalue.ConnectSQLite(path + "?_pragma=foreign_keys(1)")
}
