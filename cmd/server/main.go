package main

import (
	"flag"
	"net/http"
	"os"
	"ridethebus-server/internal/config"
	"ridethebus-server/internal/mux"
	"ridethebus-server/pkg/ridethebus"
	"ridethebus-server/pkg/wallet"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to the configured listenAddr)")

func main() {
	_ = godotenv.Load()
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	listenAddr := cfg.ListenAddr
	if *addr != "" {
		listenAddr = *addr
	}

	game := newGame(cfg)
	store := wallet.NewStore(cfg.BalanceFile)
	seedWallet(game, store, cfg)

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, game, store))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func newGame(cfg config.Config) *ridethebus.Game {
	options := ridethebus.DefaultOptions()
	options.StartingBalance = cfg.Game.StartingBalance
	options.DefaultBet = cfg.Game.DefaultBet

	game, err := ridethebus.NewGame(logrus.StandardLogger(), options)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	return game
}

// seedWallet adopts a previously saved balance, if there is one
func seedWallet(game *ridethebus.Game, store *wallet.Store, cfg config.Config) {
	balance, highScore, err := store.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("file", store.Path()).Warn("could not load wallet, starting fresh")
		}

		return
	}

	if err := game.SeedWallet(balance, highScore); err != nil {
		logrus.WithError(err).Fatal("could not seed wallet")
	}

	logrus.WithFields(logrus.Fields{
		"balance":   balance,
		"highScore": highScore,
	}).Info("wallet loaded")
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
