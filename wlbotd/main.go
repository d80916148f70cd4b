package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"darlinggo.co/healthcheck"
	"darlinggo.co/version"
	"github.com/spf13/viper"
	yall "yall.in"
	"yall.in/colour"

	admins "github.com/Le4nar/WLBot"
	"github.com/Le4nar/WLBot/apiv1"
	"github.com/Le4nar/WLBot/discord"
	"github.com/Le4nar/WLBot/steam"
)

const configFile = "config.cfg"

func main() {
	// Set up our logger
	logger := yall.New(colour.New(os.Stdout, yall.Debug))

	// Settings come from the environment first, falling back to
	// config.cfg (KEY=VALUE lines) when it exists. STEAM_API_KEY,
	// DISCORD_API_KEY, and ALLOWED_CHANNEL_ID are required; missing
	// any of them is fatal here, never per-request.
	cfg := viper.New()
	cfg.SetConfigFile(configFile)
	cfg.SetConfigType("env")
	cfg.AutomaticEnv()
	cfg.SetDefault("DATA_FILE", "data.cfg")
	cfg.SetDefault("LISTEN_ADDR", "0.0.0.0:5054")
	if _, err := os.Stat(configFile); err == nil {
		err = cfg.ReadInConfig()
		if err != nil {
			logger.WithError(err).Error("Error reading config file")
			os.Exit(1)
		}
	}
	steamKey := cfg.GetString("STEAM_API_KEY")
	discordKey := cfg.GetString("DISCORD_API_KEY")
	channelID := cfg.GetString("ALLOWED_CHANNEL_ID")
	for _, setting := range []struct {
		key, value string
	}{
		{"STEAM_API_KEY", steamKey},
		{"DISCORD_API_KEY", discordKey},
		{"ALLOWED_CHANNEL_ID", channelID},
	} {
		if setting.value == "" {
			logger.WithField("setting", setting.key).Error("Missing required setting")
			os.Exit(1)
		}
	}

	// set up our base context
	ctx := context.Background()

	// build the store, the notifier that owns the Discord session,
	// and the hourly sweeper
	store := admins.NewFileStore(cfg.GetString("DATA_FILE"), logger)

	session := discord.NewSession(http.DefaultClient, "", discordKey)
	notifier := admins.NewNotifier(session, channelID, logger)
	go notifier.Run(ctx)

	sweeper := admins.Sweeper{
		Storer:   store,
		Interval: time.Hour,
		Log:      logger,
	}
	go sweeper.Run(ctx)

	// set up our APIv1 handlers
	v1 := apiv1.APIv1{
		Dependencies: admins.Dependencies{
			Storer:   store,
			Profiles: steam.NewClient(http.DefaultClient, "", steamKey),
			Notifier: notifier,
			Log:      logger,
		},
	}
	http.Handle("/", v1.Server(""))

	// set up version handler
	http.Handle("/version", version.Handler)

	// set up health check
	storeCheck := adminStoreCheck{store: store}
	checker := healthcheck.NewChecks(ctx, func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}, storeCheck)
	http.Handle("/health", checker)

	// make our version information pretty
	vers := version.Tag
	if vers == "undefined" || vers == "" {
		vers = "dev"
	}
	vers = vers + " (" + version.Hash + ")"

	addr := cfg.GetString("LISTEN_ADDR")
	logger.WithField("version", vers).WithField("addr", addr).Info("wlbotd starting")
	err := http.ListenAndServe(addr, nil)
	if err != nil {
		logger.WithField("addr", addr).WithError(err).Error("Error listening")
		os.Exit(1)
	}
}

// adminStoreCheck reports healthy as long as the admin file loads.
type adminStoreCheck struct {
	store *admins.FileStore
}

func (a adminStoreCheck) Name() string {
	return "admin store"
}

func (a adminStoreCheck) Check(ctx context.Context) error {
	_, err := a.store.AdminList(ctx)
	return err
}
