package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"go-waitlist-api/config"
)

// Log is the shared application logger. Call Init before using it.
var Log *logrus.Logger

// Init configures the global logger from the loaded application config.
// It is safe to call before config.LoadConfig; sensible defaults apply.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(config.AppConfig.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if config.AppConfig.Log.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
