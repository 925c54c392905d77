package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger switches to JSON logs in production and colored text elsewhere.
func InitLogger(env string) {
	log.SetOutput(os.Stdout)
	if env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.DebugLevel)
}
