package game

import "github.com/sirupsen/logrus"

var log = logrus.New()

// SetLogger replaces the logger used by sessions
func SetLogger(logger *logrus.Logger) {
	log = logger
}
