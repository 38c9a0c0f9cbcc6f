// Command langguess identifies the natural language of text.
//
// Usage:
//
//	langguess guess "Der schnelle braune Fuchs springt über den faulen Hund"
//	echo "..." | langguess info
//	langguess languages --name port
//	langguess trigrams "some text to inspect"
//	langguess eval corpus.yaml --lingua
//
// Trigram models are read from the directory given by --models (or the
// "models" key of langguess.yaml, or LANGGUESS_MODELS). Without models, only
// languages identified by their script alone are recognized.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.WithError(err).Error("langguess failed")
		os.Exit(1)
	}
}
