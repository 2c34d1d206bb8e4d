package models

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// failed starts a log event for a failed repository operation.
//
// Errors the user can act on are logged at debug level, everything else
// is an error.
func failed(err error, operation string) *zerolog.Event {
	level := zerolog.ErrorLevel
	if known(err) && !errors.Is(err, ErrGeneral) {
		level = zerolog.DebugLevel
	}

	return log.WithLevel(level).Err(err).Str("operation", operation)
}

// general replaces errors not defined in this package with ErrGeneral. Errors
// from transaction handling do not pass through the callbacks.
func general(err error) error {
	if known(err) {
		return err
	}

	return ErrGeneral
}

// notFound returns the error for a resource that does not exist, in the
// same format that queries use.
func notFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", ErrNotFound, resource)
}
