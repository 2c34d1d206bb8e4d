package httputil

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Flash stores a message in the session to be shown on the next rendered page.
//
// It must be called before the response is written.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)

	err := session.Save()
	if err != nil {
		// The mutation already happened, only the notice is lost
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("Flash message could not be stored")
	}
}

// Flashes returns all pending flash messages and removes them from the session.
func Flashes(c *gin.Context) []string {
	session := sessions.Default(c)

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return []string{}
	}

	err := session.Save()
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("Flash messages could not be cleared")
	}

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		messages = append(messages, fmt.Sprint(f))
	}

	return messages
}
