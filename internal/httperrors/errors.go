package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stockroom-app/inventory/internal/models"
)

// New responds with a plain text message and aborts the request.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.String(status, msg)
	c.Abort()
}

// Handler responds to an error returned by a repository.
//
// A missing resource is answered with 404 and the notFound message. All other
// errors are logged with the request ID and answered with 500 and the
// message. Internal details never reach the client.
func Handler(c *gin.Context, err error, notFound, message string) {
	if errors.Is(err, models.ErrNotFound) {
		New(c, http.StatusNotFound, notFound)
		return
	}

	Internal(c, err, message)
}

// Internal logs the error with the request ID and responds with 500 and
// the message.
func Internal(c *gin.Context, err error, message string) {
	log.Error().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Msgf("%T: %v", err, err)
	New(c, http.StatusInternalServerError, message)
}
