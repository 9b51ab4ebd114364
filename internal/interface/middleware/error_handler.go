package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wtwr-app/wtwr-backend/internal/errs"
)

// ErrorHandler is the terminal responder. It runs the rest of the chain,
// classifies the last attached error, logs the full detail, and writes the
// uniform `{message}` body. Unclassified failures become a 500 with the
// generic message; internals never reach the caller.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var he *errs.HTTPError
		if !errors.As(err, &he) {
			he = errs.NewInternalServer()
		}

		fields := logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     he.Status,
			"code":       he.Code,
		}
		if he.Fields != nil {
			fields["violations"] = he.Fields
		}
		logger.WithError(err).WithFields(fields).Error("request failed")

		message := he.Message
		if he.Status >= 500 {
			message = errs.GenericServerMessage
		}
		if !c.Writer.Written() {
			c.JSON(he.Status, gin.H{"message": message})
		}
	}
}
