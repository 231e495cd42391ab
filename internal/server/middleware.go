package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"schemaforge/internal/logger"
)

// errorHandler is the fallback for errors handlers attached via c.Error
// without writing a response themselves. Binding failures map to 400,
// anything else to 500.
func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		logger.Log.WithField("path", c.Request.URL.Path).Warnf("request failed: %v", err)

		if c.Writer.Written() {
			return
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				logger.Log.Debugf("validation: field %s failed on %s", fe.Field(), fe.Tag())
			}
			Fail(c, http.StatusBadRequest, err, "validation failed, check your input")
			return
		}

		Fail(c, http.StatusInternalServerError, nil, "internal server error")
	}
}
