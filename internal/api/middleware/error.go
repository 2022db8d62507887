package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gridsim/internal/api/models"
)

// ErrorHandler recovers from handler panics and answers with the same error
// envelope the handlers use, so clients never see a half-written body or a
// bare 500.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "unexpected internal error"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		case fmt.Stringer:
			msg = v.String()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
