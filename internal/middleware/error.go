package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockscore/internal/domain/dto"
	"github.com/guttosm/stockscore/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a 500 JSON response
// when the handler did not write a response itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	last := c.Errors.Last()
	logger.L().Error().Err(last.Err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError records err on the context (so RequestLogger can report it),
// writes a dto.ErrorResponse with status and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
