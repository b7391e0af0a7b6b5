package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
)

// abort stops the chain with the error envelope for code.
func abort(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code),
		dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c)))
}

func noRoute(c *gin.Context) {
	abort(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}

func noMethod(c *gin.Context) {
	abort(c, dto.ErrorCodeMethodNotAllowed, c.Request.Method+" is not supported on "+c.Request.URL.Path)
}
