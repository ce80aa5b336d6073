package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the global fallback for anything a route did not handle.
// The underlying error is logged server-side only; the response carries the
// message when one exists.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		message := "Internal Server Error"
		switch v := recovered.(type) {
		case error:
			message = v.Error()
		case string:
			message = v
		default:
			if v != nil {
				message = fmt.Sprintf("%v", v)
			}
		}
		log.Printf("Unhandled error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, recovered)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   message,
		})
	})
}
