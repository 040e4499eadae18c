// Package response renders the API's JSON envelopes: every endpoint
// returns either {"success":true,"data":...} or
// {"success":false,"error":{"code","message"[,"details"]}}.
package response

import "github.com/gin-gonic/gin"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails carries a structured payload alongside the error,
// e.g. plan-limit information for upgrade prompts.
func ErrorWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errorBody{Code: code, Message: message, Details: details},
	})
}
