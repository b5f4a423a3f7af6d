package response

import "github.com/gin-gonic/gin"

// APIError is the JSON body of every failed request.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, APIError{StatusCode: status, Message: message})
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, APIError{StatusCode: status, Message: message})
}
