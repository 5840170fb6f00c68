package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every endpoint. Validation failures
// and lookup misses still answer 200 with success=false; only unknown verbs
// (405) and unexpected faults (500) leave the 2xx range.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func respondFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: false, Message: message})
}

func respondValidation(c *gin.Context, errs []string) {
	c.JSON(http.StatusOK, Response{Success: false, Message: "Validation failed", Errors: errs})
}

func respondServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "Server error"})
}
