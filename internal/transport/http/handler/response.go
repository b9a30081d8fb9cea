package handler

import "github.com/gin-gonic/gin"

// Every response uses the same envelope: {"status":"ok","data":...} or
// {"status":"error","error":{"code":...,"message":...}}.

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Status string     `json:"status"`
	Data   any        `json:"data,omitempty"`
	Error  *errorBody `json:"error,omitempty"`
}

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Status: "ok", Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, envelope{Status: "error", Error: &errorBody{Code: code, Message: message}})
}
