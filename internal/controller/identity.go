package controller

import (
	"github.com/gin-gonic/gin"
)

// CallerID returns the verified identity the upstream auth gateway attaches
// to the request. Token verification itself happens outside this service;
// an empty value means an unauthenticated caller.
func CallerID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
