package routes

import "github.com/gin-gonic/gin"

// NewRouter returns an engine that matches routes on the escaped path, so
// path values such as "Hack%2FSlash" reach their handler decoded as
// "Hack/Slash" instead of splitting into extra segments.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.UseRawPath = true
	router.UnescapePathValues = true
	return router
}
