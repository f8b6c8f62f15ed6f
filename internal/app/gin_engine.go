package app

import (
	"github.com/gin-gonic/gin"

	"PosBridge/pkg/logger"
	"PosBridge/pkg/metrics"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), l.GinRequestLogger(), gin.Recovery())
	return engine
}
