package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/domain"
)

func registerCalculatorRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("", getCalculatorSettings(deps))
	g.PUT("", updateCalculatorSettings(deps))
}

func getCalculatorSettings(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Calculator.Get())
	}
}

func updateCalculatorSettings(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.CalculatorSettings
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		settings, err := deps.Calculator.Update(c.Request.Context(), in)
		respond(c, http.StatusOK, settings, err)
	}
}
