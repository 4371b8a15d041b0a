package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/service/offering"
)

func registerOfferingRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("", listOfferings(deps))
	g.POST("", createOffering(deps))
	g.PUT("/:id", updateOffering(deps))
	g.POST("/:id/toggle-active", toggleOfferingActive(deps))
	g.POST("/:id/toggle-homepage", toggleOfferingHomepage(deps))
	g.DELETE("/:id", deleteOffering(deps))
}

func listOfferings(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Offerings.List())
	}
}

func createOffering(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in offering.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := deps.Offerings.Create(c.Request.Context(), in)
		respond(c, http.StatusCreated, item, err)
	}
}

func updateOffering(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in offering.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := deps.Offerings.Update(c.Request.Context(), id, in)
		respond(c, http.StatusOK, item, err)
	}
}

func toggleOfferingActive(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := deps.Offerings.ToggleActive(c.Request.Context(), id)
		respond(c, http.StatusOK, item, err)
	}
}

func toggleOfferingHomepage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := deps.Offerings.ToggleHomepage(c.Request.Context(), id)
		respond(c, http.StatusOK, item, err)
	}
}

func deleteOffering(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		err := deps.Offerings.Delete(c.Request.Context(), id, confirmed(c))
		respond(c, http.StatusOK, nil, err)
	}
}
