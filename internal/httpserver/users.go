package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/service/users"
)

func registerUserRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("", listUsers(deps))
	g.POST("", createUser(deps))
	g.PUT("/:id", updateUser(deps))
	g.POST("/:id/toggle-role", toggleUserRole(deps))
	g.DELETE("/:id", deleteUser(deps))
}

func listUsers(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Users.List())
	}
}

func createUser(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in users.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, err := deps.Users.Create(c.Request.Context(), in)
		respond(c, http.StatusCreated, u, err)
	}
}

func updateUser(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in users.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, err := deps.Users.Update(c.Request.Context(), id, in)
		respond(c, http.StatusOK, u, err)
	}
}

func toggleUserRole(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		u, err := deps.Users.ToggleRole(c.Request.Context(), id, confirmed(c))
		respond(c, http.StatusOK, u, err)
	}
}

func deleteUser(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		err := deps.Users.Delete(c.Request.Context(), id, confirmed(c))
		respond(c, http.StatusOK, nil, err)
	}
}
