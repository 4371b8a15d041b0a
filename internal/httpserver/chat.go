package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerChatRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("/threads", listChatThreads(deps))
	g.POST("/threads/:id/select", selectChatThread(deps))
	g.GET("/threads/:id/messages", listChatMessages(deps))
	g.POST("/messages", postChatMessage(deps))
}

func listChatThreads(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Chat.Threads())
	}
}

// selectChatThread marks the conversation open, which also clears its
// unread counter.
func selectChatThread(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		respond(c, http.StatusOK, deps.Chat.SelectThread(id), nil)
	}
}

func listChatMessages(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, deps.Chat.Messages(id))
	}
}

func postChatMessage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		respond(c, http.StatusCreated, deps.Chat.PostMessage(in.Message), nil)
	}
}
