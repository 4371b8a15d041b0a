package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/service/quiz"
)

func registerQuizRoutes(g *gin.RouterGroup, deps Deps) {
	questions := g.Group("/quiz/questions")
	questions.GET("", listQuizQuestions(deps))
	questions.POST("", createQuizQuestion(deps))
	questions.PUT("/:id", updateQuizQuestion(deps))
	questions.DELETE("/:id", deleteQuizQuestion(deps))

	g.GET("/quiz/results", listQuizResults(deps))
}

func listQuizQuestions(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Quiz.Questions())
	}
}

func createQuizQuestion(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in quiz.QuestionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		q, err := deps.Quiz.CreateQuestion(c.Request.Context(), in)
		respond(c, http.StatusCreated, q, err)
	}
}

func updateQuizQuestion(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in quiz.QuestionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		q, err := deps.Quiz.UpdateQuestion(c.Request.Context(), id, in)
		respond(c, http.StatusOK, q, err)
	}
}

func deleteQuizQuestion(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		err := deps.Quiz.DeleteQuestion(c.Request.Context(), id, confirmed(c))
		respond(c, http.StatusOK, nil, err)
	}
}

func listQuizResults(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Quiz.Results())
	}
}

// appendQuizResult is the public endpoint the website quiz posts to.
func appendQuizResult(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in quiz.ResultInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		r, err := deps.Quiz.AppendResult(c.Request.Context(), in)
		respond(c, http.StatusCreated, r, err)
	}
}
