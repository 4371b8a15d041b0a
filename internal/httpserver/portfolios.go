package httpserver

import (
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/service/portfolio"
)

func registerPortfolioRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("", listPortfolios(deps))
	g.POST("", createPortfolio(deps))
	g.PUT("/:id", updatePortfolio(deps))
	g.POST("/:id/toggle-active", togglePortfolioActive(deps))
	g.POST("/:id/toggle-homepage", togglePortfolioHomepage(deps))
	g.POST("/:id/image", uploadPortfolioImage(deps))
	g.DELETE("/:id", deletePortfolio(deps))
}

func listPortfolios(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Portfolios.List())
	}
}

func createPortfolio(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in portfolio.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := deps.Portfolios.Create(c.Request.Context(), in)
		respond(c, http.StatusCreated, item, err)
	}
}

func updatePortfolio(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in portfolio.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := deps.Portfolios.Update(c.Request.Context(), id, in)
		respond(c, http.StatusOK, item, err)
	}
}

func togglePortfolioActive(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := deps.Portfolios.ToggleActive(c.Request.Context(), id)
		respond(c, http.StatusOK, item, err)
	}
}

func togglePortfolioHomepage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := deps.Portfolios.ToggleHomepage(c.Request.Context(), id)
		respond(c, http.StatusOK, item, err)
	}
}

// uploadPortfolioImage streams the multipart file into blob storage and
// points the item at the stored copy. The blob key embeds the item id so a
// re-upload replaces the previous image.
func uploadPortfolioImage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if _, err := deps.Portfolios.Get(id); err != nil {
			c.Status(http.StatusNoContent)
			return
		}
		header, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
			return
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
			return
		}
		defer file.Close()

		key := fmt.Sprintf("portfolio/%d%s", id, path.Ext(header.Filename))
		info, err := deps.Blobs.Put(c.Request.Context(), key, header.Header.Get("Content-Type"), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storing image failed"})
			return
		}
		item, err := deps.Portfolios.SetImage(c.Request.Context(), id, deps.Blobs.URL(info.Key))
		respond(c, http.StatusOK, item, err)
	}
}

func deletePortfolio(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		err := deps.Portfolios.Delete(c.Request.Context(), id, confirmed(c))
		respond(c, http.StatusOK, nil, err)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
