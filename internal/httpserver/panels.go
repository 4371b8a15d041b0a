package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/service/stats"
	"cema-admin/internal/state"
)

func registerPanelRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("/stats", getStats(deps))
	g.GET("/panels/:tab", renderPanel(deps))
	g.POST("/tabs/:tab", selectTab(deps))
}

func getStats(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.Compute(deps.Tree.Snapshot()))
	}
}

// renderPanel returns the full markup of one tab. Every call re-renders
// from a fresh snapshot; nothing is cached between requests.
func renderPanel(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		tab := c.Param("tab")
		if !validTab(tab) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tab"})
			return
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := deps.Renderer.Tab(c.Writer, tab, deps.Tree.Snapshot()); err != nil {
			_ = c.Error(err)
		}
	}
}

// selectTab switches the active tab and responds with the new tab's
// markup, mirroring the dashboard's full re-render on navigation.
func selectTab(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		tab := c.Param("tab")
		if !validTab(tab) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown tab"})
			return
		}
		deps.Tree.Lock()
		deps.Tree.ActiveTab = tab
		deps.Tree.Unlock()

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := deps.Renderer.Tab(c.Writer, tab, deps.Tree.Snapshot()); err != nil {
			_ = c.Error(err)
		}
	}
}

func validTab(tab string) bool {
	for _, t := range state.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}
