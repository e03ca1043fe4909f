package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/affiliates"
	"github.com/rm-hull/prop-firms-api/internal/models"
	"github.com/rm-hull/prop-firms-api/internal/recommend"
	"github.com/rm-hull/prop-firms-api/internal/stats"
)

func Firm(source *internal.FirmSource, builder *affiliates.Builder) func(c *gin.Context) {
	return func(c *gin.Context) {
		key := c.Param("key")
		snapshot := source.Load(c.Request.Context())

		firm, ok := snapshot.Directory.Find(key)
		if !ok {
			firm, ok = source.Fallback().Find(key)
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "firm not found: " + key})
			return
		}

		c.JSON(http.StatusOK, models.FirmDetailResponse{
			Firm:       firm,
			Costs:      stats.Costs(firm),
			SignupLink: builder.SignupLink(firm),
			Related:    recommend.Related(firm, snapshot.Directory.Firms, recommend.DefaultLimit),
			Live:       snapshot.Live,
		})
	}
}
