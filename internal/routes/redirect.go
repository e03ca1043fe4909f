package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/affiliates"
	"github.com/rm-hull/prop-firms-api/internal/metrics"
	"github.com/rm-hull/prop-firms-api/internal/redirects"
)

// Redirect sends visitors on to a firm's affiliate link. The hop is kept out
// of search indexes.
func Redirect(source *internal.FirmSource, builder *affiliates.Builder, static map[string]string) func(c *gin.Context) {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		entry, ok := redirects.Load(c.Request.Context(), source, builder, static).Lookup(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown redirect: " + slug})
			return
		}

		metrics.Redirects.WithLabelValues(entry.Slug).Inc()
		c.Header("X-Robots-Tag", "noindex")
		c.Redirect(http.StatusFound, affiliates.WithCampaign(entry.Destination, c.Query("campaign")))
	}
}
