package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/models"
	"github.com/rm-hull/prop-firms-api/internal/stats"
)

func Stats(source *internal.FirmSource) func(c *gin.Context) {
	return func(c *gin.Context) {
		snapshot := source.Load(c.Request.Context())

		c.JSON(http.StatusOK, models.StatsResponse{
			Statistics: stats.Derive(snapshot.Directory.Firms),
			Live:       snapshot.Live,
		})
	}
}
