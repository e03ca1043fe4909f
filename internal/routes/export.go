package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/affiliates"
	"github.com/rm-hull/prop-firms-api/internal/export"
)

func Export(source *internal.FirmSource, builder *affiliates.Builder) func(c *gin.Context) {
	return func(c *gin.Context) {
		snapshot := source.Load(c.Request.Context())

		wb, err := export.Workbook(snapshot.Directory.Firms, builder)
		if err != nil {
			log.Printf("error while building workbook: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
			return
		}
		defer func() { _ = wb.Close() }()

		c.Header("Content-Disposition", `attachment; filename="firms.xlsx"`)
		c.Header("Content-Type", export.ContentType)
		c.Status(http.StatusOK)
		if _, err := wb.WriteTo(c.Writer); err != nil {
			log.Printf("error while writing workbook: %v", err)
		}
	}
}
