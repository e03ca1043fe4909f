package routes

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

// Firms serves the normalized directory straight from the live sheet. Unlike
// the page-facing endpoints it never falls back to the bundled list.
//
//	?debug=1    adds column, parse error and row issue details
//	?raw=1      returns the parsed sheet without normalization
//	?nocache=1  skips the sheet cache
func Firms(source *internal.FirmSource) func(c *gin.Context) {
	return func(c *gin.Context) {
		snapshot, err := source.Fetch(c.Request.Context(), c.Query("nocache") == "1")
		if err != nil {
			fetchError(c, err)
			return
		}

		if c.Query("raw") == "1" {
			c.JSON(http.StatusOK, snapshot.Parsed)
			return
		}

		resp := models.FirmsResponse{Firms: snapshot.Directory.Firms}
		if c.Query("debug") == "1" {
			resp.Meta = &models.FirmsMeta{
				Count:        snapshot.Directory.Len(),
				SheetColumns: snapshot.Parsed.Columns,
				ParseErrors:  snapshot.Parsed.Errors,
				Issues:       snapshot.Directory.Issues,
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

func fetchError(c *gin.Context, err error) {
	var statusErr *internal.HTTPStatusError

	switch {
	case errors.Is(err, internal.ErrMissingSheetURL):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("CSV fetch failed (%d)", statusErr.StatusCode)})
	default:
		log.Printf("error while fetching firm sheet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
