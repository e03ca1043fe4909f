package internal

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartCron keeps the sheet cache warm so page loads rarely wait on the
// upstream fetch.
func StartCron(schedule string, source *FirmSource) (*cron.Cron, error) {

	c := cron.New()

	log.Printf("Starting CRON job to refresh the firm sheet (%s)", schedule)

	if _, err := c.AddFunc(schedule, func() {
		snapshot, err := source.Refresh(context.Background())
		if err != nil {
			log.Printf("Error refreshing firm sheet: %v\n", err)
			return
		}
		log.Printf("Firm sheet holds %d firms (%d with issues)", snapshot.Directory.Len(), len(snapshot.Directory.Issues))
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
