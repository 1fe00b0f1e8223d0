// File: /jobs/statistics_rollup_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"programlaz-api/models"
)

// StatisticsRollupJob periodically prunes old daily page view rows so the
// statistics table stays bounded
type StatisticsRollupJob struct {
	db        *gorm.DB
	retention time.Duration
	ticker    *time.Ticker
	done      chan bool
}

// NewStatisticsRollupJob creates the job; retention controls how far back
// daily rows are kept
func NewStatisticsRollupJob(db *gorm.DB, interval, retention time.Duration) *StatisticsRollupJob {
	return &StatisticsRollupJob{
		db:        db,
		retention: retention,
		ticker:    time.NewTicker(interval),
		done:      make(chan bool),
	}
}

// Start begins the rollup job
func (j *StatisticsRollupJob) Start() {
	fmt.Println("Statistics rollup job started")

	go func() {
		// Run immediately on start
		j.rollup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.rollup()
			case <-j.done:
				fmt.Println("Statistics rollup job stopped")
				return
			}
		}
	}()
}

// Stop stops the rollup job
func (j *StatisticsRollupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *StatisticsRollupJob) rollup() {
	cutoff := time.Now().Add(-j.retention).Format("2006-01-02")

	result := j.db.Where("day < ?", cutoff).Delete(&models.SiteStatistic{})
	if result.Error != nil {
		fmt.Printf("Statistics rollup failed: %v\n", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		fmt.Printf("Statistics rollup removed %d old rows\n", result.RowsAffected)
	}
}
