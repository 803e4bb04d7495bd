package workflow

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

// RunSummary accumulates the row-level outcomes of one pipeline run.
// Malformed rows are excluded but surfaced here, never dropped silently.
type RunSummary struct {
	RunId             string
	StartedAt         time.Time
	EventsByActivity  map[models.Activity]int
	MalformedRows     int
	OrphanedItems     int
	Partitions        int
	PartitionsShifted int
	Reclassified      int
	PassedThrough     int
	MissingThresholds int
}

func NewRunSummary() *RunSummary {
	return &RunSummary{
		RunId:            uuid.NewString(),
		StartedAt:        time.Now().UTC(),
		EventsByActivity: make(map[models.Activity]int),
	}
}

func (s *RunSummary) countEvent(activity models.Activity) {
	s.EventsByActivity[activity]++
}

func (s *RunSummary) TotalEvents() int {
	total := 0
	for _, n := range s.EventsByActivity {
		total += n
	}
	return total
}

func (s *RunSummary) LogFields() logrus.Fields {
	fields := logrus.Fields{
		"run_id":             s.RunId,
		"elapsed":            time.Since(s.StartedAt).String(),
		"events_total":       s.TotalEvents(),
		"malformed_rows":     s.MalformedRows,
		"orphaned_items":     s.OrphanedItems,
		"partitions":         s.Partitions,
		"partitions_shifted": s.PartitionsShifted,
		"reclassified":       s.Reclassified,
		"passed_through":     s.PassedThrough,
		"missing_thresholds": s.MissingThresholds,
	}
	for activity, n := range s.EventsByActivity {
		fields["events."+string(activity)] = n
	}
	return fields
}
