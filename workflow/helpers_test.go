package workflow

import (
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/inventory_mining/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func rawEvent(activity models.Activity, ts time.Time, material int, plant string, delta decimal.Decimal, seq int) models.RawEvent {
	return models.RawEvent{
		Activity:       activity,
		Timestamp:      ts,
		MaterialNumber: material,
		Plant:          plant,
		QuantityDelta:  delta,
		Sequence:       seq,
	}
}
