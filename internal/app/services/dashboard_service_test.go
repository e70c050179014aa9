package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count int64
	err   error
}

func (c *fakeCounter) Count(ctx context.Context) (int64, error) {
	return c.count, c.err
}

func TestGetStats(t *testing.T) {
	service := NewDashboardService(
		&fakeCounter{count: 3},
		&fakeCounter{count: 7},
		&fakeCounter{count: 2},
	)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalStudents)
	assert.Equal(t, int64(7), stats.TotalGrades)
	assert.Equal(t, int64(2), stats.TotalLecturers)
}

func TestGetStatsCountFailure(t *testing.T) {
	service := NewDashboardService(
		&fakeCounter{count: 3},
		&fakeCounter{err: errors.New("connection refused")},
		&fakeCounter{count: 2},
	)

	stats, err := service.GetStats(context.Background())
	require.Error(t, err)
	assert.Nil(t, stats)
}
