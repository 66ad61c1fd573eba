package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFinish(t *testing.T) {
	booking := &Booking{ID: 1, StartDate: 1000}
	require.True(t, booking.IsOpen())

	reference := time.UnixMilli(5000)
	booking.Finish(reference)

	require.NotNil(t, booking.EndDate)
	assert.Equal(t, int64(5000), *booking.EndDate)
	assert.False(t, booking.IsOpen())
}

func TestBookingFinishZeroReference(t *testing.T) {
	booking := &Booking{ID: 1, StartDate: time.Now().UnixMilli()}
	booking.Finish(time.Time{})

	require.NotNil(t, booking.EndDate)
	assert.GreaterOrEqual(t, *booking.EndDate, booking.StartDate)
}

func TestTaskAddTime(t *testing.T) {
	task := &Task{ID: 1, Time: 100}

	task.AddTime(50)
	assert.Equal(t, int64(150), task.Time)

	task.AddTime(0)
	task.AddTime(-10)
	assert.Equal(t, int64(150), task.Time)
}

func TestImportanceOutranks(t *testing.T) {
	urgent := &Importance{Name: "Urgent", Val: 10}
	low := &Importance{Name: "Low", Val: 1}

	assert.True(t, urgent.Outranks(low))
	assert.False(t, low.Outranks(urgent))
	assert.False(t, urgent.Outranks(nil))
}
