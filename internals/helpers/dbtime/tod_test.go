package dbtime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/helpers/dbtime"
)

func TestParse(t *testing.T) {
	tod, err := dbtime.Parse("07:30:00")
	require.NoError(t, err)
	assert.Equal(t, 7, tod.Hour())
	assert.Equal(t, "07:30:00", tod.String())

	short, err := dbtime.Parse("16:45")
	require.NoError(t, err)
	assert.Equal(t, "16:45:00", short.String())

	_, err = dbtime.Parse("25:00:00")
	assert.Error(t, err)
	_, err = dbtime.Parse("not-a-time")
	assert.Error(t, err)
}

func TestFromDropsDateAndZone(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Kampala")
	require.NoError(t, err)
	tod := dbtime.From(time.Date(2025, 9, 20, 7, 30, 15, 0, loc))
	assert.Equal(t, "07:30:15", tod.String())
}

func TestOrderingAndComponents(t *testing.T) {
	early, err := dbtime.Parse("07:05:30")
	require.NoError(t, err)
	late, err := dbtime.Parse("16:45")
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))

	assert.Equal(t, 7, early.Hour())
	assert.Equal(t, 5, early.Minute())
	assert.Equal(t, 30, early.Second())
}

func TestSQLValue(t *testing.T) {
	tod, err := dbtime.Parse("09:05:00")
	require.NoError(t, err)
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", v)

	var zero dbtime.Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestScan(t *testing.T) {
	var tod dbtime.Tod
	require.NoError(t, tod.Scan("13:15:30"))
	assert.Equal(t, 13, tod.Hour())

	require.NoError(t, tod.Scan([]byte("08:00")))
	assert.Equal(t, "08:00:00", tod.String())

	assert.Error(t, tod.Scan(42))
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := dbtime.Parse("07:30:00")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"07:30:00"`, string(b))

	var back dbtime.Tod
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tod.String(), back.String())
}
