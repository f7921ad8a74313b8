package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListValue(t *testing.T) {
	v, err := TagList{"outdoors", "summer"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["outdoors","summer"]`, v)

	v, err = TagList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestTagListScan(t *testing.T) {
	var tags TagList
	require.NoError(t, tags.Scan(`["a","b"]`))
	assert.Equal(t, TagList{"a", "b"}, tags)

	require.NoError(t, tags.Scan([]byte(`["c"]`)))
	assert.Equal(t, TagList{"c"}, tags)

	require.NoError(t, tags.Scan(nil))
	assert.Nil(t, tags)

	require.NoError(t, tags.Scan(""))
	assert.Nil(t, tags)

	assert.Error(t, tags.Scan(42))
}

func TestTagListContains(t *testing.T) {
	tags := TagList{"a", "b"}
	assert.True(t, tags.Contains("a"))
	assert.False(t, tags.Contains("A"))
	assert.False(t, TagList(nil).Contains("a"))
}

func TestPriorityOrDefault(t *testing.T) {
	i := BucketItem{}
	assert.Equal(t, PriorityMedium, i.PriorityOrDefault())

	i.Priority = PriorityHigh
	assert.Equal(t, PriorityHigh, i.PriorityOrDefault())
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidStatus(StatusNotStarted))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.False(t, ValidStatus("Done"))

	assert.True(t, ValidPriority(PriorityMedium))
	assert.False(t, ValidPriority(""))
}
