package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Initial state
	assert.Equal(t, Metrics{ElemSize: 8}, v.Metrics())
	assert.Zero(t, v.Utilization())

	for i := range 5 {
		require.NoError(t, v.Append(int64(i)))
	}

	m := v.Metrics()
	assert.Equal(t, 5, m.Size)
	assert.Equal(t, 8, m.Capacity)
	assert.Equal(t, 8, m.ElemSize)
	assert.Equal(t, 40, m.BytesInUse)
	assert.Equal(t, 64, m.BytesReserved)
	assert.InDelta(t, 0.625, m.Utilization, 1e-9)

	// Snapshot agrees with the accessors
	assert.Equal(t, v.Size(), m.Size)
	assert.Equal(t, v.Capacity(), m.Capacity)
	assert.Equal(t, v.BytesInUse(), m.BytesInUse)
	assert.Equal(t, v.BytesReserved(), m.BytesReserved)
	assert.Equal(t, v.Utilization(), m.Utilization)
}

func TestVectorMetricsAfterResize(t *testing.T) {
	v, err := NewSized[int32](10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Utilization())

	require.NoError(t, v.Resize(0))
	assert.Zero(t, v.BytesInUse())
	assert.Equal(t, 40, v.BytesReserved(), "storage is kept")
	assert.Zero(t, v.Utilization())
}

func TestVectorMetricsAfterRelease(t *testing.T) {
	v := New[int16]()
	require.NoError(t, v.Append(1))

	v.Release()

	assert.Equal(t, Metrics{ElemSize: 2}, v.Metrics())
}

func TestVectorMetricsZeroSizeElements(t *testing.T) {
	v, err := NewSized[struct{}](3)
	require.NoError(t, err)

	m := v.Metrics()
	assert.Equal(t, 3, m.Size)
	assert.Zero(t, m.ElemSize)
	assert.Zero(t, m.BytesReserved)
	assert.Equal(t, 1.0, m.Utilization)
}
