package rider_test

import (
	"testing"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/rider"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Miguel Santos", "+63-917-555-0101", "motorcycle", "ABC-1234")
	require.NoError(t, err)
	return r
}

func TestNewRider(t *testing.T) {
	t.Run("registers in pending status", func(t *testing.T) {
		r := newTestRider(t)

		assert.Equal(t, rider.StatusPending, r.Status())
		assert.False(t, r.CanClaim())
		require.NoError(t, r.Validate())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := rider.NewRider(kernel.NewUUID(), "", "+63-917-555-0101", "", "")
		assert.ErrorIs(t, err, rider.ErrNameIsRequired)
	})

	t.Run("requires phone", func(t *testing.T) {
		_, err := rider.NewRider(kernel.NewUUID(), "Miguel Santos", "", "", "")
		assert.ErrorIs(t, err, rider.ErrPhoneIsRequired)
	})

	t.Run("requires constructed id", func(t *testing.T) {
		_, err := rider.NewRider(kernel.UUID{}, "Miguel Santos", "+63-917-555-0101", "", "")
		require.Error(t, err)
	})
}

func TestRider_Approve(t *testing.T) {
	t.Run("pending rider becomes active", func(t *testing.T) {
		r := newTestRider(t)

		require.NoError(t, r.Approve())

		assert.Equal(t, rider.StatusActive, r.Status())
		assert.True(t, r.CanClaim())
	})

	t.Run("approving twice is a state conflict", func(t *testing.T) {
		r := newTestRider(t)
		require.NoError(t, r.Approve())

		err := r.Approve()

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, rider.StatusActive, r.Status())
	})
}

func TestRider_Deactivate(t *testing.T) {
	t.Run("active rider becomes inactive", func(t *testing.T) {
		r := newTestRider(t)
		require.NoError(t, r.Approve())

		require.NoError(t, r.Deactivate())

		assert.Equal(t, rider.StatusInactive, r.Status())
		assert.False(t, r.CanClaim())
	})

	t.Run("pending rider cannot be deactivated", func(t *testing.T) {
		r := newTestRider(t)

		err := r.Deactivate()

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []rider.Status{rider.StatusPending, rider.StatusActive, rider.StatusInactive} {
		parsed, err := rider.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := rider.StatusFromString("banned")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreRider(t *testing.T) {
	id := kernel.NewUUID()

	r, err := rider.RestoreRider(id, "Miguel Santos", "+63-917-555-0101", "motorcycle", "ABC-1234", rider.StatusActive)
	require.NoError(t, err)

	assert.True(t, r.ID().IsEqual(id))
	assert.True(t, r.CanClaim())
	require.NoError(t, r.Validate())

	_, err = rider.RestoreRider(id, "Miguel Santos", "", "", "", rider.StatusUnknown)
	require.Error(t, err)
}
