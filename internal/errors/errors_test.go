package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paddockgames/loadout-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "loadout not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "loadout not found", err.Message)
	assert.Equal(t, "NOT_FOUND: loadout not found", err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("no record for slot 2")
	outer := errors.Wrap(inner, "failed to load loadout")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(outer))
	assert.True(t, errors.IsNotFound(outer))
	assert.ErrorIs(t, outer, inner)
}

func TestWrapPlainError(t *testing.T) {
	inner := stderrors.New("disk full")
	outer := errors.Wrap(inner, "failed to persist loadouts")

	assert.Equal(t, errors.CodeInternal, errors.GetCode(outer))
	assert.ErrorIs(t, outer, inner)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	inner := fmt.Errorf("write %s: permission denied", "loadouts/1.1.0")
	outer := errors.WrapWithCode(inner, errors.CodeUnavailable, "loadout store unavailable")

	assert.True(t, errors.IsUnavailable(outer))
	assert.ErrorIs(t, outer, inner)
}

func TestGetCodeNil(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
}

func TestExpectedCodes(t *testing.T) {
	assert.True(t, errors.IsExpected(errors.NotFound("missing")))
	assert.True(t, errors.IsExpected(errors.PermissionDenied("rank too low")))
	assert.True(t, errors.IsExpected(errors.ResourceExhausted("not enough supplies")))
	assert.False(t, errors.IsExpected(errors.Internal("bug")))
	assert.False(t, errors.IsExpected(stderrors.New("opaque")))
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("faction_key", "").
		RequiredSlot("slot_index", -1).
		Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, errors.GetMessage(err), "faction_key is required")
	assert.Contains(t, errors.GetMessage(err), "slot_index must not be negative")
}

func TestValidationBuilderNoErrors(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("faction_key", "US").
		RequiredSlot("slot_index", 0).
		Build()

	assert.NoError(t, err)
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("loadout not found").
		WithMeta("player_id", "player_123").
		WithMeta("slot_index", 2)

	assert.Equal(t, "player_123", err.Meta["player_id"])
	assert.Equal(t, 2, err.Meta["slot_index"])
}
