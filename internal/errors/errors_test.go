package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/punch/internal/errors"
)

func TestKindMatching(t *testing.T) {
	t.Run("Is matches the sentinel of the same kind", func(t *testing.T) {
		err := errors.Unparseablef("cannot parse %q", "8:7x")
		assert.True(t, stderrors.Is(err, errors.ErrUnparseable))
		assert.False(t, stderrors.Is(err, errors.ErrInvalidRange))
	})
	t.Run("Is survives wrapping", func(t *testing.T) {
		err := pkgerrors.Wrap(errors.InvalidCalendarf("month 13"), "selecting month")
		assert.True(t, stderrors.Is(err, errors.ErrInvalidCalendar))
		assert.Equal(t, errors.KindInvalidCalendar, errors.KindOf(err))
	})
	t.Run("KindOf is empty for foreign errors", func(t *testing.T) {
		assert.Equal(t, errors.Kind(""), errors.KindOf(fmt.Errorf("boom")))
	})
	t.Run("Storage keeps its cause", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := errors.Storage(cause, "writing %s", "2026-10.txt")
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "writing 2026-10.txt: disk full", err.Error())
	})
}
