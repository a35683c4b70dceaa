package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"wanderlist_backend/internal/util"
)

func TestVisitLookupErr(t *testing.T) {
	t.Run("missing record maps to not found", func(t *testing.T) {
		err := visitLookupErr(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, err, util.ErrVisitNotFound)
	})

	t.Run("wrapped missing record maps to not found", func(t *testing.T) {
		err := visitLookupErr(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound))
		assert.ErrorIs(t, err, util.ErrVisitNotFound)
	})

	t.Run("database failure is not a 404", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		err := visitLookupErr(dbErr)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, util.ErrVisitNotFound)
	})
}
