package postgres

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPostgresUserStore(t *testing.T) {
	db := &sql.DB{}

	t.Run("panics on nil db", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresUserStore(nil, bcrypt.DefaultCost, nil)
		})
	})

	t.Run("keeps valid bcrypt cost", func(t *testing.T) {
		s := NewPostgresUserStore(db, 12, nil)
		assert.Equal(t, 12, s.bcryptCost)
	})

	t.Run("clamps cost below minimum", func(t *testing.T) {
		s := NewPostgresUserStore(db, 0, nil)
		assert.Equal(t, bcrypt.DefaultCost, s.bcryptCost)
	})

	t.Run("clamps cost above maximum", func(t *testing.T) {
		s := NewPostgresUserStore(db, 99, nil)
		assert.Equal(t, bcrypt.DefaultCost, s.bcryptCost)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		s := NewPostgresUserStore(db, bcrypt.DefaultCost, nil)
		assert.NotNil(t, s.logger)
	})
}

func TestNewPostgresTaskStore(t *testing.T) {
	t.Run("panics on nil db", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresTaskStore(nil, nil)
		})
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		s := NewPostgresTaskStore(&sql.DB{}, nil)
		assert.NotNil(t, s.logger)
	})
}

func TestNullableString(t *testing.T) {
	assert.Equal(t, sql.NullString{String: "", Valid: false}, nullableString(""))
	assert.Equal(t, sql.NullString{String: "note", Valid: true}, nullableString("note"))
}
