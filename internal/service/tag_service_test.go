package service

import (
	"context"
	"testing"

	"siteadmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreate_CaseInsensitiveUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tag, list, err := f.tag.Create(ctx, "Modern")
	require.NoError(t, err)
	assert.Equal(t, "Modern", tag.Name)
	require.Len(t, list, 1)

	_, _, err = f.tag.Create(ctx, "modern")
	assertKind(t, err, ErrConflict)
	_, _, err = f.tag.Create(ctx, "  MODERN ")
	assertKind(t, err, ErrConflict)

	var stored []models.Tag
	require.NoError(t, f.db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "Modern", stored[0].Name)
	assert.Equal(t, "modern", stored[0].NameKey)
}

func TestTagCreate_RequiresName(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"", "   "} {
		_, _, err := f.tag.Create(context.Background(), name)
		assertKind(t, err, ErrValidation)
	}
	assert.Zero(t, countRows(t, f.db, &models.Tag{}))
}

func TestTagUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, _, err := f.tag.Create(ctx, "Indoor")
	require.NoError(t, err)
	_, _, err = f.tag.Create(ctx, "Outdoor")
	require.NoError(t, err)

	// changing only the case of its own name is allowed
	updated, list, err := f.tag.Update(ctx, a.ID, "INDOOR")
	require.NoError(t, err)
	assert.Equal(t, "INDOOR", updated.Name)
	assert.Len(t, list, 2)

	_, _, err = f.tag.Update(ctx, a.ID, "outdoor")
	assertKind(t, err, ErrConflict)

	_, _, err = f.tag.Update(ctx, a.ID, " ")
	assertKind(t, err, ErrValidation)

	_, _, err = f.tag.Update(ctx, 4242, "Anything")
	assertKind(t, err, ErrNotFound)
}

func TestTagDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, _, err := f.tag.Create(ctx, "Indoor")
	require.NoError(t, err)

	list, err := f.tag.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.tag.Delete(ctx, a.ID)
	assertKind(t, err, ErrNotFound)
}
