package service

import (
	"context"
	"testing"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, list, err := f.category.Create(ctx, CategoryInput{Name: "  Furniture ", Image: "https://img/1", Video: "https://vid/1"})
	require.NoError(t, err)
	assert.Equal(t, "Furniture", c.Name)
	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	require.Len(t, list, 1)
	assert.Equal(t, change{domain.EntityCategory, domain.ActionCreated, c.ID}, f.changes.last())
}

func TestCategoryCreate_RequiredFields(t *testing.T) {
	f := newFixture(t)
	inputs := []CategoryInput{
		{Image: "i", Video: "v"},
		{Name: "n", Video: "v"},
		{Name: "n", Image: "i"},
		{Name: "   ", Image: "i", Video: "v"},
	}
	for _, in := range inputs {
		_, _, err := f.category.Create(context.Background(), in)
		assertKind(t, err, ErrValidation)
	}
	assert.Zero(t, countRows(t, f.db, &models.Category{}))
	assert.Zero(t, f.changes.count())
}

func TestCategoryCreate_DuplicateTrimmedName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, err := f.category.Create(ctx, CategoryInput{Name: "Lighting", Image: "i", Video: "v"})
	require.NoError(t, err)

	_, _, err = f.category.Create(ctx, CategoryInput{Name: " Lighting  ", Image: "i2", Video: "v2"})
	assertKind(t, err, ErrConflict)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.Category{}))
}

func TestCategoryList_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		_, _, err := f.category.Create(ctx, CategoryInput{Name: name, Image: "i", Video: "v"})
		require.NoError(t, err)
	}
	list, err := f.category.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestCategoryUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, _, err := f.category.Create(ctx, CategoryInput{Name: "Old", Image: "i", Video: "v"})
	require.NoError(t, err)

	updated, list, err := f.category.Update(ctx, c.ID, CategoryPatch{Name: strPtr(" New ")})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "i", updated.Image)
	assert.Equal(t, "v", updated.Video)
	require.Len(t, list, 1)
	assert.Equal(t, "New", list[0].Name)
}

func TestCategoryUpdate_EmptyPatchLeavesFieldsUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, _, err := f.category.Create(ctx, CategoryInput{Name: "Same", Image: "i", Video: "v"})
	require.NoError(t, err)

	updated, _, err := f.category.Update(ctx, c.ID, CategoryPatch{})
	require.NoError(t, err)
	assert.Equal(t, c.Name, updated.Name)
	assert.Equal(t, c.Image, updated.Image)
	assert.Equal(t, c.Video, updated.Video)
	assert.True(t, c.CreatedAt.Equal(updated.CreatedAt))
}

func TestCategoryUpdate_Conflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, _, err := f.category.Create(ctx, CategoryInput{Name: "A", Image: "i", Video: "v"})
	require.NoError(t, err)
	_, _, err = f.category.Create(ctx, CategoryInput{Name: "B", Image: "i", Video: "v"})
	require.NoError(t, err)

	_, _, err = f.category.Update(ctx, a.ID, CategoryPatch{Name: strPtr("B")})
	assertKind(t, err, ErrConflict)

	// renaming to its own name is not a collision
	_, _, err = f.category.Update(ctx, a.ID, CategoryPatch{Name: strPtr("A")})
	assert.NoError(t, err)

	_, _, err = f.category.Update(ctx, a.ID, CategoryPatch{Name: strPtr("  ")})
	assertKind(t, err, ErrValidation)

	_, _, err = f.category.Update(ctx, 9999, CategoryPatch{Name: strPtr("Z")})
	assertKind(t, err, ErrNotFound)
}

func TestCategoryDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, _, err := f.category.Create(ctx, CategoryInput{Name: "A", Image: "i", Video: "v"})
	require.NoError(t, err)
	_, _, err = f.category.Create(ctx, CategoryInput{Name: "B", Image: "i", Video: "v"})
	require.NoError(t, err)

	list, err := f.category.Delete(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)

	_, err = f.category.Delete(ctx, a.ID)
	assertKind(t, err, ErrNotFound)

	// the name is free again after a delete
	_, _, err = f.category.Create(ctx, CategoryInput{Name: "A", Image: "i", Video: "v"})
	assert.NoError(t, err)
}
