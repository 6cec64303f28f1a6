package service

import (
	"context"
	"testing"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chair() ProductInput {
	return ProductInput{
		Name:         "Chair",
		Category:     "Furniture",
		Tag:          "Indoor",
		Description:  "d",
		FeatureTitle: "t",
		Features:     []string{"oak", "hand finished"},
		Image:        "u",
	}
}

func TestProductScenario_CreateGetDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.product.Create(ctx, chair())
	require.NoError(t, err)

	got, err := f.product.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chair", got.Name)
	assert.Equal(t, "Furniture", got.Category)
	assert.Equal(t, "Indoor", got.Tag)
	assert.Equal(t, "d", got.Description)
	assert.Equal(t, "t", got.FeatureTitle)
	assert.Equal(t, []string{"oak", "hand finished"}, []string(got.Features))
	assert.Equal(t, "u", got.Image)

	require.NoError(t, f.product.Delete(ctx, p.ID))
	list, err := f.product.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, change{domain.EntityProduct, domain.ActionDeleted, p.ID}, f.changes.last())
}

func TestProductCreate_FeaturesDefaultEmpty(t *testing.T) {
	f := newFixture(t)
	in := chair()
	in.Features = nil
	p, err := f.product.Create(context.Background(), in)
	require.NoError(t, err)

	got, err := f.product.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Features)
	assert.Empty(t, got.Features)
}

func TestProductCreate_RequiredFields(t *testing.T) {
	f := newFixture(t)
	mutations := []func(*ProductInput){
		func(in *ProductInput) { in.Name = "" },
		func(in *ProductInput) { in.Category = "" },
		func(in *ProductInput) { in.Tag = "" },
		func(in *ProductInput) { in.Description = "" },
		func(in *ProductInput) { in.FeatureTitle = "" },
		func(in *ProductInput) { in.Image = "" },
	}
	for _, m := range mutations {
		in := chair()
		m(&in)
		_, err := f.product.Create(context.Background(), in)
		assertKind(t, err, ErrValidation)
	}
	assert.Zero(t, countRows(t, f.db, &models.Product{}))
}

func TestProductCreate_DuplicateTrimmedName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.product.Create(ctx, chair())
	require.NoError(t, err)

	dup := chair()
	dup.Name = "  Chair "
	_, err = f.product.Create(ctx, dup)
	assertKind(t, err, ErrConflict)
	assert.Equal(t, int64(1), countRows(t, f.db, &models.Product{}))
}

func TestProductUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.product.Create(ctx, chair())
	require.NoError(t, err)
	table := chair()
	table.Name = "Table"
	other, err := f.product.Create(ctx, table)
	require.NoError(t, err)

	upd := ProductUpdate{Name: "Armchair", Category: "Furniture", Tag: "Living", Description: "soft", Image: "u2"}
	got, err := f.product.Update(ctx, p.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Armchair", got.Name)
	assert.Equal(t, "Living", got.Tag)
	assert.Equal(t, "t", got.FeatureTitle, "omitted feature title is kept")
	assert.Equal(t, []string{"oak", "hand finished"}, []string(got.Features), "omitted features are kept")

	features := []string{}
	upd.FeatureTitle = strPtr("Specs")
	upd.Features = &features
	got, err = f.product.Update(ctx, p.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Specs", got.FeatureTitle)
	assert.Empty(t, got.Features)

	upd.Name = " Table "
	_, err = f.product.Update(ctx, p.ID, upd)
	assertKind(t, err, ErrConflict)

	upd.Name = "Table"
	_, err = f.product.Update(ctx, other.ID, upd)
	assert.NoError(t, err, "keeping its own name is not a collision")

	upd.Image = ""
	_, err = f.product.Update(ctx, p.ID, upd)
	assertKind(t, err, ErrValidation)

	upd = ProductUpdate{Name: "X", Category: "c", Tag: "t", Description: "d", Image: "i"}
	_, err = f.product.Update(ctx, 31337, upd)
	assertKind(t, err, ErrNotFound)
}

func TestProductDelete_NotFound(t *testing.T) {
	f := newFixture(t)
	err := f.product.Delete(context.Background(), 5)
	assertKind(t, err, ErrNotFound)
}
