package database

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/obra/internal/models"
)

func TestAddChildrenShowUpInAggregate(t *testing.T) {
	t.Parallel()
	dao, _ := setupTestDao(t)
	ctx := context.Background()

	p, err := dao.Insert(ctx, newTestProject("Birdhouse"))
	require.NoError(t, err)

	m, err := dao.AddMaterial(ctx, &models.Material{
		ProjectID:   p.ID,
		Name:        "cedar plank",
		NumRequired: 2,
		Cost:        decimal.RequireFromString("8.999"),
	})
	require.NoError(t, err)
	assert.Positive(t, m.ID)

	first, err := dao.AddStep(ctx, &models.Step{ProjectID: p.ID, Text: "cut panels"})
	require.NoError(t, err)
	second, err := dao.AddStep(ctx, &models.Step{ProjectID: p.ID, Text: "assemble"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)

	c, err := dao.AddCategory(ctx, "Woodwork")
	require.NoError(t, err)
	ok, err := dao.AssignCategory(ctx, p.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, found, err := dao.FetchByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Materials, 1)
	assert.True(t, decimal.RequireFromString("9.00").Equal(got.Materials[0].Cost))
	assert.Equal(t, 2, got.Materials[0].NumRequired)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "cut panels", got.Steps[0].Text)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, c.ID, got.Categories[0].ID)
}

func TestAddStep_ExplicitOrder(t *testing.T) {
	t.Parallel()
	dao, _ := setupTestDao(t)
	ctx := context.Background()

	p, err := dao.Insert(ctx, newTestProject("Table"))
	require.NoError(t, err)

	s, err := dao.AddStep(ctx, &models.Step{ProjectID: p.ID, Text: "finish", Order: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, s.Order)

	next, err := dao.AddStep(ctx, &models.Step{ProjectID: p.ID, Text: "wax"})
	require.NoError(t, err)
	assert.Equal(t, 11, next.Order)
}

func TestAssignCategory_Twice(t *testing.T) {
	t.Parallel()
	dao, db := setupTestDao(t)
	ctx := context.Background()

	p, err := dao.Insert(ctx, newTestProject("Lamp"))
	require.NoError(t, err)
	c, err := dao.AddCategory(ctx, "Lighting")
	require.NoError(t, err)

	ok, err := dao.AssignCategory(ctx, p.ID, c.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = dao.AssignCategory(ctx, p.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, countRows(t, db, "project_category"))
}

func TestAddCategory_DuplicateName(t *testing.T) {
	t.Parallel()
	dao, _ := setupTestDao(t)
	ctx := context.Background()

	_, err := dao.AddCategory(ctx, "Garden")
	require.NoError(t, err)
	_, err = dao.AddCategory(ctx, "Garden")
	assert.ErrorIs(t, err, ErrDataAccess)
}

func TestFetchAllCategories(t *testing.T) {
	t.Parallel()
	dao, _ := setupTestDao(t)
	ctx := context.Background()

	for _, name := range []string{"Plumbing", "Electrical", "Painting"} {
		_, err := dao.AddCategory(ctx, name)
		require.NoError(t, err)
	}

	cats, err := dao.FetchAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Electrical", cats[0].Name)
	assert.Equal(t, "Painting", cats[1].Name)
	assert.Equal(t, "Plumbing", cats[2].Name)
}

func TestAddMaterial_UnknownProject(t *testing.T) {
	t.Parallel()
	dao, _ := setupTestDao(t)

	_, err := dao.AddMaterial(context.Background(), &models.Material{ProjectID: 123, Name: "nails"})
	assert.ErrorIs(t, err, ErrDataAccess, "foreign key violation surfaces as a data access failure")
}
