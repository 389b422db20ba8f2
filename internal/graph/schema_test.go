package graph_test

import (
	"context"
	"testing"

	"oms/internal/domain/model"
	"oms/internal/graph"
	repo "oms/internal/repository"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	repo.ProductRepository
	byID map[int64]model.Product
}

func (s stubProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (s stubProducts) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	items := make([]model.Product, 0, len(s.byID))
	for _, p := range s.byID {
		items = append(items, p)
	}
	return items, int64(len(items)), nil
}

func newTestSchema(t *testing.T, products stubProducts) graphql.Schema {
	t.Helper()
	r := graph.NewResolver(nil, products, nil, nil, nil, nil, nil, nil, nil, nil)
	schema, err := r.Schema()
	require.NoError(t, err)
	return schema
}

func TestSchema_ProductQuery(t *testing.T) {
	products := stubProducts{byID: map[int64]model.Product{
		1: {
			ID:                1,
			SKU:               "WIDGET-001",
			Name:              "Premium Widget",
			Price:             decimal.RequireFromString("29.99"),
			QuantityAvailable: 500,
		},
	}}
	schema := newTestSchema(t, products)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ product(id: 1) { sku name price quantity_available } }`,
		Context:       context.Background(),
	})

	require.Empty(t, result.Errors)
	data := result.Data.(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, "WIDGET-001", product["sku"])
	assert.Equal(t, "Premium Widget", product["name"])
	assert.InDelta(t, 29.99, product["price"], 0.001)
	assert.Equal(t, 500, product["quantity_available"])
}

func TestSchema_ProductQuery_NotFoundReturnsNull(t *testing.T) {
	schema := newTestSchema(t, stubProducts{byID: map[int64]model.Product{}})

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ product(id: 42) { sku } }`,
		Context:       context.Background(),
	})

	require.Empty(t, result.Errors)
	data := result.Data.(map[string]interface{})
	assert.Nil(t, data["product"])
}

// limit: 0 は空リストで返す。クエリ全体を落とさない
func TestSchema_ProductsQuery_LimitZero(t *testing.T) {
	products := stubProducts{byID: map[int64]model.Product{
		1: {ID: 1, SKU: "WIDGET-001"},
	}}
	schema := newTestSchema(t, products)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ products(limit: 0) { sku } }`,
		Context:       context.Background(),
	})

	require.Empty(t, result.Errors)
	data := result.Data.(map[string]interface{})
	assert.Empty(t, data["products"])
}

func TestSchema_OrdersQuery_LimitZero(t *testing.T) {
	schema := newTestSchema(t, stubProducts{})

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ orders(limit: 0) { id } }`,
		Context:       context.Background(),
	})

	require.Empty(t, result.Errors)
	data := result.Data.(map[string]interface{})
	assert.Empty(t, data["orders"])
}

func TestSchema_UnknownFieldRejected(t *testing.T) {
	schema := newTestSchema(t, stubProducts{})

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ product(id: 1) { nope } }`,
		Context:       context.Background(),
	})

	assert.NotEmpty(t, result.Errors)
}
