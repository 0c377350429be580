package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/recommend/pipeline"
)

func TestResolveTopKPrefersRequestThenConfig(t *testing.T) {
	assert.Equal(t, 5, resolveTopK(5, 8))
	assert.Equal(t, 8, resolveTopK(0, 8))
	assert.Equal(t, pipeline.DefaultTopK, resolveTopK(0, 0))
	assert.Equal(t, pipeline.DefaultTopK, resolveTopK(-1, -1))
}

func TestCapPerCategoryLimitsAndTrims(t *testing.T) {
	mk := func(sku string, cat catalog.Category) pipeline.ScoredItem {
		return pipeline.ScoredItem{Item: &catalog.Item{SKU: sku, Category: cat}}
	}
	ranked := []pipeline.ScoredItem{
		mk("c1", catalog.CategoryCoffee),
		mk("c2", catalog.CategoryCoffee),
		mk("c3", catalog.CategoryCoffee),
		mk("t1", catalog.CategoryTea),
		mk("t2", catalog.CategoryTea),
		mk("p1", catalog.CategoryFood),
	}

	out := capPerCategory(ranked, 2, 5)

	skus := make([]string, 0, len(out))
	for _, r := range out {
		skus = append(skus, r.Item.SKU)
	}
	assert.Equal(t, []string{"c1", "c2", "t1", "t2", "p1"}, skus)
}
