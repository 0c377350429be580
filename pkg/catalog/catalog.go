package catalog

import "sort"

// Catalog is the in-process menu index. The database holds the same items
// with their embeddings; this index serves lookups and similarity that do not
// need a vector search.
type Catalog struct {
	items []Item
	bySKU map[string]*Item
}

func New(items []Item) *Catalog {
	c := &Catalog{
		items: items,
		bySKU: make(map[string]*Item, len(items)),
	}
	for i := range c.items {
		c.bySKU[c.items[i].SKU] = &c.items[i]
	}
	return c
}

func (c *Catalog) All() []Item {
	return c.items
}

func (c *Catalog) BySKU(sku string) (*Item, bool) {
	item, ok := c.bySKU[sku]
	return item, ok
}

func (c *Catalog) ByCategory(cat Category) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Category == cat {
			out = append(out, item)
		}
	}
	return out
}

// Similar ranks other items by shared category and tags with the given SKU.
func (c *Catalog) Similar(sku string, limit int) []Item {
	base, ok := c.bySKU[sku]
	if !ok {
		return nil
	}
	baseTags := make(map[string]bool, len(base.Tags))
	for _, t := range base.Tags {
		baseTags[t] = true
	}

	type scored struct {
		item  Item
		score int
	}
	var candidates []scored
	for _, item := range c.items {
		if item.SKU == sku {
			continue
		}
		score := 0
		if item.Category == base.Category {
			score += 2
		}
		for _, t := range item.Tags {
			if baseTags[t] {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{item: item, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Item, len(candidates))
	for i, s := range candidates {
		out[i] = s.item
	}
	return out
}
