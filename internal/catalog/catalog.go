// Package catalog holds the fixed list of sellable drinks and their
// current prices.  The catalog is configuration, not data: it is
// loaded once at startup and injected into the sales service, which
// copies name and price into every line item it records.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is one sellable drink.  IDs are positional (1-based) and only
// meaningful within the loaded catalog; persisted line items carry
// the name and price, never the catalog ID.
type Item struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Catalog is an ordered, read-only list of items.
type Catalog struct {
	items []Item
}

// Default returns the built-in drink list used when CATALOG_ITEMS is
// not set.  Prices are in cents (ARS).
func Default() Catalog {
	return fromPairs([]pair{
		{"Fernet con Coca", 800000},
		{"Cerveza", 350000},
		{"Gin Tonic", 700000},
		{"Vodka con Speed", 750000},
		{"Agua", 200000},
	})
}

type pair struct {
	name  string
	price int64
}

func fromPairs(ps []pair) Catalog {
	items := make([]Item, 0, len(ps))
	for i, p := range ps {
		items = append(items, Item{ID: uint64(i + 1), Name: p.name, PriceCents: p.price})
	}
	return Catalog{items: items}
}

// Parse builds a catalog from a "Name=price_cents,Name=price_cents"
// spec string.  Whitespace around names and prices is ignored.  An
// empty spec, a malformed entry or a negative price is an error so
// that configuration mistakes surface at startup rather than as
// wrong prices on receipts.
func Parse(spec string) (Catalog, error) {
	var ps []pair
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, priceStr, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Catalog{}, fmt.Errorf("catalog: malformed entry %q", entry)
		}
		price, err := strconv.ParseInt(strings.TrimSpace(priceStr), 10, 64)
		if err != nil || price < 0 {
			return Catalog{}, fmt.Errorf("catalog: invalid price in entry %q", entry)
		}
		ps = append(ps, pair{name: name, price: price})
	}
	if len(ps) == 0 {
		return Catalog{}, fmt.Errorf("catalog: empty spec")
	}
	return fromPairs(ps), nil
}

// Load returns Parse(spec) when spec is non-empty and the default
// catalog otherwise.
func Load(spec string) (Catalog, error) {
	if strings.TrimSpace(spec) == "" {
		return Default(), nil
	}
	return Parse(spec)
}

// Items returns the catalog in its fixed order.  Callers must not
// mutate the returned slice.
func (c Catalog) Items() []Item { return c.items }

// Lookup finds an item by its catalog ID.
func (c Catalog) Lookup(id uint64) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Len reports the number of items.
func (c Catalog) Len() int { return len(c.items) }
