package usecase

import (
	"sort"
	"strconv"

	"github.com/storefront/backend/internal/domain"
)

// FlattenMalformed repairs records that nest whole products under numeric-string
// keys ("0", "1", ...). Nested products are emitted in ascending key order and
// inherit the parent's provider; the parent itself is kept only when what is
// left after stripping the numeric keys still has a name. Records without
// numeric keys pass through untouched.
func FlattenMalformed(records []domain.RawRecord) []domain.RawRecord {
	result := make([]domain.RawRecord, 0, len(records))

	for _, record := range records {
		keys := numericKeys(record)
		if len(keys) == 0 {
			result = append(result, record)
			continue
		}

		provider, hasProvider := record["provider"]
		for _, nk := range keys {
			nested, ok := asObject(record[nk.key])
			if !ok {
				continue
			}
			product := make(domain.RawRecord, len(nested)+1)
			for k, v := range nested {
				product[k] = v
			}
			if hasProvider {
				product["provider"] = provider
			}
			result = append(result, product)
		}

		remainder := make(domain.RawRecord, len(record))
		for k, v := range record {
			remainder[k] = v
		}
		for _, nk := range keys {
			delete(remainder, nk.key)
		}
		if Truthy(remainder["nome"]) || Truthy(remainder["name"]) {
			result = append(result, remainder)
		}
	}

	return result
}

type numericKey struct {
	key   string
	index uint64
}

// numericKeys returns the keys of record that parse as non-negative integers, in numeric order
func numericKeys(record domain.RawRecord) []numericKey {
	var keys []numericKey
	for k := range record {
		n, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		keys = append(keys, numericKey{key: k, index: n})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].index != keys[j].index {
			return keys[i].index < keys[j].index
		}
		return keys[i].key < keys[j].key
	})
	return keys
}
