package seed

import (
	_ "embed"

	"github.com/bytedance/sonic"
	"github.com/ougirez/lwc/internal/domain"
)

var (
	//go:embed places.json
	placesJSON []byte
	//go:embed desserts.json
	dessertsJSON []byte
)

// Places returns a fresh copy of the bundled place catalog.
func Places() []domain.Place {
	return mustDecode[domain.Place](placesJSON)
}

// Desserts returns a fresh copy of the bundled dessert catalog.
func Desserts() []domain.ThaiDessert {
	return mustDecode[domain.ThaiDessert](dessertsJSON)
}

func mustDecode[T any](raw []byte) []T {
	var out []T
	if err := sonic.ConfigStd.Unmarshal(raw, &out); err != nil {
		panic("seed: " + err.Error())
	}
	return out
}
