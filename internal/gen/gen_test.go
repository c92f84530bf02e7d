package gen

import (
	"testing"

	"demo/printshop/internal/model"
	"demo/printshop/internal/validate"

	"github.com/stretchr/testify/require"
)

func TestFakeProduct(t *testing.T) {
	SeedOnce()
	for i := 0; i < 20; i++ {
		p := FakeProduct()
		require.NotEmpty(t, p.Name)
		require.NotEmpty(t, p.Variations)
		require.LessOrEqual(t, len(p.Variations), 4)
		for _, v := range p.Variations {
			require.NoError(t, validate.Variation(model.VariationInput{Size: v.Size, Price: &v.Price, Quantity: v.Quantity}))
			require.GreaterOrEqual(t, v.Price, p.BasePrice)
		}
	}
}

func TestFakeCustomerAndItems(t *testing.T) {
	require.NoError(t, validate.Customer(FakeCustomer()))

	id := int64(1)
	d := model.DraftInput{CustomerID: &id, CustomItems: []model.CustomItem{FakeCustomItem(), FakeCustomItem()}}
	require.NoError(t, validate.Draft(d))
}
