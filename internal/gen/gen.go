package gen

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"demo/printshop/internal/model"
)

var (
	sizes       = []string{"XS", "S", "M", "L", "XL", "2XL", "11oz", "15oz", "A4", "A3"}
	accessories = []string{"None", "Gift Box", "Hanger", "Lamination", "Frame"}
)

func SeedOnce() { gofakeit.Seed(time.Now().UnixNano()) }

func cents(f float64) float64 { return math.Round(f*100) / 100 }

// FakeProduct returns a catalog product with one to four variations.
func FakeProduct() model.Product {
	base := cents(gofakeit.Price(4, 60))
	p := model.Product{
		Name:         gofakeit.ProductName(),
		Description:  gofakeit.ProductDescription(),
		BasePrice:    base,
		ExampleImage: gofakeit.URL(),
	}
	n := gofakeit.Number(1, 4)
	for i := 0; i < n; i++ {
		p.Variations = append(p.Variations, FakeVariation(base))
	}
	return p
}

func FakeVariation(base float64) model.Variation {
	qty := gofakeit.Number(1, 500)
	return model.Variation{
		Quantity:  &qty,
		Size:      gofakeit.RandomString(sizes),
		Accessory: gofakeit.RandomString(accessories),
		Price:     cents(base + gofakeit.Price(0, 25)),
	}
}

func FakeCustomer() model.CustomerInput {
	return model.CustomerInput{
		Name:    gofakeit.Name(),
		Company: gofakeit.Company(),
		Email:   gofakeit.Email(),
		Phone:   gofakeit.Phone(),
		Address: gofakeit.Street() + ", " + gofakeit.City(),
	}
}

func FakeCustomItem() model.CustomItem {
	return model.CustomItem{
		ProductName: gofakeit.ProductName(),
		Size:        gofakeit.RandomString(sizes),
		Price:       cents(gofakeit.Price(1, 200)),
		Quantity:    gofakeit.Number(1, 50),
		Accessory:   gofakeit.RandomString(accessories),
	}
}
