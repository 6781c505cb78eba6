package migration

import (
	"context"
	"errors"

	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
)

// SampleProduct is one catalog entry of the demo data set
type SampleProduct struct {
	Code  string
	Name  string
	Price int64
}

// SampleProducts is the demo catalog shipped with the register
var SampleProducts = []SampleProduct{
	{Code: "1234567890123", Name: "コーラ（500ml）", Price: 150},
	{Code: "2345678901234", Name: "お茶（500ml）", Price: 120},
	{Code: "3456789012345", Name: "コーヒー（350ml）", Price: 180},
	{Code: "4567890123456", Name: "サンドイッチ", Price: 350},
	{Code: "5678901234567", Name: "おにぎり（梅干し）", Price: 120},
	{Code: "6789012345678", Name: "おにぎり（鮭）", Price: 150},
	{Code: "7890123456789", Name: "チョコレート", Price: 100},
	{Code: "8901234567890", Name: "ガム", Price: 80},
	{Code: "9012345678901", Name: "アイスクリーム", Price: 200},
	{Code: "0123456789012", Name: "カップラーメン", Price: 250},
}

// SeedSampleProducts registers every sample product whose code is not in the
// catalog yet and returns how many were created. Existing rows are left as they are.
func SeedSampleProducts(ctx context.Context, catalog usecase.CatalogUseCase) (int, error) {
	created := 0
	for _, sample := range SampleProducts {
		_, found, err := catalog.FindByCode(ctx, sample.Code)
		if err != nil {
			return created, err
		}
		if found {
			continue
		}

		if _, err := catalog.Create(ctx, sample.Code, sample.Name, sample.Price); err != nil {
			// Another instance seeded the same code concurrently
			if errors.Is(err, errs.ErrDuplicateCode) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
