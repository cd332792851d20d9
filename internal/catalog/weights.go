package catalog

import "github.com/packsmart/packsmart-service/internal/domain/model"

// itemWeightTable maps common item names to advisory per-unit weights in
// kilograms. Names are matched case-insensitively with substring fallback,
// so "Aloha Shirt" resolves through the "shirt" entry.
func itemWeightTable() []WeightEntry {
	return []WeightEntry{
		{Category: model.CategoryClothes, Name: "underwear", Kg: 0.08},
		{Category: model.CategoryClothes, Name: "sock", Kg: 0.05},
		{Category: model.CategoryClothes, Name: "t-shirt", Kg: 0.18},
		{Category: model.CategoryClothes, Name: "shirt", Kg: 0.25},
		{Category: model.CategoryClothes, Name: "shorts", Kg: 0.25},
		{Category: model.CategoryClothes, Name: "jeans", Kg: 0.65},
		{Category: model.CategoryClothes, Name: "pants", Kg: 0.5},
		{Category: model.CategoryClothes, Name: "swimsuit", Kg: 0.15},
		{Category: model.CategoryClothes, Name: "suit", Kg: 1.2},
		{Category: model.CategoryClothes, Name: "sweater", Kg: 0.5},
		{Category: model.CategoryClothes, Name: "ski jacket", Kg: 1.1},
		{Category: model.CategoryClothes, Name: "jacket", Kg: 0.9},
		{Category: model.CategoryClothes, Name: "dress shoes", Kg: 1.0},
		{Category: model.CategoryClothes, Name: "shoes", Kg: 0.9},
		{Category: model.CategoryClothes, Name: "sandals", Kg: 0.45},
		{Category: model.CategoryClothes, Name: "boots", Kg: 1.4},
		{Category: model.CategoryClothes, Name: "belt", Kg: 0.2},
		{Category: model.CategoryClothes, Name: "tie", Kg: 0.07},
		{Category: model.CategoryClothes, Name: "gloves", Kg: 0.15},
		{Category: model.CategoryClothes, Name: "beanie", Kg: 0.1},
		{Category: model.CategoryClothes, Name: "dress", Kg: 0.3},

		{Category: model.CategoryToiletries, Name: "toothbrush", Kg: 0.02},
		{Category: model.CategoryToiletries, Name: "toothpaste", Kg: 0.1},
		{Category: model.CategoryToiletries, Name: "sunscreen", Kg: 0.25},
		{Category: model.CategoryToiletries, Name: "shampoo", Kg: 0.3},
		{Category: model.CategoryToiletries, Name: "lotion", Kg: 0.25},
		{Category: model.CategoryToiletries, Name: "moisturizer", Kg: 0.15},
		{Category: model.CategoryToiletries, Name: "razor", Kg: 0.05},
		{Category: model.CategoryToiletries, Name: "deodorant", Kg: 0.1},
		{Category: model.CategoryToiletries, Name: "lip balm", Kg: 0.02},

		{Category: model.CategoryElectronics, Name: "laptop charger", Kg: 0.4},
		{Category: model.CategoryElectronics, Name: "laptop", Kg: 1.8},
		{Category: model.CategoryElectronics, Name: "tablet", Kg: 0.5},
		{Category: model.CategoryElectronics, Name: "phone charger", Kg: 0.1},
		{Category: model.CategoryElectronics, Name: "camera", Kg: 0.6},
		{Category: model.CategoryElectronics, Name: "power adapter", Kg: 0.15},
		{Category: model.CategoryElectronics, Name: "headphones", Kg: 0.25},
		{Category: model.CategoryElectronics, Name: "power bank", Kg: 0.3},

		{Category: model.CategoryDocuments, Name: "passport", Kg: 0.05},
		{Category: model.CategoryDocuments, Name: "notebook", Kg: 0.2},
		{Category: model.CategoryDocuments, Name: "guidebook", Kg: 0.4},
		{Category: model.CategoryDocuments, Name: "business cards", Kg: 0.05},
		{Category: model.CategoryDocuments, Name: "rail pass", Kg: 0.02},

		{Category: model.CategoryMiscellaneous, Name: "sunglasses", Kg: 0.15},
		{Category: model.CategoryMiscellaneous, Name: "umbrella", Kg: 0.4},
		{Category: model.CategoryMiscellaneous, Name: "water bottle", Kg: 0.3},
		{Category: model.CategoryMiscellaneous, Name: "padlock", Kg: 0.1},
		{Category: model.CategoryMiscellaneous, Name: "beach towel", Kg: 0.6},
		{Category: model.CategoryMiscellaneous, Name: "travel towel", Kg: 0.25},
		{Category: model.CategoryMiscellaneous, Name: "towel", Kg: 0.5},
		{Category: model.CategoryMiscellaneous, Name: "book", Kg: 0.35},
		{Category: model.CategoryMiscellaneous, Name: "travel pillow", Kg: 0.35},
		{Category: model.CategoryMiscellaneous, Name: "ski goggles", Kg: 0.2},
		{Category: model.CategoryMiscellaneous, Name: "hand warmers", Kg: 0.05},
	}
}
