package catalog

import "github.com/packsmart/packsmart-service/internal/domain/model"

// suggestionTable pairs item keywords with commonly forgotten companions.
// Entries are checked in order; "swimsuit" must precede matching through
// "suit" and wins on keyword length.
func suggestionTable() []SuggestionEntry {
	return []SuggestionEntry{
		{
			Keyword: "suit",
			Items: []model.CatalogItem{
				{Name: "Dress Shoes", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Belt", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Tie", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Dress Socks", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageCarryOn},
				{Name: "Garment Bag", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageCarryOn},
			},
		},
		{
			Keyword: "swimsuit",
			Items: []model.CatalogItem{
				{Name: "Beach Towel", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Sunscreen", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Flip Flops", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Swim Goggles", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageChecked},
			},
		},
		{
			Keyword: "laptop",
			Items: []model.CatalogItem{
				{Name: "Laptop Charger", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Laptop Sleeve", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Mouse", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggagePersonal},
			},
		},
		{
			Keyword: "camera",
			Items: []model.CatalogItem{
				{Name: "Memory Card", Category: model.CategoryElectronics, Quantity: 2, Luggage: model.LuggagePersonal},
				{Name: "Camera Charger", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Tripod", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggageChecked},
			},
		},
		{
			Keyword: "hiking boots",
			Items: []model.CatalogItem{
				{Name: "Hiking Socks", Category: model.CategoryClothes, Quantity: 3, Luggage: model.LuggageBackpack},
				{Name: "Blister Plasters", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Trekking Poles", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageChecked},
			},
		},
		{
			Keyword: "ski",
			Items: []model.CatalogItem{
				{Name: "Ski Goggles", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Thermal Socks", Category: model.CategoryClothes, Quantity: 3, Luggage: model.LuggageChecked},
				{Name: "Hand Warmers", Category: model.CategoryMiscellaneous, Quantity: 4, Luggage: model.LuggageChecked},
			},
		},
		{
			Keyword: "baby",
			Items: []model.CatalogItem{
				{Name: "Diapers", Category: model.CategoryMiscellaneous, Quantity: 20, Luggage: model.LuggageChecked},
				{Name: "Baby Wipes", Category: model.CategoryToiletries, Quantity: 2, Luggage: model.LuggageCarryOn},
				{Name: "Pacifier", Category: model.CategoryMiscellaneous, Quantity: 2, Luggage: model.LuggagePersonal},
			},
		},
		{
			Keyword: "passport",
			Items: []model.CatalogItem{
				{Name: "Passport Holder", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Document Copies", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Travel Insurance", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggagePersonal},
			},
		},
		{
			Keyword: "rain jacket",
			Items: []model.CatalogItem{
				{Name: "Umbrella", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Waterproof Bag Cover", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageBackpack},
			},
		},
	}
}
