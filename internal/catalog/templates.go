package catalog

import "github.com/packsmart/packsmart-service/internal/domain/model"

// Base quantities are authored for a seven-day trip; the scaler rescales them
// to the requested duration.
func smartListTemplates() []model.SmartListTemplate {
	return []model.SmartListTemplate{
		{
			ID:               "hawaii-beach-vacation",
			Name:             "Hawaii Beach Vacation",
			DestinationTag:   "hawaii",
			TripTypeTag:      "beach",
			SeasonTag:        "summer",
			BaseDurationDays: 7,
			Items: []model.CatalogItem{
				{Name: "Underwear", Category: model.CategoryClothes, Quantity: 8, Luggage: model.LuggageChecked},
				{Name: "T-Shirt", Category: model.CategoryClothes, Quantity: 5, Luggage: model.LuggageChecked},
				{Name: "Shorts", Category: model.CategoryClothes, Quantity: 3, Luggage: model.LuggageChecked},
				{Name: "Swimsuit", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageChecked},
				{Name: "Sandals", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Aloha Shirt", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageChecked},
				{Name: "Sunscreen", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Toothbrush", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "After-Sun Lotion", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Phone Charger", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Passport", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Sunglasses", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Beach Towel", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageChecked},
			},
		},
		{
			ID:               "business-trip-nyc",
			Name:             "Business Trip NYC",
			DestinationTag:   "new york",
			TripTypeTag:      "business",
			SeasonTag:        "all",
			BaseDurationDays: 7,
			Items: []model.CatalogItem{
				{Name: "Dress Shirt", Category: model.CategoryClothes, Quantity: 5, Luggage: model.LuggageCarryOn},
				{Name: "Suit", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Tie", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageCarryOn},
				{Name: "Dress Pants", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageCarryOn},
				{Name: "Dress Shoes", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Belt", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Underwear", Category: model.CategoryClothes, Quantity: 7, Luggage: model.LuggageCarryOn},
				{Name: "Dress Socks", Category: model.CategoryClothes, Quantity: 7, Luggage: model.LuggageCarryOn},
				{Name: "Razor", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Deodorant", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Laptop", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Laptop Charger", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Business Cards", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Notebook", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggagePersonal},
			},
		},
		{
			ID:               "winter-ski-trip",
			Name:             "Winter Ski Trip",
			DestinationTag:   "alps",
			TripTypeTag:      "ski",
			SeasonTag:        "winter",
			BaseDurationDays: 7,
			Items: []model.CatalogItem{
				{Name: "Ski Jacket", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Ski Pants", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Thermal Socks", Category: model.CategoryClothes, Quantity: 6, Luggage: model.LuggageChecked},
				{Name: "Base Layer Shirt", Category: model.CategoryClothes, Quantity: 4, Luggage: model.LuggageChecked},
				{Name: "Wool Sweater", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageChecked},
				{Name: "Underwear", Category: model.CategoryClothes, Quantity: 7, Luggage: model.LuggageChecked},
				{Name: "Gloves", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Beanie", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Lip Balm", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Moisturizer", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageChecked},
				{Name: "Ski Goggles", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageCarryOn},
				{Name: "Hand Warmers", Category: model.CategoryMiscellaneous, Quantity: 4, Luggage: model.LuggageChecked},
				{Name: "Phone Charger", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggageCarryOn},
			},
		},
		{
			ID:               "backpacking-europe",
			Name:             "Backpacking Europe",
			DestinationTag:   "europe",
			TripTypeTag:      "backpacking",
			SeasonTag:        "all",
			BaseDurationDays: 7,
			Items: []model.CatalogItem{
				{Name: "Underwear", Category: model.CategoryClothes, Quantity: 7, Luggage: model.LuggageBackpack},
				{Name: "Quick-Dry Shirt", Category: model.CategoryClothes, Quantity: 4, Luggage: model.LuggageBackpack},
				{Name: "Jeans", Category: model.CategoryClothes, Quantity: 2, Luggage: model.LuggageBackpack},
				{Name: "Hiking Socks", Category: model.CategoryClothes, Quantity: 5, Luggage: model.LuggageBackpack},
				{Name: "Rain Jacket", Category: model.CategoryClothes, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Travel Towel", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Padlock", Category: model.CategoryMiscellaneous, Quantity: 2, Luggage: model.LuggageBackpack},
				{Name: "Water Bottle", Category: model.CategoryMiscellaneous, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Shampoo Bar", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Toothbrush", Category: model.CategoryToiletries, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Power Adapter", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Phone Charger", Category: model.CategoryElectronics, Quantity: 1, Luggage: model.LuggageBackpack},
				{Name: "Passport", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggagePersonal},
				{Name: "Rail Pass", Category: model.CategoryDocuments, Quantity: 1, Luggage: model.LuggagePersonal},
			},
		},
	}
}
