package catalog

import "github.com/packsmart/packsmart-service/internal/domain/model"

func achievementTable() []model.Achievement {
	return []model.Achievement{
		{ID: "first-trip", Name: "First Trip", Description: "Create your first trip", Event: model.EventTripCreated, Threshold: 1, BonusXP: 50},
		{ID: "globetrotter", Name: "Globetrotter", Description: "Create ten trips", Event: model.EventTripCreated, Threshold: 10, BonusXP: 200},
		{ID: "list-builder", Name: "List Builder", Description: "Import your first smart list", Event: model.EventTemplateImported, Threshold: 1, BonusXP: 25},
		{ID: "template-pro", Name: "Template Pro", Description: "Import ten smart lists", Event: model.EventTemplateImported, Threshold: 10, BonusXP: 150},
		{ID: "packer", Name: "Packer", Description: "Pack fifty items", Event: model.EventItemPacked, Threshold: 50, BonusXP: 100},
		{ID: "packing-machine", Name: "Packing Machine", Description: "Pack five hundred items", Event: model.EventItemPacked, Threshold: 500, BonusXP: 500},
		{ID: "ready-to-go", Name: "Ready to Go", Description: "Fully pack a trip", Event: model.EventTripFullyPacked, Threshold: 1, BonusXP: 75},
		{ID: "always-ready", Name: "Always Ready", Description: "Fully pack twenty trips", Event: model.EventTripFullyPacked, Threshold: 20, BonusXP: 300},
	}
}
