package adsetting

import (
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

// BuildPromotedObject monta o documento promoted_object como mapa esparso:
// apenas campos presentes são incluídos. A validação de obrigatoriedade é
// responsabilidade do Validator, não deste montador.
func BuildPromotedObject(pageID, pixelID, applicationID, customEventType string) domain.PromotedObject {
	object := domain.PromotedObject{}

	if pageID != "" {
		object["page_id"] = pageID
	}
	if pixelID != "" {
		object["pixel_id"] = pixelID
	}
	if applicationID != "" {
		object["application_id"] = applicationID
	}
	if customEventType != "" {
		object["custom_event_type"] = customEventType
	}

	return object
}
