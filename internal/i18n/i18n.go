// Package i18n provides internationalization support for the packing service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,es;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.unauthorized":             "Unauthorized",
			"error.invalid_credentials":      "Invalid email or password",
			"error.api_key_required":         "API key is required",
			"error.invalid_api_key":          "Invalid API key",
			"error.forbidden":                "Forbidden",
			"error.tier_required":            "This feature requires a higher subscription tier",
			"error.not_found":                "Not found",
			"error.trip_not_found":           "Trip not found",
			"error.item_not_found":           "Packing item not found",
			"error.template_not_found":       "Packing template not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.conflict":                 "Conflict",
			"error.validation.duration_days": "duration_days: must be a positive integer",
			"error.validation.style":         "style: must be one of light, balanced, thorough",
			"error.invalid_token":            "Invalid or expired token",
			"error.token_required":           "Authentication token is required",
			"error.timeout":                  "Request timed out",

			"success.template_scaled":  "Packing list generated successfully",
			"success.weight_estimated": "Luggage weight estimated successfully",
		},
		"es": {
			"error.invalid_request":          "Solicitud inválida",
			"error.invalid_request_body":     "Cuerpo de la solicitud inválido",
			"error.internal_error":           "Ocurrió un error inesperado",
			"error.unauthorized":             "No autorizado",
			"error.invalid_credentials":      "Correo o contraseña inválidos",
			"error.api_key_required":         "Se requiere clave de API",
			"error.invalid_api_key":          "Clave de API inválida",
			"error.forbidden":                "Prohibido",
			"error.tier_required":            "Esta función requiere un nivel de suscripción superior",
			"error.not_found":                "No encontrado",
			"error.trip_not_found":           "Viaje no encontrado",
			"error.item_not_found":           "Artículo de equipaje no encontrado",
			"error.template_not_found":       "Plantilla de equipaje no encontrada",
			"error.rate_limit_exceeded":      "Demasiadas solicitudes, inténtelo de nuevo más tarde",
			"error.conflict":                 "Conflicto",
			"error.validation.duration_days": "duration_days: debe ser un entero positivo",
			"error.validation.style":         "style: debe ser light, balanced o thorough",
			"error.invalid_token":            "Token inválido o expirado",
			"error.token_required":           "Se requiere token de autenticación",
			"error.timeout":                  "La solicitud expiró",

			"success.template_scaled":  "Lista de equipaje generada con éxito",
			"success.weight_estimated": "Peso del equipaje estimado con éxito",
		},
		"de": {
			"error.invalid_request":          "Ungültige Anfrage",
			"error.invalid_request_body":     "Ungültiger Anfrageinhalt",
			"error.internal_error":           "Ein unerwarteter Fehler ist aufgetreten",
			"error.unauthorized":             "Nicht autorisiert",
			"error.invalid_credentials":      "Ungültige E-Mail oder Passwort",
			"error.api_key_required":         "API-Schlüssel ist erforderlich",
			"error.invalid_api_key":          "Ungültiger API-Schlüssel",
			"error.forbidden":                "Verboten",
			"error.tier_required":            "Diese Funktion erfordert eine höhere Abo-Stufe",
			"error.not_found":                "Nicht gefunden",
			"error.trip_not_found":           "Reise nicht gefunden",
			"error.item_not_found":           "Gepäckstück nicht gefunden",
			"error.template_not_found":       "Packvorlage nicht gefunden",
			"error.rate_limit_exceeded":      "Zu viele Anfragen, bitte später erneut versuchen",
			"error.conflict":                 "Konflikt",
			"error.validation.duration_days": "duration_days: muss eine positive Ganzzahl sein",
			"error.validation.style":         "style: muss light, balanced oder thorough sein",
			"error.invalid_token":            "Ungültiges oder abgelaufenes Token",
			"error.token_required":           "Authentifizierungstoken ist erforderlich",
			"error.timeout":                  "Zeitüberschreitung der Anfrage",

			"success.template_scaled":  "Packliste erfolgreich erstellt",
			"success.weight_estimated": "Gepäckgewicht erfolgreich geschätzt",
		},
	}
}
