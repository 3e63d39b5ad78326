package adsetting

import (
	"strings"

	"github.com/vfg2006/adset-builder-api/internal/domain"
)

const (
	// LocationWorldwide entrega sem restrição geográfica.
	LocationWorldwide = "worldwide"

	// defaultCountry é o país aplicado quando a localização informada não é
	// reconhecida. Fallback silencioso e intencional: preferimos entregar no
	// mercado principal a recusar a criação do conjunto.
	defaultCountry = "PH"

	ageLowerBound = 13
	ageUpperBound = 65
)

// regionalGroups expande códigos de grupos regionais para seus países.
var regionalGroups = map[string][]string{
	"asean": {"BN", "KH", "ID", "LA", "MM", "MY", "PH", "SG", "TH", "VN"},
	"apac":  {"AU", "HK", "ID", "JP", "KR", "MY", "NZ", "PH", "SG", "TH", "TW", "VN"},
	"gcc":   {"AE", "BH", "KW", "OM", "QA", "SA"},
}

// countryAliases mapeia nomes de países aceitos na API para códigos ISO-3166-1.
var countryAliases = map[string]string{
	"philippines":    "PH",
	"singapore":      "SG",
	"malaysia":       "MY",
	"indonesia":      "ID",
	"thailand":       "TH",
	"vietnam":        "VN",
	"brazil":         "BR",
	"united_states":  "US",
	"united_kingdom": "GB",
	"australia":      "AU",
	"japan":          "JP",
	"india":          "IN",
}

// genderCodes converte o valor exposto na API para os códigos da plataforma.
// Qualquer outro valor entrega para todos os gêneros.
var genderCodes = map[string][]int{
	"male":   {1},
	"female": {2},
	"all":    {1, 2},
}

// BuildTargeting monta o documento de segmentação a partir dos parâmetros do
// usuário. Função pura: duas chamadas com os mesmos parâmetros produzem
// documentos estruturalmente idênticos.
func BuildTargeting(params *domain.AdSetParams) *domain.TargetingSpec {
	spec := &domain.TargetingSpec{
		Genders: resolveGenders(params.Gender),
	}

	if countries := resolveCountries(params.Location); countries != nil {
		spec.GeoLocations = &domain.GeoLocations{Countries: countries}
	}

	// Idades fora da faixa aceita pela plataforma são descartadas em silêncio,
	// sem clamp. Comportamento herdado, pendente de confirmação de produto.
	// Um par invertido (age_min > age_max) é descartado por inteiro.
	if params.AgeMax == 0 || params.AgeMin <= params.AgeMax {
		if params.AgeMin >= ageLowerBound && params.AgeMin <= ageUpperBound {
			spec.AgeMin = params.AgeMin
		}
		if params.AgeMax >= ageLowerBound && params.AgeMax <= ageUpperBound {
			spec.AgeMax = params.AgeMax
		}
	}

	if params.DetailedTargeting == domain.TargetingCustom && params.CustomAudienceID != "" {
		spec.CustomAudiences = []string{params.CustomAudienceID}
	}

	return spec
}

// resolveCountries expande a localização para a lista de países. Retorna nil
// para entrega mundial, caso em que geo_locations.countries é omitido.
func resolveCountries(location string) []string {
	normalized := strings.ToLower(strings.TrimSpace(location))

	if normalized == "" || normalized == LocationWorldwide {
		return nil
	}

	if group, ok := regionalGroups[normalized]; ok {
		countries := make([]string, len(group))
		copy(countries, group)
		return countries
	}

	if code, ok := countryAliases[normalized]; ok {
		return []string{code}
	}

	// Códigos ISO de dois caracteres passam direto.
	if len(normalized) == 2 {
		return []string{strings.ToUpper(normalized)}
	}

	return []string{defaultCountry}
}

func resolveGenders(gender string) []int {
	if codes, ok := genderCodes[strings.ToLower(strings.TrimSpace(gender))]; ok {
		out := make([]int, len(codes))
		copy(out, codes)
		return out
	}

	return []int{1, 2}
}
