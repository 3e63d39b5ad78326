package adsetting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

func TestBuildTargeting(t *testing.T) {
	tests := []struct {
		name     string
		params   *domain.AdSetParams
		validate func(t *testing.T, spec *domain.TargetingSpec)
	}{
		{
			name:   "Entrega mundial omite os países",
			params: &domain.AdSetParams{Location: "worldwide"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Nil(t, spec.GeoLocations)
			},
		},
		{
			name:   "Localização vazia também significa entrega mundial",
			params: &domain.AdSetParams{},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Nil(t, spec.GeoLocations)
			},
		},
		{
			name:   "Grupo regional expande para a lista de países",
			params: &domain.AdSetParams{Location: "asean"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []string{"BN", "KH", "ID", "LA", "MM", "MY", "PH", "SG", "TH", "VN"}, spec.GeoLocations.Countries)
			},
		},
		{
			name:   "Nome de país conhecido resolve para o código ISO",
			params: &domain.AdSetParams{Location: "Philippines"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []string{"PH"}, spec.GeoLocations.Countries)
			},
		},
		{
			name:   "Código ISO de dois caracteres passa direto",
			params: &domain.AdSetParams{Location: "br"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []string{"BR"}, spec.GeoLocations.Countries)
			},
		},
		{
			name:   "Localização desconhecida cai no país padrão",
			params: &domain.AdSetParams{Location: "atlantis"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []string{"PH"}, spec.GeoLocations.Countries)
			},
		},
		{
			name:   "Idades dentro da faixa são mantidas",
			params: &domain.AdSetParams{AgeMin: 18, AgeMax: 45},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, 18, spec.AgeMin)
				assert.Equal(t, 45, spec.AgeMax)
			},
		},
		{
			name:   "Idades fora da faixa são descartadas em silêncio",
			params: &domain.AdSetParams{AgeMin: 10, AgeMax: 90},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Zero(t, spec.AgeMin)
				assert.Zero(t, spec.AgeMax)
			},
		},
		{
			name:   "Faixa etária invertida é descartada por inteiro",
			params: &domain.AdSetParams{AgeMin: 60, AgeMax: 20},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Zero(t, spec.AgeMin)
				assert.Zero(t, spec.AgeMax)
			},
		},
		{
			name:   "Idade mínima sem máxima é mantida",
			params: &domain.AdSetParams{AgeMin: 60},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, 60, spec.AgeMin)
				assert.Zero(t, spec.AgeMax)
			},
		},
		{
			name:   "Gênero masculino resolve para o código 1",
			params: &domain.AdSetParams{Gender: "male"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []int{1}, spec.Genders)
			},
		},
		{
			name:   "Gênero feminino resolve para o código 2",
			params: &domain.AdSetParams{Gender: "female"},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []int{2}, spec.Genders)
			},
		},
		{
			name:   "Gênero não informado entrega para todos",
			params: &domain.AdSetParams{},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []int{1, 2}, spec.Genders)
			},
		},
		{
			name: "Público personalizado entra apenas no modo custom",
			params: &domain.AdSetParams{
				DetailedTargeting: domain.TargetingCustom,
				CustomAudienceID:  "23851234567890123",
			},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Equal(t, []string{"23851234567890123"}, spec.CustomAudiences)
			},
		},
		{
			name: "Público personalizado é ignorado no modo all",
			params: &domain.AdSetParams{
				DetailedTargeting: domain.TargetingAll,
				CustomAudienceID:  "23851234567890123",
			},
			validate: func(t *testing.T, spec *domain.TargetingSpec) {
				assert.Nil(t, spec.CustomAudiences)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildTargeting(tt.params))
		})
	}
}

// Chamadas repetidas com os mesmos parâmetros produzem documentos iguais.
func TestBuildTargetingDeterministic(t *testing.T) {
	params := &domain.AdSetParams{
		Location:          "asean",
		AgeMin:            21,
		AgeMax:            55,
		Gender:            "female",
		DetailedTargeting: domain.TargetingCustom,
		CustomAudienceID:  "987654",
	}

	first := BuildTargeting(params)
	second := BuildTargeting(params)

	assert.Equal(t, first, second)
}
