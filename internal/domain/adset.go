package domain

import "time"

// CampaignObjective é a família de objetivo de campanha exposta ao usuário.
// Cada objetivo restringe quais metas de otimização e campos de promoted_object
// são válidos na criação do conjunto de anúncios.
type CampaignObjective string

const (
	ObjectiveAwareness CampaignObjective = "awareness"
	ObjectiveLeads     CampaignObjective = "leads"
	ObjectiveSales     CampaignObjective = "sales"
	// ObjectiveDriven é o modo genérico em que o chamador informa diretamente
	// a meta de performance sem localização de conversão.
	ObjectiveDriven CampaignObjective = "objective_driven"
)

// ConversionLocation indica onde a conversão deve acontecer (fluxos Leads/Sales).
type ConversionLocation string

const (
	LocationInstantForms             ConversionLocation = "instant_forms"
	LocationInstantFormsAndMessenger ConversionLocation = "instant_forms_and_messenger"
	LocationWebsite                  ConversionLocation = "website"
	LocationWebsiteAndCalls          ConversionLocation = "website_and_calls"
	LocationWebsiteAndInstantForms   ConversionLocation = "website_and_instant_forms"
	LocationApp                      ConversionLocation = "app"
	LocationMessenger                ConversionLocation = "messenger"
	LocationInstagram                ConversionLocation = "instagram"
	LocationCalls                    ConversionLocation = "calls"
)

// PerformanceGoal é a meta de performance escolhida pelo usuário.
type PerformanceGoal string

const (
	GoalMaximizeLeads           PerformanceGoal = "maximize_leads"
	GoalCostPerLead             PerformanceGoal = "cost_per_lead"
	GoalMaximizeConversions     PerformanceGoal = "maximize_conversions"
	GoalCostPerConversion       PerformanceGoal = "cost_per_conversion"
	GoalMaximizeConversations   PerformanceGoal = "maximize_conversations"
	GoalCostPerConversation     PerformanceGoal = "cost_per_conversation"
	GoalMaximizeCalls           PerformanceGoal = "maximize_calls"
	GoalCostPerCall             PerformanceGoal = "cost_per_call"
	GoalMaximizeReach           PerformanceGoal = "maximize_reach"
	GoalMaximizeImpressions     PerformanceGoal = "maximize_impressions"
	GoalMaximizeLinkClicks      PerformanceGoal = "maximize_link_clicks"
	GoalMaximizeLandingPageView PerformanceGoal = "maximize_landing_page_views"
)

// OptimizationGoal é a meta de otimização específica da plataforma, resolvida
// a partir da localização de conversão e da meta de performance.
type OptimizationGoal string

const (
	OptimizationLeadGeneration     OptimizationGoal = "LEAD_GENERATION"
	OptimizationOffsiteConversions OptimizationGoal = "OFFSITE_CONVERSIONS"
	OptimizationConversions        OptimizationGoal = "CONVERSIONS"
	OptimizationConversations      OptimizationGoal = "CONVERSATIONS"
	OptimizationQualityCall        OptimizationGoal = "QUALITY_CALL"
	OptimizationReach              OptimizationGoal = "REACH"
	OptimizationImpressions        OptimizationGoal = "IMPRESSIONS"
	OptimizationLinkClicks         OptimizationGoal = "LINK_CLICKS"
	OptimizationLandingPageViews   OptimizationGoal = "LANDING_PAGE_VIEWS"
)

// BillingEvent é o evento de cobrança fixo por objetivo.
type BillingEvent string

const (
	BillingImpressions BillingEvent = "IMPRESSIONS"
	BillingLinkClicks  BillingEvent = "LINK_CLICKS"
)

// DestinationType é o tipo de destino exigido pela Meta para alguns fluxos.
type DestinationType string

const (
	DestinationOnAd      DestinationType = "ON_AD"
	DestinationWebsite   DestinationType = "WEBSITE"
	DestinationApp       DestinationType = "APP"
	DestinationMessenger DestinationType = "MESSENGER"
	DestinationInstagram DestinationType = "INSTAGRAM_DIRECT"
	DestinationPhoneCall DestinationType = "PHONE_CALL"
)

// BudgetType indica qual campo de orçamento o usuário escolheu.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily_budget"
	BudgetLifetime BudgetType = "lifetime_budget"
)

// BidStrategy é a estratégia de lance enviada à Meta.
type BidStrategy string

const (
	BidLowestCostWithoutCap BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidLowestCostWithCap    BidStrategy = "LOWEST_COST_WITH_BID_CAP"
	BidCostCap              BidStrategy = "COST_CAP"
)

// DetailedTargeting controla a segmentação por públicos personalizados.
type DetailedTargeting string

const (
	TargetingAll    DetailedTargeting = "all"
	TargetingCustom DetailedTargeting = "custom"
)

// AdSetParams é a requisição de criação de conjunto de anúncios recebida pela API.
// Campos opcionais usam ponteiros para distinguir ausência de valor zero.
type AdSetParams struct {
	AccountID          string             `json:"account_id"`
	CampaignID         string             `json:"campaign_id"`
	Name               string             `json:"name"`
	Objective          CampaignObjective  `json:"objective"`
	ConversionLocation ConversionLocation `json:"conversion_location,omitempty"`
	PerformanceGoal    PerformanceGoal    `json:"performance_goal,omitempty"`

	PageID          string `json:"page_id,omitempty"`
	PixelID         string `json:"pixel_id,omitempty"`
	ApplicationID   string `json:"application_id,omitempty"`
	CustomEventType string `json:"custom_event_type,omitempty"`

	Location          string            `json:"location,omitempty"`
	AgeMin            int               `json:"age_min,omitempty"`
	AgeMax            int               `json:"age_max,omitempty"`
	Gender            string            `json:"gender,omitempty"`
	DetailedTargeting DetailedTargeting `json:"detailed_targeting,omitempty"`
	CustomAudienceID  string            `json:"custom_audience_id,omitempty"`

	BudgetType        BudgetType  `json:"budget_type,omitempty"`
	DailyBudget       float64     `json:"daily_budget,omitempty"`
	LifetimeBudget    float64     `json:"lifetime_budget,omitempty"`
	StartTime         string      `json:"start_time,omitempty"`
	EndTime           string      `json:"end_time,omitempty"`
	BidStrategy       BidStrategy `json:"bid_strategy,omitempty"`
	BidAmount         float64     `json:"bid_amount,omitempty"`
	CostPerResultGoal float64     `json:"cost_per_result_goal,omitempty"`

	Status string `json:"status,omitempty"`
}

// GeoLocations limita a entrega geográfica. Countries omitido significa
// entrega mundial, sem restrição.
type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

// TargetingSpec é o documento de segmentação enviado à Meta.
type TargetingSpec struct {
	GeoLocations    *GeoLocations `json:"geo_locations,omitempty"`
	AgeMin          int           `json:"age_min,omitempty"`
	AgeMax          int           `json:"age_max,omitempty"`
	Genders         []int         `json:"genders,omitempty"`
	CustomAudiences []string      `json:"custom_audiences,omitempty"`
}

// PromotedObject identifica o que está sendo anunciado. Mapa esparso:
// apenas chaves presentes entram no documento.
type PromotedObject map[string]string

// BudgetBidSpec é o resultado da normalização de orçamento e lance.
type BudgetBidSpec struct {
	DailyBudget    string
	LifetimeBudget string
	StartTime      string
	EndTime        string
	BidStrategy    BidStrategy
	BidAmount      string
}

// AdSetResult é a resposta de sucesso da criação de conjunto de anúncios.
type AdSetResult struct {
	ID               string           `json:"id"`
	AccountID        string           `json:"account_id"`
	CampaignID       string           `json:"campaign_id"`
	Name             string           `json:"name"`
	OptimizationGoal OptimizationGoal `json:"optimization_goal"`
}

// AdSetRecord é o registro de auditoria de um conjunto criado pela API.
type AdSetRecord struct {
	ID               string    `json:"id"`
	ExternalID       string    `json:"external_id"`
	AccountID        string    `json:"account_id"`
	CampaignID       string    `json:"campaign_id"`
	Name             string    `json:"name"`
	OptimizationGoal string    `json:"optimization_goal"`
	BillingEvent     string    `json:"billing_event"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
