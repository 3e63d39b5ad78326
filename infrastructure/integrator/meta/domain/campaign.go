package metadomain

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective,omitempty"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	BidStrategy    string `json:"bid_strategy,omitempty"`
}

// HasCampaignBudget indica se a campanha carrega orçamento próprio (CBO).
// Quando verdadeiro, nenhum campo de orçamento deve ser enviado no nível do
// conjunto de anúncios.
func (c *Campaign) HasCampaignBudget() bool {
	return c.DailyBudget != "" || c.LifetimeBudget != ""
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// CampaignBudgetState é o recorte da campanha consumido pelo normalizador de
// orçamento do conjunto de anúncios.
type CampaignBudgetState struct {
	CampaignID string `json:"campaign_id"`
	CBOEnabled bool   `json:"cbo_enabled"`
}

// CreateAdSetResponse é a resposta de sucesso da criação de um conjunto.
type CreateAdSetResponse struct {
	ID string `json:"id"`
}
