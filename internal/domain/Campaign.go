package domain

type Campaign struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Objective  string `json:"objective,omitempty"`
	CBOEnabled bool   `json:"cbo_enabled"`
}
