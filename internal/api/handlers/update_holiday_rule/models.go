package update_holiday_rule

// SetActiveRequest HTTP request model: включение или отключение правила
type SetActiveRequest struct {
	Active bool `json:"active"`
}
