package request

// TimelineRequest пустые поля заменяются значениями из конфигурации
type TimelineRequest struct {
	QuarterStart string `json:"quarter_start"`
	Weeks        string `json:"weeks"`
}
