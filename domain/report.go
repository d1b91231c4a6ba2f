package domain

// ReportCard is a card normalized for the dashboard report, with its
// country resolved from the owning list.
type ReportCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Country     string `json:"country"`
	Due         string `json:"due,omitempty"`
	DueComplete bool   `json:"dueComplete"`
	IsOverdue   bool   `json:"isOverdue"`
}

// Report groups open cards by due-date horizon.
type Report struct {
	Overdue     []ReportCard `json:"overdue"`
	DueToday    []ReportCard `json:"dueToday"`
	Next7Days   []ReportCard `json:"next7Days"`
	GeneratedAt string       `json:"generatedAt"`
}
