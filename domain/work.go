package domain

// WorkRequest is the client payload for creating a work item.
type WorkRequest struct {
	Country           string `json:"country"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Due               string `json:"due,omitempty"`
	ChecklistTemplate string `json:"checklistTemplate,omitempty"`
}

// ChecklistRef summarizes the checklist attached to a created work item.
type ChecklistRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// WorkItem is the result of a successful work-item creation.
type WorkItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	URL       string        `json:"url"`
	Country   string        `json:"country"`
	Due       string        `json:"due,omitempty"`
	Checklist *ChecklistRef `json:"checklist"`
}
