package domain

// BoardList is a named column on the external board. One list per country.
type BoardList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Card is a work item record owned by the external board.
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	ListID      string `json:"idList"`
	Due         string `json:"due,omitempty"`
	DueComplete bool   `json:"dueComplete,omitempty"`
}

// Checklist is an ordered set of checkable items attached to a card.
type Checklist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
