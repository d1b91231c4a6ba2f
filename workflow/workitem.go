package workflow

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"salesboard-api/catalog"
	"salesboard-api/domain"
)

// checklistName is the fixed label given to every generated checklist.
const checklistName = "Checklist"

// Board is the external board API as seen by the orchestrator.
type Board interface {
	ListLists(ctx context.Context, boardID string) ([]domain.BoardList, error)
	CreateCard(ctx context.Context, listID, name, description, due string) (domain.Card, error)
	CreateChecklist(ctx context.Context, cardID, name string) (domain.Checklist, error)
	AddChecklistItem(ctx context.Context, checklistID, text string) error
}

// Creator runs the work-item creation sequence: validate, canonicalize the
// country, resolve a checklist template, find the destination list, create
// the card and populate its checklist. Each run is a strict sequential chain
// of board calls with no retries; a created card is never rolled back when a
// later step fails.
type Creator struct {
	board      Board
	boardID    string
	classifier *catalog.Classifier
	registry   *catalog.Registry
	logger     *log.Logger
}

// NewCreator wires a Creator. It fails when the registry does not cover
// every template id the classifier can produce, so a rule pointing at a
// missing template cannot ship.
func NewCreator(b Board, boardID string, classifier *catalog.Classifier, registry *catalog.Registry, logger *log.Logger) (*Creator, error) {
	if err := registry.Covers(classifier); err != nil {
		return nil, err
	}
	return &Creator{
		board:      b,
		boardID:    boardID,
		classifier: classifier,
		registry:   registry,
		logger:     logger,
	}, nil
}

// CreateWorkItem creates a card for the request and, when a checklist
// template applies, a checklist populated in template order.
func (c *Creator) CreateWorkItem(ctx context.Context, req domain.WorkRequest) (domain.WorkItem, error) {
	title := strings.TrimSpace(req.Title)
	country := catalog.Canonicalize(req.Country)
	if country == "" {
		return domain.WorkItem{}, &ValidationError{Field: "country"}
	}
	if title == "" {
		return domain.WorkItem{}, &ValidationError{Field: "title"}
	}
	if c.boardID == "" {
		return domain.WorkItem{}, ErrBoardNotConfigured
	}

	templateID, items, tmplErr := c.resolveTemplate(req.ChecklistTemplate, title)
	if tmplErr != nil {
		return domain.WorkItem{}, tmplErr
	}

	lists, err := c.board.ListLists(ctx, c.boardID)
	if err != nil {
		return domain.WorkItem{}, fmt.Errorf("list board lists: %w", err)
	}
	list, ok := matchList(lists, country)
	if !ok {
		return domain.WorkItem{}, &UnknownCountryError{Country: country, Suggestions: listNames(lists)}
	}

	card, err := c.board.CreateCard(ctx, list.ID, title, strings.TrimSpace(req.Description), req.Due)
	if err != nil {
		return domain.WorkItem{}, fmt.Errorf("create card: %w", err)
	}
	// From here on the card exists on the board. Later failures surface to
	// the caller but do not undo it.

	result := domain.WorkItem{
		ID:      card.ID,
		Name:    card.Name,
		URL:     card.URL,
		Country: country,
		Due:     card.Due,
	}

	if templateID != "" {
		checklist, err := c.board.CreateChecklist(ctx, card.ID, checklistName)
		if err != nil {
			c.warnPartial(card.ID, templateID, 0, err)
			return domain.WorkItem{}, fmt.Errorf("create checklist: %w", err)
		}
		for i, item := range items {
			if err := c.board.AddChecklistItem(ctx, checklist.ID, item); err != nil {
				c.warnPartial(card.ID, templateID, i, err)
				return domain.WorkItem{}, fmt.Errorf("add checklist item %d: %w", i+1, err)
			}
		}
		result.Checklist = &domain.ChecklistRef{
			ID:       checklist.ID,
			Name:     checklist.Name,
			Template: string(templateID),
		}
	}

	if c.logger != nil {
		c.logger.WithFields(log.Fields{
			"card_id":  card.ID,
			"country":  country,
			"template": string(templateID),
		}).Debug("work item created")
	}
	return result, nil
}

// resolveTemplate picks the checklist template for the request. An explicit
// client id must exist in the registry; without one the classifier decides.
// A classifier id missing from the registry means the card gets no
// checklist, matching the registry coverage the constructor enforced.
func (c *Creator) resolveTemplate(explicit, title string) (catalog.TemplateID, []string, error) {
	if explicit != "" {
		id := catalog.TemplateID(explicit)
		items, ok := c.registry.Lookup(id)
		if !ok {
			return "", nil, &UnknownTemplateError{Requested: explicit, Available: c.registry.IDs()}
		}
		return id, items, nil
	}

	id := c.classifier.Classify(title)
	items, ok := c.registry.Lookup(id)
	if !ok {
		if c.logger != nil {
			c.logger.WithField("template", string(id)).Warn("classified template missing from registry; skipping checklist")
		}
		return "", nil, nil
	}
	return id, items, nil
}

func (c *Creator) warnPartial(cardID string, templateID catalog.TemplateID, itemsAdded int, err error) {
	if c.logger == nil {
		return
	}
	c.logger.WithFields(log.Fields{
		"card_id":     cardID,
		"template":    string(templateID),
		"items_added": itemsAdded,
		"error":       err.Error(),
	}).Warn("card created but checklist incomplete")
}

func matchList(lists []domain.BoardList, country string) (domain.BoardList, bool) {
	for _, l := range lists {
		if strings.EqualFold(l.Name, country) {
			return l, true
		}
	}
	return domain.BoardList{}, false
}

func listNames(lists []domain.BoardList) []string {
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = l.Name
	}
	return names
}
