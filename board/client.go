package board

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"salesboard-api/domain"
)

// DefaultBaseURL points at the Trello REST API.
const DefaultBaseURL = "https://api.trello.com/1"

// ErrNotConfigured is returned before any network call when the client has
// no API credentials.
var ErrNotConfigured = errors.New("board api credentials not configured")

// APIError is a non-success response from the board API. The orchestration
// layer surfaces its status code and body verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("board api: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to a Trello-compatible board REST API. All calls authenticate
// with key/token query credentials. The client performs no retries; request
// deadlines come from the underlying http.Client timeout and the caller's
// context.
type Client struct {
	baseURL string
	key     string
	token   string
	httpc   *http.Client
}

// NewClient creates a board API client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL, key, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// ListLists fetches the named lists of the given board.
func (c *Client) ListLists(ctx context.Context, boardID string) ([]domain.BoardList, error) {
	var lists []domain.BoardList
	q := url.Values{"fields": {"name"}}
	if err := c.call(ctx, http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/lists", q, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// ListCards fetches the open cards of the given board with the fields the
// dashboard needs.
func (c *Client) ListCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	var cards []domain.Card
	q := url.Values{"fields": {"name,due,dueComplete,idList,url"}}
	if err := c.call(ctx, http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/cards", q, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

type createCardRequest struct {
	ListID      string `json:"idList"`
	Name        string `json:"name"`
	Description string `json:"desc,omitempty"`
	Due         string `json:"due,omitempty"`
}

// CreateCard creates a card in the given list. Once this returns without
// error the card exists on the board regardless of what the caller does
// next.
func (c *Client) CreateCard(ctx context.Context, listID, name, description, due string) (domain.Card, error) {
	var card domain.Card
	body := createCardRequest{ListID: listID, Name: name, Description: description, Due: due}
	if err := c.call(ctx, http.MethodPost, "/cards", nil, body, &card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// CreateChecklist attaches a new empty checklist to the given card.
func (c *Client) CreateChecklist(ctx context.Context, cardID, name string) (domain.Checklist, error) {
	var checklist domain.Checklist
	q := url.Values{"name": {name}}
	if err := c.call(ctx, http.MethodPost, "/cards/"+url.PathEscape(cardID)+"/checklists", q, nil, &checklist); err != nil {
		return domain.Checklist{}, err
	}
	return checklist, nil
}

// AddChecklistItem appends one item to the given checklist.
func (c *Client) AddChecklistItem(ctx context.Context, checklistID, text string) error {
	q := url.Values{"name": {text}}
	return c.call(ctx, http.MethodPost, "/checklists/"+url.PathEscape(checklistID)+"/checkItems", q, nil, nil)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.key == "" || c.token == "" {
		return ErrNotConfigured
	}

	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", c.key)
	q.Set("token", c.token)

	var reader io.Reader
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+q.Encode(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return sonic.Unmarshal(data, out)
}
