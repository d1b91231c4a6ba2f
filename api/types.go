package api

import (
	"context"
	"net/http"

	"salesboard-api/domain"
)

// WorkCreator runs the work-item creation sequence for handlers.
type WorkCreator interface {
	CreateWorkItem(ctx context.Context, req domain.WorkRequest) (domain.WorkItem, error)
}

// BoardReader provides the read-only board snapshots the dashboard needs.
type BoardReader interface {
	ListLists(ctx context.Context, boardID string) ([]domain.BoardList, error)
	ListCards(ctx context.Context, boardID string) ([]domain.Card, error)
}

// Authenticator is implemented by types able to admit or reject a request
// based on its headers.
type Authenticator interface {
	Verify(h http.Header) error
}
