package ports

import "github.com/aalvaropc/shopcart/internal/domain"

// SessionLoader loads session scripts from a source (e.g., filesystem).
type SessionLoader interface {
	LoadSession(path string) (domain.Session, error)
	ListSessions(root string) ([]domain.SessionRef, error)
}
