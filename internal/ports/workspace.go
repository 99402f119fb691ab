package ports

import "github.com/aalvaropc/shopcart/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
