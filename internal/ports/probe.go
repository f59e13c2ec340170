package ports

import (
	"context"

	"depaudit/internal/types"
)

type ProbePort interface {
	Check(ctx context.Context, url string, packageName string) types.ProbeOutcome
}
