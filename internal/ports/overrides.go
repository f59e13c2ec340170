package ports

import "depaudit/internal/policies"

type OverridesPort interface {
	Load(path string) (policies.Overrides, error)
}
