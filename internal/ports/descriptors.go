package ports

import "depaudit/internal/types"

type DescriptorSourcePort interface {
	ListFiles(dir string) ([]string, error)
	LoadDescriptor(path string) (types.Descriptor, error)
	LoadIndex(dir string) (types.Index, error)
}
