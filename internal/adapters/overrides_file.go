package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"depaudit/internal/policies"
	"depaudit/internal/ports"
)

// overridesDocument is the on-disk form of the exception tables.
type overridesDocument struct {
	TeapotOK         []string          `yaml:"teapot_ok"`
	FilenameVariable map[string]string `yaml:"filename_variable"`
}

type OverridesFileAdapter struct{}

func NewOverridesFileAdapter() OverridesFileAdapter {
	return OverridesFileAdapter{}
}

// Load returns the built-in overrides extended with the entries from
// path. An empty path means defaults only.
func (a OverridesFileAdapter) Load(path string) (policies.Overrides, error) {
	defaults := policies.DefaultOverrides()
	if strings.TrimSpace(path) == "" {
		return defaults, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return policies.Overrides{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("overrides file not found").
			WithCause(err)
	}
	var doc overridesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return policies.Overrides{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse overrides yaml").
			WithCause(err)
	}
	extra := policies.Overrides{
		TeapotOK:         map[string]struct{}{},
		FilenameVariable: doc.FilenameVariable,
	}
	for _, name := range doc.TeapotOK {
		extra.TeapotOK[name] = struct{}{}
	}
	return defaults.Merge(extra), nil
}

var _ ports.OverridesPort = OverridesFileAdapter{}
