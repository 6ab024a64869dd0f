package texts

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed snippets
var fs embed.FS

var rePlaceholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ITexts serves the user-facing message snippets.
type ITexts interface {
	Get(id string) (string, error)
	WithVals(id string, vals map[string]string) (string, error)
}

func NewTexts() ITexts {
	return &texts{}
}

type texts struct {
}

func (t *texts) Get(id string) (string, error) {
	bytes, err := fs.ReadFile("snippets/" + id)
	if err != nil {
		return "", fmt.Errorf("snippet %s not found", id)
	}
	return string(bytes), nil
}

// WithVals fills every {{name}} placeholder in the snippet.
// A placeholder with no value in vals is an error; values are inserted verbatim.
func (t *texts) WithVals(id string, vals map[string]string) (string, error) {
	tmpl, err := t.Get(id)
	if err != nil {
		return "", err
	}
	for _, m := range rePlaceholder.FindAllStringSubmatch(tmpl, -1) {
		if _, ok := vals[m[1]]; !ok {
			return "", fmt.Errorf("snippet %s: no value for {{%s}}", id, m[1])
		}
	}
	// Single pass so that values containing braces are left alone
	res := rePlaceholder.ReplaceAllStringFunc(tmpl, func(ph string) string {
		return vals[strings.Trim(ph, "{}")]
	})
	return res, nil
}
