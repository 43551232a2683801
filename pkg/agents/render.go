package agents

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// messageTemplate is the instructional text handed to the host at session
// start. It tells the model which subagents exist and how to delegate to one.
const messageTemplate = `You have the following project subagents available:

{{.Listing}}

Subagent descriptor files live in {{.Dir}}. To delegate work to a subagent, read its descriptor file for the full prompt and constraints, then launch a Task whose prompt references the agent by name.`

var messageTmpl = template.Must(template.New("session-start").Parse(messageTemplate))

// RenderMessage renders the catalog into the session-start message. One line
// per manifest, in catalog order, plus the discovery directory path.
func RenderMessage(catalog []Manifest, dir string) (string, error) {
	lines := make([]string, 0, len(catalog))
	for _, m := range catalog {
		lines = append(lines, fmt.Sprintf("- **%s** (%s): %s", m.Name, m.Model, m.Description))
	}

	var sb strings.Builder
	err := messageTmpl.Execute(&sb, struct {
		Listing string
		Dir     string
	}{
		Listing: strings.Join(lines, "\n"),
		Dir:     dir,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to render session-start message")
	}
	return sb.String(), nil
}
