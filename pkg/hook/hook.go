// Package hook implements the SessionStart hook pipeline: drain stdin, scan
// the agents directory, build the subagent catalog and emit one JSON result
// line. The pipeline never fails from the host's point of view; any error or
// panic downgrades to the bare continuation signal.
package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gykk16/air-claudecode/pkg/agents"
	"github.com/gykk16/air-claudecode/pkg/logger"
)

// fallbackLine is emitted if even the result marshal goes wrong.
const fallbackLine = `{"continue":true}`

// SessionStart runs the discovery pipeline against the project root and
// writes exactly one JSON line to out. Stdin must be fully consumed before
// output is produced; that is part of the host's handshake contract.
func SessionStart(ctx context.Context, in io.Reader, out io.Writer, root string) {
	emit(out, runSessionStart(ctx, in, root))
}

// runSessionStart performs the single linear pass over the pipeline stages.
// Errors are handled exactly once, here: every failure path collapses to the
// bare continuation result. There is no user-visible error channel.
func runSessionStart(ctx context.Context, in io.Reader, root string) (result Result) {
	result = Result{Continue: true}

	defer func() {
		if r := recover(); r != nil {
			logger.G(ctx).WithField("panic", r).Error("session-start pipeline panicked")
			result = Result{Continue: true}
		}
	}()

	if err := drain(ctx, in); err != nil {
		logger.G(ctx).WithError(err).Warn("failed to drain hook payload")
		return result
	}

	dir, err := agents.ResolveDir(root)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to resolve agents directory")
		return result
	}

	descriptors, err := agents.NewScanner(dir).Scan(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to scan agent descriptors")
		return result
	}

	catalog := agents.BuildCatalog(descriptors)
	if len(catalog) == 0 {
		return result
	}

	msg, err := agents.RenderMessage(catalog, dir)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to render session-start message")
		return result
	}

	result.Message = msg
	return result
}

// drain consumes all of stdin before any output is produced. The content is
// not needed for correctness, but when it parses as a session-start payload
// the session details are logged for debugging.
func drain(ctx context.Context, in io.Reader) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read hook input")
	}

	var payload SessionStartPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"session_id": payload.SessionID,
		"cwd":        payload.CWD,
		"event":      payload.HookEventName,
	}).Debug("session start")
	return nil
}

// emit writes the result as a single JSON line. Marshalling a Result cannot
// realistically fail, but the hook must never produce malformed output, so a
// literal fallback covers that path too.
func emit(out io.Writer, result Result) {
	line, err := json.Marshal(result)
	if err != nil {
		line = []byte(fallbackLine)
	}
	fmt.Fprintln(out, string(line))
}
