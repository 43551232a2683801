package hook

// SessionStartPayload is the JSON document the host writes to the hook's
// stdin on session start. The hook's behavior does not depend on any of these
// fields; they are decoded on a best-effort basis for debug logging only.
type SessionStartPayload struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
}

// Result is the single JSON line a hook writes to stdout. Continue is always
// true; Message carries the rendered subagent catalog when one exists.
type Result struct {
	Continue bool   `json:"continue"`
	Message  string `json:"message,omitempty"`
}
