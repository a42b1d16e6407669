// Package record normalizes one decoded session log line into a (role, text)
// pair. Codex and Claude Code write JSONL with different shapes — the chat
// payload may sit behind a "payload" envelope, directly at the top level, or
// one level down inside a "message" object — and this package tolerates all
// of them.
package record

import "strings"

// Message is the normalized view of one session log line. Role is "user",
// "assistant", or empty when the line carries no recognizable role.
type Message struct {
	Role string
	Text string
}

// Extract pulls the role and text out of a decoded JSONL object.
//
// Codex rollouts wrap the chat payload in a "payload" envelope; Claude Code
// puts role/content at the top level. In either scope, when "role" is absent
// the same fields are read from a nested "message" object instead.
func Extract(obj map[string]any) Message {
	scope := obj
	if payload, ok := obj["payload"].(map[string]any); ok {
		scope = payload
	}

	role, _ := scope["role"].(string)
	content := scope["content"]
	if role == "" {
		if msg, ok := scope["message"].(map[string]any); ok {
			role, _ = msg["role"].(string)
			content = msg["content"]
		}
	}

	return Message{Role: role, Text: textOf(content)}
}

// textOf flattens content into plain text. Content is either a string, an
// ordered list of blocks, or a single block object; anything else yields "".
func textOf(content any) string {
	switch c := content.(type) {
	case string:
		return c
	case []any:
		var parts []string
		for _, item := range c {
			block, ok := item.(map[string]any)
			if !ok {
				continue
			}
			// First match wins per block: "text", then "content".
			if text, ok := block["text"].(string); ok {
				parts = append(parts, text)
			} else if text, ok := block["content"].(string); ok {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		// Unlike the list case, a single block contributes both keys
		// when both are strings. Kept for compatibility with provider
		// output already on disk.
		var parts []string
		for _, key := range []string{"text", "content"} {
			if text, ok := c[key].(string); ok {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "\n")
	default:
		return ""
	}
}
