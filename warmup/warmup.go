// Package warmup decides whether a session file contains nothing but an
// automated warmup exchange. Codex builds fire off throwaway sessions that
// hold a single environment-context "user" message and at most one short
// assistant acknowledgement; those are safe to discard.
package warmup

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/sonnes/yamadoot/record"
)

// maxLineSize is the maximum JSONL line size (1 MB). Tool results can exceed
// the default 64 KB bufio.Scanner buffer.
const maxLineSize = 1 << 20

// Stats counts the message roles seen while scanning a session file.
type Stats struct {
	UserMessages       int
	AssistantMessages  int
	NonEnvUserMessages int
}

// IsWarmup reports the final verdict for a fully or partially scanned session.
// A warmup session has at least one user message, no user message beyond
// environment-context boilerplate, and at most one assistant acknowledgement.
func (s Stats) IsWarmup() bool {
	if s.UserMessages == 0 {
		return false
	}
	if s.NonEnvUserMessages > 0 {
		return false
	}
	if s.AssistantMessages > 1 {
		return false
	}
	return true
}

// disqualified reports whether no further lines can change the verdict.
func (s Stats) disqualified() bool {
	return s.NonEnvUserMessages > 0 || s.AssistantMessages > 2
}

// IsEnvContext classifies text as environment/warmup boilerplate rather than
// genuine user intent. Blank text is never boilerplate.
func IsEnvContext(text string) bool {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return false
	}
	if strings.HasPrefix(stripped, "<environment_context>") {
		return true
	}

	// Some builds tag warmup content explicitly.
	lowered := strings.ToLower(stripped)
	if strings.Contains(lowered, "warmup") && strings.Contains(lowered, "environment") {
		return true
	}

	var b strings.Builder
	for _, r := range lowered {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	return normalized == "warmup" || normalized == "warmups"
}

// Collect scans session JSONL from r, stopping early once the session is
// already disqualified from being a warmup.
func Collect(r io.Reader) Stats {
	return scan(r, true)
}

// CollectFull scans the entire stream. The verdict is identical to Collect;
// the exact counts are useful for reporting.
func CollectFull(r io.Reader) Stats {
	return scan(r, false)
}

func scan(r io.Reader, earlyExit bool) Stats {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	var stats Stats
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			continue
		}

		switch msg := record.Extract(obj); msg.Role {
		case "user":
			stats.UserMessages++
			if !IsEnvContext(msg.Text) {
				stats.NonEnvUserMessages++
			}
		case "assistant":
			stats.AssistantMessages++
		}

		if earlyExit && stats.disqualified() {
			break
		}
	}
	// A scanner error (oversized or truncated line) ends the scan with the
	// counts collected so far.
	return stats
}

// IsSessionFile opens the session file at path and reports whether it is a
// warmup-only session.
func IsSessionFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	return Collect(f).IsWarmup(), nil
}
