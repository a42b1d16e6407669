package warmup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEnvContext(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "environment_context tag",
			text: "<environment_context>cwd: /home/user/project</environment_context>",
			want: true,
		},
		{
			name: "environment_context tag with leading whitespace",
			text: "\n  <environment_context>anything</environment_context>",
			want: true,
		},
		{
			name: "warmup and environment substrings",
			text: "Warmup message for the current ENVIRONMENT setup",
			want: true,
		},
		{
			name: "bare warmup",
			text: "Warmup",
			want: true,
		},
		{
			name: "warmup with punctuation and digits stripped",
			text: "W-a-r-m-u-p!!",
			want: true,
		},
		{
			name: "plural warmups",
			text: "warmups",
			want: true,
		},
		{
			name: "warmup with extra words is not boilerplate",
			text: "warmup test",
			want: false,
		},
		{
			name: "real user request",
			text: "please fix bug X",
			want: false,
		},
		{
			name: "environment alone",
			text: "set up my environment",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnvContext(tt.text))
		})
	}
}

// Session fixtures as raw JSONL. Mixing top-level and payload-envelope shapes
// mirrors what Claude Code and Codex actually write.
const (
	lineEnvUser     = `{"type":"user","message":{"role":"user","content":"<environment_context>cwd: /tmp</environment_context>"}}`
	lineWarmupUser  = `{"payload":{"role":"user","content":[{"type":"input_text","text":"Warmup"}]}}`
	lineRealUser    = `{"type":"user","message":{"role":"user","content":"please fix bug X"}}`
	lineAssistant   = `{"payload":{"role":"assistant","content":[{"type":"text","text":"Ready."}]}}`
	lineSessionMeta = `{"type":"session_meta","payload":{"id":"abc","cwd":"/tmp"}}`
	lineMalformed   = `{"type":"user","message":`
)

func session(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "env user only",
			content: session(lineSessionMeta, lineEnvUser),
			want:    true,
		},
		{
			name:    "env user plus one assistant reply",
			content: session(lineEnvUser, lineAssistant),
			want:    true,
		},
		{
			name:    "warmup tagged user plus one assistant reply",
			content: session(lineSessionMeta, lineWarmupUser, lineAssistant),
			want:    true,
		},
		{
			name:    "two assistant replies disqualify",
			content: session(lineEnvUser, lineAssistant, lineAssistant),
			want:    false,
		},
		{
			name:    "real user message disqualifies",
			content: session(lineRealUser),
			want:    false,
		},
		{
			name:    "real user after env context disqualifies",
			content: session(lineEnvUser, lineAssistant, lineRealUser),
			want:    false,
		},
		{
			name:    "no user messages",
			content: session(lineSessionMeta, lineAssistant),
			want:    false,
		},
		{
			name:    "empty file",
			content: "",
			want:    false,
		},
		{
			name:    "malformed lines are skipped",
			content: session(lineMalformed, lineEnvUser, lineMalformed),
			want:    true,
		},
		{
			name:    "multiple env users still qualify",
			content: session(lineEnvUser, lineWarmupUser, lineAssistant),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(strings.NewReader(tt.content))
			assert.Equal(t, tt.want, got.IsWarmup())

			// Early exit is an optimization only; the full scan must
			// reach the same verdict.
			full := CollectFull(strings.NewReader(tt.content))
			assert.Equal(t, got.IsWarmup(), full.IsWarmup())
		})
	}
}

func TestCollectEarlyExit(t *testing.T) {
	// A real user message on line one disqualifies immediately; the rest of
	// the file must not be counted.
	content := session(lineRealUser, lineAssistant, lineAssistant, lineAssistant, lineAssistant)

	got := Collect(strings.NewReader(content))
	assert.Equal(t, 1, got.UserMessages)
	assert.Equal(t, 0, got.AssistantMessages)

	full := CollectFull(strings.NewReader(content))
	assert.Equal(t, 4, full.AssistantMessages)
	assert.Equal(t, got.IsWarmup(), full.IsWarmup())
}

func TestCollectFullCounts(t *testing.T) {
	content := session(lineSessionMeta, lineEnvUser, lineWarmupUser, lineAssistant)

	got := CollectFull(strings.NewReader(content))
	assert.Equal(t, 2, got.UserMessages)
	assert.Equal(t, 0, got.NonEnvUserMessages)
	assert.Equal(t, 1, got.AssistantMessages)
	assert.True(t, got.IsWarmup())
}
