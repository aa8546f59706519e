package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	Begin(tr, ScopeDriver, "check", 0).End("")
	Begin(tr, ScopeFile, "lint a.nix", 0).End("")

	out := buf.String()
	require.Contains(t, out, "→ check")
	require.Contains(t, out, "← check")
	require.NotContains(t, out, "a.nix")
}

func TestTextExtrasAreSorted(t *testing.T) {
	ev := &Event{Seq: 3, Kind: KindSpanEnd, Scope: ScopeFile, Name: "lint", Extra: map[string]string{"z": "1", "a": "2"}}
	line := string(FormatEvent(ev, FormatText))
	require.True(t, strings.HasSuffix(line, "← lint {a=2, z=1}\n"), line)
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	Begin(tr, ScopeFile, "lint b.nix", 7).WithExtra("reports", "2").End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var end map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &end))
	require.Equal(t, "end", end["kind"])
	require.Equal(t, "file", end["scope"])
	require.Equal(t, "done", end["detail"])
	require.EqualValues(t, 7, end["parent_id"])
	require.Equal(t, map[string]any{"reports": "2"}, end["extra"])
}

func TestRingKeepsNewest(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeNode, name, "", 0)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	require.Equal(t, []string{"c", "d", "e"}, names)

	var buf bytes.Buffer
	require.NoError(t, ring.Dump(&buf, FormatText))
	require.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestStartPropagatesParent(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	ctx, outer := Start(ctx, ScopeDriver, "fix")
	_, inner := Start(ctx, ScopePass, "fix round 1")
	inner.End("")
	outer.End("")

	evs := ring.Snapshot()
	require.Len(t, evs, 4)
	require.Equal(t, outer.ID(), evs[1].ParentID)
	require.Zero(t, evs[0].ParentID)
}

func TestNewByLevel(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	require.NoError(t, err)
	require.False(t, tr.Enabled())
	require.Nil(t, RingOf(tr))

	tr, err = New(Config{Level: LevelError})
	require.NoError(t, err)
	require.NotNil(t, RingOf(tr))

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelDetail, Output: &buf})
	require.NoError(t, err)
	Begin(tr, ScopeFile, "x", 0).End("")
	require.NoError(t, tr.Close())
	require.NotEmpty(t, buf.String())
	require.Len(t, RingOf(tr).Snapshot(), 2)
}

func TestParse(t *testing.T) {
	l, err := ParseLevel("DETAIL")
	require.NoError(t, err)
	require.Equal(t, LevelDetail, l)
	_, err = ParseLevel("loud")
	require.Error(t, err)

	f, err := ParseFormat("ndjson")
	require.NoError(t, err)
	require.Equal(t, FormatNDJSON, f)
	_, err = ParseFormat("chrome")
	require.Error(t, err)
}
