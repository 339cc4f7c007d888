package session_test

import (
	"strings"
	"testing"
	"time"

	"github.com/crackvault/crackvault/internal/attack"
	"github.com/crackvault/crackvault/internal/session"
	"github.com/stretchr/testify/require"
)

func TestLog_AddAndEntries(t *testing.T) {
	log := session.NewLog()
	require.Zero(t, log.Len())

	log.Add("hash crack (md5)", attack.Result{
		Found:    true,
		Password: "hunter2",
		Attempts: 42,
		Elapsed:  2 * time.Second,
		Speed:    21,
	})
	log.Add("hash crack (sha1)", attack.Result{Attempts: 1000})

	entries := log.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "hunter2", entries[0].Password)
	require.True(t, entries[0].Found)
	require.Equal(t, "N/A", entries[1].Password, "missing passwords are masked")

	// Entries must not consume the log.
	require.Equal(t, 2, log.Len())
}

func TestLog_Render(t *testing.T) {
	log := session.NewLog()
	log.Add("wordlist", attack.Result{Found: true, Password: "abc", Attempts: 3})

	var sb strings.Builder
	log.Render(&sb)
	require.Contains(t, sb.String(), "CRACKED")
	require.Contains(t, sb.String(), "abc")
}

func TestLog_Clear(t *testing.T) {
	log := session.NewLog()
	log.Add("wordlist", attack.Result{})
	log.Clear()
	require.Zero(t, log.Len())
	require.Empty(t, log.Entries())
}
