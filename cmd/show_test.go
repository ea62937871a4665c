package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShow(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(append([]string{"show"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		showCmd.SilenceErrors = false
		require.NoError(t, showCmd.Flags().Set("language", ""))
		require.NoError(t, showCmd.Flags().Set("output", "table"))
		require.NoError(t, rootCmd.PersistentFlags().Set("api-base-url", gateway.DefaultBaseURL))
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShowCmd_JSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		fmt.Fprint(w, `[
			{"name": "b", "created_at": "2021-05-01T00:00:00Z", "description": "second", "language": "Go"},
			{"name": "a", "created_at": "2020-05-01T00:00:00Z", "description": null, "language": null},
			{"name": "c", "created_at": "2021-08-01T00:00:00Z", "description": "third", "language": "Go"}
		]`)
	}))
	defer server.Close()

	out, _, err := runShow(t, "octocat", "--api-base-url", server.URL, "--output", "json", "--language", "Go")
	require.NoError(t, err)

	var got timelineJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "octocat", got.Username)
	assert.Equal(t, "Go", got.Language)
	require.Len(t, got.Repos, 2)
	assert.Equal(t, "b", got.Repos[0].Name)
	assert.Equal(t, "c", got.Repos[1].Name)
	assert.Len(t, got.Years, 2)
	assert.Equal(t, 3, got.Summary.TotalRepos)
	assert.Equal(t, "2021", got.Summary.BusiestYear)
}

func TestShowCmd_WarningsHideCause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))
	defer server.Close()

	testCases := []struct {
		name            string
		username        string
		expectedErr     error
		expectedWarning string
	}{
		{
			name:            "fetch error",
			username:        "nobody",
			expectedErr:     domain.ErrFetch,
			expectedWarning: domain.FetchErrorMessage,
		},
		{
			name:            "blank username",
			username:        "   ",
			expectedErr:     domain.ErrEmptyUsername,
			expectedWarning: domain.EmptyUsernameMessage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := runShow(t, tc.username, "--api-base-url", server.URL)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Empty(t, out)
			// Only the inline warning line, no status code or request URL.
			assert.Equal(t, 1, strings.Count(errOut, "\n"), "stderr: %q", errOut)
			assert.True(t, strings.HasSuffix(errOut, tc.expectedWarning+"\n"), "stderr: %q", errOut)
			assert.NotContains(t, errOut, "Error:")
			assert.NotContains(t, errOut, server.URL)
		})
	}
}

func TestShowCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"name": "go-repo", "created_at": "2021-05-01T00:00:00Z", "language": "Go"},
			{"name": "rust-repo", "created_at": "2022-05-01T00:00:00Z", "language": "Rust"}
		]`)
	}))
	defer server.Close()

	t.Run("filtered run", func(t *testing.T) {
		_, _, err := runShow(t, "octocat", "--api-base-url", server.URL, "--output", "json", "--language", "Go")
		require.NoError(t, err)
	})
	t.Run("next run starts unfiltered", func(t *testing.T) {
		out, _, err := runShow(t, "octocat", "--api-base-url", server.URL, "--output", "json")
		require.NoError(t, err)

		var got timelineJSON
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Empty(t, got.Language)
		assert.Len(t, got.Repos, 2)
	})
}

func TestShowCmd_RejectsUnknownFormat(t *testing.T) {
	_, _, err := runShow(t, "octocat", "--output", "yaml")
	assert.ErrorContains(t, err, "unsupported output format")
}
