package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "ascendquiz_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "ascendquiz_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "ascendquiz_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "ascendquiz_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "ascendquiz_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "ascendquiz_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "ascendquiz_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  ascendquiz_Darwin_all.tar.gz\ndef456  ascendquiz_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"ascendquiz_Darwin_all.tar.gz":   "abc123",
				"ascendquiz_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksums([]byte(tt.input)))
		})
	}
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho ascendquiz")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "ascendquiz", binaryContent)
		got, err := extractBinary(archive, "ascendquiz_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "ascendquiz_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestReplaceBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "ascendquiz")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, replaceBinary(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// The old file's permissions carry over to the new binary.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer fakes the GitHub release endpoints for one tag. A nil
// entry in files is served as a 404.
func releaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/ascendquiz/ascendquiz/releases/latest" {
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
			return
		}
		prefix := fmt.Sprintf("/ascendquiz/ascendquiz/releases/download/%s/", tag)
		if name, ok := strings.CutPrefix(r.URL.Path, prefix); ok {
			if data := files[name]; data != nil {
				_, _ = w.Write(data)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-ascendquiz-binary")
	archive := buildTarGz(t, "ascendquiz", binaryContent)
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "ascendquiz")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset)),
		})

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", nil)

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSum := "0000000000000000000000000000000000000000000000000000000000000000"
		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", badSum, asset)),
		})

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0", nil)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
