package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects which version to install. An empty TargetVersion
// means the latest release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once per stage so the command can print
// what is happening during a slow download.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release archive for this platform, verifies it
// against the published checksums, and swaps the running binary in
// place.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag, err := c.resolveTag(ctx, input, progress)
	if err != nil {
		return err
	}

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	binary, err := c.fetchVerifiedBinary(ctx, tag, asset, progress)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	targetPath, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceBinary(binary, targetPath); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// resolveTag returns the explicit target version, or asks the release
// API for the latest one.
func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) (string, error) {
	if input.TargetVersion != "" {
		return input.TargetVersion, nil
	}
	progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

// fetchVerifiedBinary downloads the archive and checksums for tag,
// verifies the archive hash, and extracts the binary.
func (c *Checker) fetchVerifiedBinary(ctx context.Context, tag, asset string, progress func(UpdateProgress)) ([]byte, error) {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	releaseDir := fmt.Sprintf("%s/%s/%s/releases/download/%s", base, c.owner, c.repo, tag)

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, releaseDir+"/"+asset)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	checksums, err := c.fetch(ctx, releaseDir+"/checksums.txt")
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}

	want, ok := parseChecksums(checksums)[asset]
	if !ok {
		return nil, fmt.Errorf("no checksum found for %s in checksums.txt", asset)
	}
	if got := sha256Hex(archive); got != want {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := extractBinary(archive, asset)
	if err != nil {
		return nil, fmt.Errorf("extract binary: %w", err)
	}
	return binary, nil
}

// releaseAsset names the goreleaser artifact for a platform. Darwin
// ships a universal binary; Linux and Windows are split by arch.
func releaseAsset(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return "ascendquiz_Darwin_all.tar.gz", nil
	}

	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "arm64"
	case "386":
		arch = "i386"
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "linux":
		return fmt.Sprintf("ascendquiz_Linux_%s.tar.gz", arch), nil
	case "windows":
		return fmt.Sprintf("ascendquiz_Windows_%s.zip", arch), nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// parseChecksums reads goreleaser's checksums.txt ("<hex>  <file>"
// per line) into a file-to-hash map.
func parseChecksums(data []byte) map[string]string {
	out := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 {
			out[fields[1]] = fields[0]
		}
	}
	return out
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return extractFromZip(archive, "ascendquiz.exe")
	}
	return extractFromTarGz(archive, "ascendquiz")
}

func extractFromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func extractFromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// replaceBinary stages the new binary next to the target, re-reads it
// to confirm the bytes on disk match what was verified, then renames
// it over the running executable. Rename within the same directory
// keeps the swap atomic.
func replaceBinary(binary []byte, targetPath string) error {
	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	stageDir, err := os.MkdirTemp(filepath.Dir(targetPath), ".ascendquiz-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(stageDir) }()

	staged := filepath.Join(stageDir, "ascendquiz-new")
	if err := os.WriteFile(staged, binary, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if sha256Hex(onDisk) != sha256Hex(binary) {
		return fmt.Errorf("%w: temp file was tampered with after write", ErrChecksum)
	}

	if err := os.Rename(staged, targetPath); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(targetPath, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
