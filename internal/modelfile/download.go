package modelfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/word-salad/internal/common"
)

// ProgressFunc receives download progress in [0, 1]. Values are
// monotonically increasing across the whole download.
type ProgressFunc func(fraction float64)

// downloadTimeout bounds the whole transfer; the weights file is large.
const downloadTimeout = 10 * time.Minute

// Download fetches the model artifacts into dir, skipping files that are
// already present, and writes an info stamp on success. It is a single
// best-effort attempt: any failure is reported to the caller wrapped in
// common.ErrDownloadFailed, with no retry.
//
// The token authorizes the HuggingFace request; when empty, the
// HUGGING_FACE_HUB_TOKEN environment variable is consulted.
func Download(ctx context.Context, dir string, progress ProgressFunc, token string) error {
	if progress == nil {
		progress = func(float64) {}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", common.ErrDownloadFailed, dir, err)
	}

	token = resolveToken(token)
	if token == "" {
		return fmt.Errorf("%w: pass a token or set %s (get one at https://huggingface.co/settings/tokens)",
			common.ErrTokenRequired, tokenEnvVar)
	}

	client := &http.Client{Timeout: downloadTimeout}
	files := artifacts()
	total := float64(len(files))

	for i, file := range files {
		target := filepath.Join(dir, file.Name)
		if _, err := os.Stat(target); err == nil {
			common.LogDebug("file already present, skipping", common.Fields{"file": file.Name})
			progress((float64(i) + 1) / total)
			continue
		}

		progress(float64(i) / total)
		if err := fetchFile(ctx, client, file, target, token, func(fileFraction float64) {
			progress((float64(i) + fileFraction) / total)
		}); err != nil {
			return err
		}
		progress((float64(i) + 1) / total)
	}

	if err := writeInfoStamp(dir, files); err != nil {
		return fmt.Errorf("%w: writing info stamp: %v", common.ErrDownloadFailed, err)
	}

	progress(1.0)
	return nil
}

func fetchFile(ctx context.Context, client *http.Client, file artifact, target, token string, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return fmt.Errorf("%w: building request for %s: %v", common.ErrDownloadFailed, file.Name, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetching %s: %v", common.ErrDownloadFailed, file.Name, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: fetching %s: HTTP %d", common.ErrDownloadFailed, file.Name, resp.StatusCode)
	}

	// Write to a temporary name so a cut connection never leaves a partial
	// artifact that Exists would count as complete.
	tmp, err := os.CreateTemp(filepath.Dir(target), file.Name+".partial-*")
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", common.ErrDownloadFailed, target, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	writer := io.Writer(tmp)
	if resp.ContentLength > 0 {
		writer = io.MultiWriter(tmp, &progressWriter{total: resp.ContentLength, progress: progress})
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: downloading %s: %v", common.ErrDownloadFailed, file.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", common.ErrDownloadFailed, target, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("%w: placing %s: %v", common.ErrDownloadFailed, target, err)
	}
	return nil
}

// progressWriter reports written-byte fractions against a known total.
type progressWriter struct {
	total    int64
	written  int64
	progress ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	fraction := float64(w.written) / float64(w.total)
	if fraction > 1 {
		fraction = 1
	}
	w.progress(fraction)
	return len(p), nil
}

func writeInfoStamp(dir string, files [3]artifact) error {
	f, err := os.Create(filepath.Join(dir, InfoFile))
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	fmt.Fprintf(f, "HuggingFace model: %s\n", modelRepo)
	fmt.Fprintf(f, "Downloaded: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(f, "Files:")
	for _, file := range files {
		info, statErr := os.Stat(filepath.Join(dir, file.Name))
		if statErr != nil {
			return statErr
		}
		fmt.Fprintf(f, "  - %s: %d bytes\n", file.Name, info.Size())
	}
	return nil
}
