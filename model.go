package wordsalad

import (
	"context"

	"github.com/Veraticus/word-salad/internal/config"
	"github.com/Veraticus/word-salad/internal/modelfile"
)

// TokenStatus reports whether downloading the model needs a HuggingFace
// token and whether one is available.
type TokenStatus = modelfile.TokenStatus

// Token statuses.
const (
	TokenNotRequired = modelfile.TokenNotRequired
	TokenAvailable   = modelfile.TokenAvailable
	TokenRequired    = modelfile.TokenRequired
)

// ProgressFunc receives download progress in [0, 1], monotonically
// increasing.
type ProgressFunc = modelfile.ProgressFunc

// DefaultModelPath returns the conventional model location in the user's
// cache directory.
func DefaultModelPath() string {
	return config.DefaultModelPath()
}

// ModelExists reports whether path holds a complete set of model artifacts.
func ModelExists(path string) bool {
	return modelfile.Exists(path)
}

// DownloadModel fetches the model artifacts into path in a single
// best-effort attempt, reporting progress through the callback. Files
// already present are kept. An empty token falls back to the
// HUGGING_FACE_HUB_TOKEN environment variable. This is the only operation in
// the package that can fail.
func DownloadModel(ctx context.Context, path string, progress ProgressFunc, token string) error {
	return modelfile.Download(ctx, path, progress, token)
}

// CheckTokenStatus reports whether a model download into path would need a
// HuggingFace token.
func CheckTokenStatus(path string) TokenStatus {
	return modelfile.CheckTokenStatus(path)
}
