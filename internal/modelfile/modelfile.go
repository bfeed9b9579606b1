// Package modelfile manages the on-disk model artifacts for enhanced
// detection: the artifact layout, the existence predicate the detector keys
// off, the HuggingFace token check, and the explicit best-effort download.
//
// Nothing here runs on the classification hot path.
package modelfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names expected inside a model directory.
const (
	ConfigFile    = "config.json"
	TokenizerFile = "tokenizer.json"
	WeightsFile   = "model.safetensors"

	// InfoFile is a stamp written after a successful download. It is not
	// required for the model to count as present.
	InfoFile = "model_info.txt"
)

// modelRepo is the upstream HuggingFace repository the artifacts come from.
const modelRepo = "madhurjindal/autonlp-Gibberish-Detector-492513457"

// repoBaseURL is swapped out by tests; everything else goes to HuggingFace.
var repoBaseURL = "https://huggingface.co/" + modelRepo + "/resolve/main/"

// artifact pairs a required file with its download URL.
type artifact struct {
	Name string
	URL  string
}

func artifacts() [3]artifact {
	return [3]artifact{
		{Name: WeightsFile, URL: repoBaseURL + WeightsFile},
		{Name: ConfigFile, URL: repoBaseURL + ConfigFile},
		{Name: TokenizerFile, URL: repoBaseURL + TokenizerFile},
	}
}

// RequiredFiles lists the files a directory must contain to count as a model.
func RequiredFiles() []string {
	return []string{ConfigFile, TokenizerFile, WeightsFile}
}

// Exists reports whether dir holds a complete set of model artifacts.
func Exists(dir string) bool {
	if dir == "" {
		return false
	}
	if _, err := os.Stat(dir); err != nil {
		return false
	}
	for _, name := range RequiredFiles() {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// TokenStatus describes whether a HuggingFace token is needed and available
// for downloading the model files.
type TokenStatus int

const (
	// TokenNotRequired means the model already exists at the path.
	TokenNotRequired TokenStatus = iota
	// TokenAvailable means a token is set and a download can proceed.
	TokenAvailable
	// TokenRequired means a download needs a token that is not set.
	TokenRequired
)

func (s TokenStatus) String() string {
	switch s {
	case TokenNotRequired:
		return "not required"
	case TokenAvailable:
		return "available"
	case TokenRequired:
		return "required"
	default:
		return fmt.Sprintf("token status(%d)", int(s))
	}
}

// tokenEnvVar is where the HuggingFace hub token conventionally lives.
const tokenEnvVar = "HUGGING_FACE_HUB_TOKEN"

// resolveToken returns the explicit token if given, falling back to the
// environment.
func resolveToken(token string) string {
	if token != "" {
		return token
	}
	return os.Getenv(tokenEnvVar)
}

// CheckTokenStatus reports whether a download of the model into dir would
// need a HuggingFace token, and whether one is available.
func CheckTokenStatus(dir string) TokenStatus {
	if Exists(dir) {
		return TokenNotRequired
	}
	if resolveToken("") != "" {
		return TokenAvailable
	}
	return TokenRequired
}
