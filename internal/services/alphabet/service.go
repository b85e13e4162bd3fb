package alphabet

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/charclass"
)

// DefaultCharset is used when the sources resolve to nothing
const DefaultCharset = charclass.Letters + charclass.Digits

// Service resolves alphabet sources into a weighted alphabet
type Service struct {
	logger *slog.Logger
}

// New creates a new alphabet Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// LoadFiles reads every path as UTF-8 text, in order. A path that is missing,
// not a regular file, empty or not valid UTF-8 fails the whole load.
func (s *Service) LoadFiles(paths []string) ([]string, error) {
	contents := make([]string, 0, len(paths))
	for _, path := range paths {
		text, err := readSourceFile(path)
		if err != nil {
			return nil, err
		}
		contents = append(contents, text)
	}
	return contents, nil
}

func readSourceFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s does not exist", model.ErrUnreadableSource, path)
		}
		return "", fmt.Errorf("%w: %s: %v", model.ErrUnreadableSource, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", model.ErrUnreadableSource, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", model.ErrUnreadableSource, path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", model.ErrUnreadableSource, path)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8 text", model.ErrUnreadableSource, path)
	}
	return string(data), nil
}

// Resolve combines literals, then file contents, then class flags into a
// weighted alphabet. Each class string is resolved on its own and the results
// are concatenated, so dedup only happens within one class string.
// Unknown class flags are logged and returned as warnings.
func (s *Service) Resolve(bundle model.SourceBundle) (model.WeightedAlphabet, []string) {
	var warnings []string

	var classes strings.Builder
	for _, flags := range bundle.Classes {
		charset, unknown := charclass.Resolve(flags)
		classes.WriteString(charset)
		for _, flag := range unknown {
			warning := fmt.Sprintf("ignoring %s %q", model.ErrUnknownClassFlag, flag)
			s.logger.Warn(warning, slog.String("flag", string(flag)))
			warnings = append(warnings, warning)
		}
	}

	combined := strings.Join(bundle.Literals, "") +
		strings.Join(bundle.Files, "") +
		classes.String()

	if combined == "" {
		s.logger.Debug("no alphabet sources resolved, using default alphabet")
		combined = DefaultCharset
	}

	return model.CountRunes(combined), warnings
}
