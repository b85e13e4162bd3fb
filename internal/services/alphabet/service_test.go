package alphabet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/charclass"
	"github.com/mcoot/randstr/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	dir     string
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	s.dir = s.T().TempDir()
}

func (s *ServiceSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ServiceSuite) TestResolve_DefaultAlphabet() {
	alphabet, warnings := s.service.Resolve(model.SourceBundle{})

	s.Empty(warnings)
	s.Len(alphabet, 62)
	s.Equal(62, alphabet.Total())
	for _, r := range charclass.Letters + charclass.Digits {
		s.Equal(1, alphabet.Weight(r), "rune %q", r)
	}
}

func (s *ServiceSuite) TestResolve_LiteralWeights() {
	alphabet, _ := s.service.Resolve(model.SourceBundle{Literals: []string{"abbccc"}})

	s.Equal(model.WeightedAlphabet{'a': 1, 'b': 2, 'c': 3}, alphabet)
}

func (s *ServiceSuite) TestResolve_RepeatedLiteralsConcatenate() {
	alphabet, _ := s.service.Resolve(model.SourceBundle{Literals: []string{"ab", "b"}})

	s.Equal(model.WeightedAlphabet{'a': 1, 'b': 2}, alphabet)
}

func (s *ServiceSuite) TestResolve_ClassDedupOnlyWithinOneString() {
	single, _ := s.service.Resolve(model.SourceBundle{Classes: []string{"DD"}})
	repeated, _ := s.service.Resolve(model.SourceBundle{Classes: []string{"D", "D"}})

	s.Equal(1, single.Weight('5'))
	s.Equal(2, repeated.Weight('5'))
}

func (s *ServiceSuite) TestResolve_WeightsAddAcrossSourceKinds() {
	alphabet, _ := s.service.Resolve(model.SourceBundle{
		Literals: []string{"1!"},
		Files:    []string{"11"},
		Classes:  []string{"D"},
	})

	s.Equal(4, alphabet.Weight('1'))
	s.Equal(1, alphabet.Weight('!'))
	s.Equal(1, alphabet.Weight('9'))
	s.Equal(14, alphabet.Total())
}

func (s *ServiceSuite) TestResolve_UnknownFlagWarns() {
	logger, buf := testutil.CaptureLogger()
	service := New(logger)

	alphabet, warnings := service.Resolve(model.SourceBundle{Classes: []string{"Dq"}})

	s.Len(alphabet, 10)
	s.Require().Len(warnings, 1)
	s.Contains(warnings[0], "unknown character class flag")
	s.Contains(warnings[0], "'q'")
	s.Contains(buf.String(), "level=WARN")
}

func (s *ServiceSuite) TestResolve_OnlyUnknownFlagsFallsBackToDefault() {
	alphabet, warnings := s.service.Resolve(model.SourceBundle{Classes: []string{"?"}})

	s.Len(warnings, 1)
	s.Len(alphabet, 62)
}

func (s *ServiceSuite) TestResolve_EmptyLiteralFallsBackToDefault() {
	alphabet, _ := s.service.Resolve(model.SourceBundle{Literals: []string{""}})
	s.Len(alphabet, 62)
}

func (s *ServiceSuite) TestResolve_MultiByteRunesAreSingleUnits() {
	alphabet, _ := s.service.Resolve(model.SourceBundle{Literals: []string{"ééa"}})

	s.Equal(model.WeightedAlphabet{'é': 2, 'a': 1}, alphabet)
}

func (s *ServiceSuite) TestLoadFiles_ReadsInOrder() {
	first := s.writeFile("one.txt", "hello")
	second := s.writeFile("two.txt", "world\n")

	contents, err := s.service.LoadFiles([]string{first, second})

	s.Require().NoError(err)
	s.Equal([]string{"hello", "world\n"}, contents)
}

func (s *ServiceSuite) TestLoadFiles_NoPaths() {
	contents, err := s.service.LoadFiles(nil)
	s.Require().NoError(err)
	s.Empty(contents)
}

func (s *ServiceSuite) TestLoadFiles_MissingFile() {
	missing := filepath.Join(s.dir, "nope.txt")

	_, err := s.service.LoadFiles([]string{missing})

	s.ErrorIs(err, model.ErrUnreadableSource)
	s.Contains(err.Error(), "does not exist")
	s.Contains(err.Error(), missing)
}

func (s *ServiceSuite) TestLoadFiles_Directory() {
	_, err := s.service.LoadFiles([]string{s.dir})

	s.ErrorIs(err, model.ErrUnreadableSource)
	s.Contains(err.Error(), "not a regular file")
}

func (s *ServiceSuite) TestLoadFiles_EmptyFile() {
	path := s.writeFile("empty.txt", "")

	_, err := s.service.LoadFiles([]string{path})

	s.ErrorIs(err, model.ErrUnreadableSource)
	s.Contains(err.Error(), "is empty")
}

func (s *ServiceSuite) TestLoadFiles_InvalidUTF8() {
	path := s.writeFile("binary.bin", "\xff\xfe\x00")

	_, err := s.service.LoadFiles([]string{path})

	s.ErrorIs(err, model.ErrUnreadableSource)
	s.Contains(err.Error(), "UTF-8")
}

func (s *ServiceSuite) TestLoadFiles_FailsOnFirstBadPath() {
	good := s.writeFile("good.txt", "abc")

	contents, err := s.service.LoadFiles([]string{good, filepath.Join(s.dir, "missing")})

	s.Error(err)
	s.Nil(contents)
}
