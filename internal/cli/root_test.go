package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/randstr/internal/model"
	"github.com/mcoot/randstr/internal/services/charclass"
)

type RootCmdTestSuite struct {
	suite.Suite
}

func TestRootCmdTestSuite(t *testing.T) {
	suite.Run(t, new(RootCmdTestSuite))
}

type execResult struct {
	stdout string
	stderr string
	err    error
}

func (s *RootCmdTestSuite) execute(args ...string) execResult {
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func (s *RootCmdTestSuite) TestFixedLengthDefaultAlphabet() {
	res := s.execute("42")
	s.Require().NoError(res.err)
	s.Empty(res.stderr)
	s.Len(res.stdout, 42)
	for _, r := range res.stdout {
		s.Contains(charclass.Letters+charclass.Digits, string(r))
	}
}

func (s *RootCmdTestSuite) TestSeedIsReproducible() {
	first := s.execute("32", "-s", "69", "-c", "*")
	second := s.execute("32", "-s", "69", "-c", "*")
	s.Require().NoError(first.err)
	s.Require().NoError(second.err)
	s.Equal(first.stdout, second.stdout)
	s.Len([]rune(first.stdout), 32)
}

func (s *RootCmdTestSuite) TestNegativeSeed() {
	first := s.execute("12", "-s", "-5")
	second := s.execute("12", "--seed=-5")
	s.Require().NoError(first.err)
	s.Require().NoError(second.err)
	s.Equal(first.stdout, second.stdout)
}

func (s *RootCmdTestSuite) TestRangeLength() {
	for seed := range 20 {
		res := s.execute("10-20", "-s", strconv.Itoa(seed))
		s.Require().NoError(res.err)
		s.GreaterOrEqual(len(res.stdout), 10)
		s.LessOrEqual(len(res.stdout), 20)
	}
}

func (s *RootCmdTestSuite) TestUniqueDigitsIsPermutation() {
	res := s.execute("10", "-u", "-c", "D", "-s", "69")
	s.Require().NoError(res.err)

	got := []rune(res.stdout)
	slices.Sort(got)
	s.Equal("0123456789", string(got))
}

func (s *RootCmdTestSuite) TestWeightedLiteral() {
	res := s.execute("50", "-a", "abbccc", "-s", "7")
	s.Require().NoError(res.err)
	s.Len(res.stdout, 50)
	s.Empty(strings.Trim(res.stdout, "abc"))
}

func (s *RootCmdTestSuite) TestSingleCharacterAlphabet() {
	res := s.execute("30", "-a", "E")
	s.Require().NoError(res.err)
	s.Equal(strings.Repeat("E", 30), res.stdout)
}

func (s *RootCmdTestSuite) TestCombinedShortFlags() {
	res := s.execute("5", "-na", "x")
	s.Require().NoError(res.err)
	s.Equal("xxxxx\n", res.stdout)
}

func (s *RootCmdTestSuite) TestFileSource() {
	path := filepath.Join(s.T().TempDir(), "source.txt")
	s.Require().NoError(os.WriteFile(path, []byte("éé"), 0o600))

	res := s.execute("6", "-f", path)
	s.Require().NoError(res.err)
	s.Equal("éééééé", res.stdout)
}

func (s *RootCmdTestSuite) TestNewline() {
	res := s.execute("8", "-n", "-s", "1")
	s.Require().NoError(res.err)
	s.True(strings.HasSuffix(res.stdout, "\n"))
	s.Len(res.stdout, 9)
}

func (s *RootCmdTestSuite) TestVerbosity() {
	quiet := s.execute("4", "-a", "E", "-s", "69")
	s.Require().NoError(quiet.err)
	s.Empty(quiet.stderr)

	seedOnly := s.execute("4", "-a", "E", "-s", "69", "-v")
	s.Require().NoError(seedOnly.err)
	s.Equal("SEED: 69\n", seedOnly.stderr)

	both := s.execute("4", "-a", "EEF", "-s", "69", "-vv")
	s.Require().NoError(both.err)
	s.Equal("SEED: 69\nALPHABET: {'E': 2, 'F': 1}\n", both.stderr)
	s.Len(both.stdout, 4)
}

func (s *RootCmdTestSuite) TestGeneratedSeedIsReported() {
	res := s.execute("16", "-v")
	s.Require().NoError(res.err)
	s.True(strings.HasPrefix(res.stderr, "SEED: "))
}

func (s *RootCmdTestSuite) TestUnknownClassFlagWarns() {
	res := s.execute("6", "-c", "Dx", "-s", "3")
	s.Require().NoError(res.err)
	s.Len(res.stdout, 6)
	s.Contains(res.stderr, "level=WARN")
	s.Contains(res.stderr, "unknown character class flag")
}

func (s *RootCmdTestSuite) TestErrorsProduceNoOutput() {
	missing := filepath.Join(s.T().TempDir(), "missing.txt")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"malformed length", []string{"ten"}, model.ErrMalformedLength},
		{"too many hyphens", []string{"1-2-3"}, model.ErrMalformedLength},
		{"oversized length", []string{"9223372036854775806"}, model.ErrMalformedLength},
		{"inverted range", []string{"9-3"}, model.ErrInvertedRange},
		{"insufficient alphabet", []string{"11", "-u", "-c", "D"}, model.ErrInsufficientAlphabet},
		{"missing file", []string{"5", "-f", missing}, model.ErrUnreadableSource},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.execute(tt.args...)
			s.ErrorIs(res.err, tt.want)
			s.Empty(res.stdout)
			s.True(strings.HasPrefix(res.stderr, "Error: "), "stderr: %q", res.stderr)
		})
	}
}

func (s *RootCmdTestSuite) TestVerboseMissingFileReportsNoSeed() {
	missing := filepath.Join(s.T().TempDir(), "missing.txt")

	res := s.execute("5", "-v", "-f", missing)
	s.ErrorIs(res.err, model.ErrUnreadableSource)
	s.Empty(res.stdout)
	s.True(strings.HasPrefix(res.stderr, "Error: "), "stderr: %q", res.stderr)
	s.NotContains(res.stderr, "SEED:")
}

func (s *RootCmdTestSuite) TestRequiresLengthArgument() {
	res := s.execute()
	s.Error(res.err)
	s.Empty(res.stdout)
}

func (s *RootCmdTestSuite) TestInvalidStorageType() {
	s.T().Setenv("RANDSTR_STORAGE_TYPE", "sqlite")
	res := s.execute("5")
	s.Error(res.err)
	s.Empty(res.stdout)
}

func (s *RootCmdTestSuite) TestHistoryAndReplayWithRedis() {
	mr := miniredis.RunT(s.T())
	s.T().Setenv("RANDSTR_STORAGE_TYPE", "redis")
	s.T().Setenv("RANDSTR_REDIS_URL", "redis://"+mr.Addr())

	gen := s.execute("12-16", "-a", "abbccc", "-c", "D", "-s", "69")
	s.Require().NoError(gen.err)

	hist := s.execute("history", "-o", "json")
	s.Require().NoError(hist.err)

	var runs []model.Run
	s.Require().NoError(json.Unmarshal([]byte(hist.stdout), &runs))
	s.Require().Len(runs, 1)
	s.Equal(int64(69), runs[0].Seed)
	s.Equal("12-16", runs[0].Length)
	s.Equal(len(gen.stdout), runs[0].ChosenLength)
	s.Equal([]string{"abbccc"}, runs[0].Literals)

	replay := s.execute("replay", string(runs[0].ID))
	s.Require().NoError(replay.err)
	s.Equal(gen.stdout, replay.stdout)

	text := s.execute("history")
	s.Require().NoError(text.err)
	s.Contains(text.stdout, "replay-of="+string(runs[0].ID))
	s.Contains(text.stdout, "seed=69 length=12-16")

	one := s.execute("history", string(runs[0].ID))
	s.Require().NoError(one.err)
	s.Contains(one.stdout, "Run: "+string(runs[0].ID))
	s.Contains(one.stdout, `Alphabet: "abbccc"`)
}

func (s *RootCmdTestSuite) TestHistoryEmptyAndUnknownRun() {
	empty := s.execute("history")
	s.Require().NoError(empty.err)
	s.Equal("No runs recorded\n", empty.stdout)

	missing := s.execute("replay", "nope")
	s.ErrorIs(missing.err, model.ErrRunNotFound)
	s.Empty(missing.stdout)
}

func (s *RootCmdTestSuite) TestHistoryRejectsUnknownFormat() {
	res := s.execute("history", "-o", "yaml")
	s.Error(res.err)
}
