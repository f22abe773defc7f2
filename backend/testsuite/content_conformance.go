package testsuite

import (
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2fo/storages"
)

// ContentTestCase defines a single scenario run against content returned by Open
type ContentTestCase struct {
	Description     string
	Sequence        string
	ExpectFailure   bool
	ExpectedResults string
}

// DefaultContentTestCases returns the standard set of content test cases. Every case runs against a freshly opened
// file holding "some text"; ExpectedResults is everything read during the sequence.
func DefaultContentTestCases() []ContentTestCase {
	return []ContentTestCase{
		{
			Description:     "Read all",
			Sequence:        "R(all)",
			ExpectedResults: "some text",
		},
		{
			Description:     "Read, Seek, Read",
			Sequence:        "R(4);S(0,0);R(4)",
			ExpectedResults: "somesome",
		},
		{
			Description:     "Seek, Read",
			Sequence:        "S(5,0);R(all)",
			ExpectedResults: "text",
		},
		{
			Description:     "Read, Seek from current, Read",
			Sequence:        "R(2);S(3,1);R(all)",
			ExpectedResults: "sotext",
		},
		{
			Description:     "Seek from end, Read",
			Sequence:        "S(-4,2);R(all)",
			ExpectedResults: "text",
		},
		{
			Description:     "Read, Tell",
			Sequence:        "R(4);T(4)",
			ExpectedResults: "some",
		},
		{
			Description:     "Read, Open, Read",
			Sequence:        "R(5);O();R(all)",
			ExpectedResults: "some some text",
		},
		{
			Description:     "Close, Close",
			Sequence:        "C();C()",
			ExpectedResults: "",
		},
		{
			Description:   "Read after Close",
			Sequence:      "R(4);C();R(4)",
			ExpectFailure: true,
		},
		{
			Description:   "Seek after Close",
			Sequence:      "C();S(0,0)",
			ExpectFailure: true,
		},
	}
}

// RunContentTests runs content conformance tests against files opened from the provided storage
func RunContentTests(t *testing.T, st storages.Storage, opt ConformanceOptions) {
	t.Helper()
	runContentTestsWithCases(t, st, path.Join(opt.Prefix, "content", "testfile.txt"), DefaultContentTestCases())
}

func runContentTestsWithCases(t *testing.T, st storages.Storage, name string, testCases []ContentTestCase) {
	t.Helper()

	stored, err := st.Save(name, strings.NewReader("some text"))
	require.NoError(t, err)
	defer func() { _ = st.Delete(stored) }()

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			content, err := st.Open(stored)
			require.NoError(t, err)
			defer func() { _ = content.Close() }()

			actualContents, err := ExecuteSequence(t, content, tc.Sequence)

			if tc.ExpectFailure && err == nil {
				t.Fatalf("%s: expected failure but got success", tc.Description)
			}

			if err != nil && !tc.ExpectFailure {
				t.Fatalf("%s: expected success but got failure: %v", tc.Description, err)
			}

			if !tc.ExpectFailure && tc.ExpectedResults != actualContents {
				t.Fatalf("%s: expected results %q but got %q", tc.Description, tc.ExpectedResults, actualContents)
			}
		})
	}
}

// ExecuteSequence executes a sequence of operations against content and returns everything read. Commands are
// separated by ';': R(n|all) reads, S(offset,whence) seeks, T(pos) asserts the position, O() reopens and C() closes.
//
//nolint:gocyclo
func ExecuteSequence(t *testing.T, content storages.Content, sequence string) (string, error) {
	t.Helper()
	commands := strings.Split(sequence, ";")
	read := &strings.Builder{}
	var commandErr error
SEQ:
	for _, command := range commands {
		commandName, commandArgs := parseCommand(t, command)

		switch commandName {
		case "R":
			if commandArgs[0] == "all" {
				var b []byte
				b, commandErr = io.ReadAll(content)
				read.Write(b)
				if commandErr != nil {
					break SEQ
				}
			} else {
				bytesize, err := strconv.ParseUint(commandArgs[0], 10, 64)
				if err != nil {
					t.Fatalf("invalid bytesize: %s", commandArgs[0])
				}
				b := make([]byte, bytesize)
				var n int
				n, commandErr = io.ReadFull(content, b)
				read.Write(b[:n])
				if commandErr != nil {
					break SEQ
				}
			}
		case "S":
			if len(commandArgs) != 2 {
				t.Fatalf("invalid number of args for Seek: %d", len(commandArgs))
			}
			offset, err := strconv.ParseInt(commandArgs[0], 10, 64)
			if err != nil {
				t.Fatalf("invalid offset: %s", commandArgs[0])
			}
			whence, err := strconv.Atoi(commandArgs[1])
			if err != nil {
				t.Fatalf("invalid whence: %s", commandArgs[1])
			}
			_, commandErr = content.Seek(offset, whence)
			if commandErr != nil {
				break SEQ
			}
		case "T":
			expected, err := strconv.ParseInt(commandArgs[0], 10, 64)
			if err != nil {
				t.Fatalf("invalid position: %s", commandArgs[0])
			}
			var pos int64
			pos, commandErr = storages.Tell(content)
			if commandErr != nil {
				break SEQ
			}
			if pos != expected {
				t.Fatalf("expected position %d but got %d", expected, pos)
			}
		case "O":
			commandErr = content.Open()
			if commandErr != nil {
				break SEQ
			}
		case "C":
			commandErr = content.Close()
			if commandErr != nil {
				break SEQ
			}
		default:
			t.Fatalf("unknown command: %s", commandName)
		}
	}

	return read.String(), commandErr
}

var commandArgsRegex = regexp.MustCompile(`^([a-zA-Z0-9]+)\((.*)\)$`)

func parseCommand(t *testing.T, command string) (string, []string) {
	t.Helper()
	results := commandArgsRegex.FindStringSubmatch(command)
	if len(results) != 3 {
		t.Fatalf("invalid command string: %s", command)
	}
	args := strings.Split(results[2], ",")
	return results[1], args
}
