package find_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rcarmo/go-rfind/pkg/applets/find"
	"github.com/rcarmo/go-rfind/pkg/core"
	"github.com/rcarmo/go-rfind/pkg/sandbox"
	"github.com/rcarmo/go-rfind/pkg/testutil"
)

var sampleTree = map[string]string{
	"a/b.txt": "b",
	"a/c.rs":  "c",
	"d.rs":    "d",
}

func TestFind(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "non_recursive_root",
			Args:     []string{"a", `\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\ta/c.rs\n",
			Files:    sampleTree,
		},
		{
			Name:     "recursive_dot",
			Args:     []string{"-r", ".", `\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\t./a/c.rs\n\t./d.rs\n",
			Files:    sampleTree,
		},
		{
			Name:     "long_recursive_after_pattern",
			Args:     []string{`\.rs$`, "--recursive"},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\t./a/c.rs\n\t./d.rs\n",
			Files:    sampleTree,
		},
		{
			Name:     "default_root_non_recursive",
			Args:     []string{`\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\t./d.rs\n",
			Files:    sampleTree,
		},
		{
			Name:     "no_matches",
			Args:     []string{"a", "zzz"},
			WantCode: core.ExitSuccess,
			WantOut:  "no matches found\n",
			Files:    sampleTree,
		},
		{
			Name:     "no_patterns",
			Args:     []string{"-r", "a"},
			WantCode: core.ExitSuccess,
			WantOut:  "no matches found\n",
			Files:    sampleTree,
		},
		{
			Name:     "duplicate_roots_not_deduplicated",
			Args:     []string{"a", "a", `\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\ta/c.rs\n\ta/c.rs\n",
			Files:    sampleTree,
		},
		{
			Name:     "multiple_patterns",
			Args:     []string{"-r", "a", "^b", `\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\ta/b.txt\n\ta/c.rs\n",
			Files:    sampleTree,
		},
		{
			Name:     "existing_path_is_not_pattern",
			Args:     []string{"c"},
			WantCode: core.ExitSuccess,
			WantOut:  "no matches found\n",
			Files: map[string]string{
				"c/keep.txt": "k",
				"abc":        "x",
			},
		},
		{
			Name:      "invalid_pattern",
			Args:      []string{"("},
			WantCode:  core.ExitFailure,
			WantNoOut: true,
			WantErr:   "find: invalid argument (, not a regex nor a path",
		},
		{
			Name:      "invalid_pattern_beats_help",
			Args:      []string{"-h", "("},
			WantCode:  core.ExitFailure,
			WantNoOut: true,
			WantErr:   "not a regex nor a path",
		},
		{
			Name:     "version",
			Args:     []string{"-V"},
			WantCode: core.ExitSuccess,
			WantOut:  "find 0.1.0\n",
		},
		{
			Name:     "long_version",
			Args:     []string{"--version", `\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "find 0.1.0\n",
		},
		{
			Name:       "help",
			Args:       []string{"-h", "a", `\.rs$`},
			WantCode:   core.ExitSuccess,
			WantOutSub: "Usage: find [options] [path...] [expressions...]",
			Files:      sampleTree,
		},
		{
			Name:       "help_beats_version",
			Args:       []string{"-V", "--help"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "-r, --recursive",
		},
		{
			Name:       "unknown_option_shows_help",
			Args:       []string{"--bogus"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "Usage: find",
		},
		{
			Name:     "verbose",
			Args:     []string{"-v", "a", "c"},
			WantCode: core.ExitSuccess,
			WantOut: "searching for a\n" +
				"b.txt does not match any regex\n" +
				"c.rs matches c\n" +
				"matches found:\n\ta/c.rs\n",
			Files: sampleTree,
		},
		{
			Name:     "verbose_default_root",
			Args:     []string{"--verbose", "zzz"},
			WantCode: core.ExitSuccess,
			WantOut: "no path specified, using current directory\n" +
				"searching for .\n" +
				"d.rs does not match any regex\n" +
				"no matches found\n",
			Files: map[string]string{"d.rs": "d"},
		},
		{
			Name:     "follows_directory_symlinks",
			Args:     []string{"-r", ".", `\.rs$`},
			WantCode: core.ExitSuccess,
			WantOut:  "matches found:\n\t./link/x.rs\n\t./real/x.rs\n",
			Files:    map[string]string{"real/x.rs": ""},
			Setup: func(t *testing.T, dir string) {
				if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
					t.Skipf("symlinks unsupported: %v", err)
				}
			},
		},
		{
			// "a" is the only readable prefix, so "." cannot be stat'ed and is
			// compiled as a pattern; the implicit root then fails to list.
			Name:      "directory_read_failure",
			Args:      []string{"-r", "."},
			WantCode:  core.ExitFailure,
			WantNoOut: true,
			WantErr:   "find: .: " + sandbox.ErrAccessDenied.Error() + "\n",
			Files:     sampleTree,
			Setup: func(t *testing.T, dir string) {
				if err := sandbox.Init(&sandbox.Config{AllowedPaths: []string{filepath.Join(dir, "a")}}); err != nil {
					t.Fatal(err)
				}
				t.Cleanup(sandbox.Disable)
			},
		},
	}

	testutil.RunAppletTests(t, find.Run, tests)
}

func TestFindSortsAcrossRoots(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{
		"z/1.log": "",
		"m/2.log": "",
		"a/3.log": "",
	})
	testutil.Chdir(t, dir)

	out, _, code := testutil.CaptureAndRun(t, find.Run, []string{"z", "m", "a", `\.log$`})
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	testutil.AssertOutput(t, out.String(), "matches found:\n\ta/3.log\n\tm/2.log\n\tz/1.log\n")
}

func TestFindAbsoluteRoot(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, sampleTree)

	out, _, code := testutil.CaptureAndRun(t, find.Run, []string{"-r", dir, `\.rs$`})
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	testutil.AssertOutputContains(t, out.String(), "\t"+filepath.Join(dir, "a", "c.rs")+"\n")
	testutil.AssertOutputContains(t, out.String(), "\t"+filepath.Join(dir, "d.rs")+"\n")
}
