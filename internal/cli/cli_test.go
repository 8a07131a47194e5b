package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/nxlvstats/internal/app"
	"github.com/specialistvlad/nxlvstats/internal/hcl"
	"github.com/specialistvlad/nxlvstats/internal/report"
)

func defaultConfig(root string) *app.Config {
	return &app.Config{
		Root:             root,
		Extension:        ".nxlv",
		Workers:          4,
		Format:           report.FormatText,
		PublishEvent:     "level_stats",
		PublishNamespace: "/",
		PublishTimeout:   15 * time.Second,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "nxlvstats.hcl")
	require.NoError(t, os.WriteFile(configFile, []byte(`
scan {
  root    = "/from/file"
  workers = 2
}
report {
  format = "yaml"
}
`), 0o600))

	testCases := []struct {
		name           string
		args           []string
		environ        map[string]string
		stdin          string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-root", "/test/pack",
				"--ext=.lvl",
				"--workers=16",
				"--strict",
				"--format=json",
				"--output=/tmp/report.json",
				"--publish-url=http://localhost:3000/",
				"--publish-event=pack",
				"--publish-namespace=/stats",
				"--publish-timeout=2s",
				"--publish-insecure",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				Root:                      "/test/pack",
				Extension:                 ".lvl",
				Workers:                   16,
				Strict:                    true,
				Format:                    report.FormatJSON,
				Output:                    "/tmp/report.json",
				PublishURL:                "http://localhost:3000/",
				PublishEvent:              "pack",
				PublishNamespace:          "/stats",
				PublishTimeout:            2 * time.Second,
				PublishInsecureSkipVerify: true,
				LogLevel:                  "debug",
				LogFormat:                 "json",
			},
		},
		{
			name:           "Shorthand flag and defaults",
			args:           []string{"-r", "/short/path"},
			expectedConfig: defaultConfig("/short/path"),
		},
		{
			name:           "Positional argument for path",
			args:           []string{"/positional/path"},
			expectedConfig: defaultConfig("/positional/path"),
		},
		{
			name:           "Prompt when no path is configured",
			args:           []string{},
			stdin:          "/typed/path\n",
			expectedConfig: defaultConfig("/typed/path"),
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Enter in the full path to the level pack below.")
			},
		},
		{
			name:      "Empty prompt answer is an error",
			args:      []string{},
			stdin:     "\n",
			expectErr: "no level pack path entered",
		},
		{
			name: "Config file then env then flags",
			args: []string{"-config", configFile, "--format=text"},
			environ: map[string]string{
				"NXLV_WORKERS": "9",
			},
			expectedConfig: func() *app.Config {
				c := defaultConfig("/from/file")
				c.Workers = 9
				return c
			}(),
		},
		{
			name:    "Config file from environment",
			args:    []string{},
			environ: map[string]string{"NXLV_CONFIG": configFile},
			expectedConfig: func() *app.Config {
				c := defaultConfig("/from/file")
				c.Workers = 2
				c.Format = report.FormatYAML
				return c
			}(),
		},
		{
			name:    "Insecure publishing from environment",
			args:    []string{"-r", "/p"},
			environ: map[string]string{"NXLV_PUBLISH_INSECURE_SKIP_VERIFY": "true"},
			expectedConfig: func() *app.Config {
				c := defaultConfig("/p")
				c.PublishInsecureSkipVerify = true
				return c
			}(),
		},
		{
			name:           "Env root",
			args:           []string{},
			environ:        map[string]string{"NXLV_ROOT": "/env/pack"},
			expectedConfig: defaultConfig("/env/pack"),
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Unknown flag",
			args:      []string{"--this-is-not-a-valid-flag"},
			expectErr: "flag provided but not defined: -this-is-not-a-valid-flag",
		},
		{
			name:      "Too many paths",
			args:      []string{"/a", "/b"},
			expectErr: "expected at most one pack path, got 2",
		},
		{
			name:      "Invalid log format",
			args:      []string{"-r", "/p", "--log-format=xml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Invalid report format",
			args:      []string{"-r", "/p", "--format=html"},
			expectErr: "unknown report format",
		},
		{
			name:      "Invalid workers",
			args:      []string{"-r", "/p", "--workers=0"},
			expectErr: "workers must be at least 1",
		},
		{
			name:      "Missing config file",
			args:      []string{"-r", "/p", "-config", "/definitely/not/here.hcl"},
			expectErr: "failed to parse HCL file",
		},
		{
			name:      "Invalid env value",
			args:      []string{"-r", "/p"},
			environ:   map[string]string{"NXLV_STRICT": "perhaps"},
			expectErr: "parse env",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			environ := tc.environ
			if environ == nil {
				environ = map[string]string{}
			}
			out := &bytes.Buffer{}
			p := &Parser{
				Loader:  hcl.NewLoader(),
				Environ: environ,
				Stdin:   strings.NewReader(tc.stdin),
				Output:  out,
			}

			cfg, shouldExit, err := p.Parse(context.Background(), tc.args)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
