package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const villegas = "Villegas v. Subido, G.R. No. 31711, Sept. 30, 1971, 41 SCRA 190"

// execute runs the root command with stdin and args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmdStructure(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "phcite", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"extract", "count", "dockets", "meta", "lookup", "watch"} {
		assert.True(t, names[name], "missing subcommand %q", name)
	}

	for _, flag := range []string{"config", "format", "log-level", "rules"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestExtractFromStdin(t *testing.T) {
	out, err := execute(t, villegas, "extract")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "GR No. 31711")
	assert.Contains(t, lines[0], "41 SCRA 190")
}

func TestExtractJSONFromFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.txt", villegas)
	second := writeFile(t, dir, "b.txt", "nothing cited here")

	out, err := execute(t, "", "extract", "--format", "json", first, second)
	require.NoError(t, err)

	var got []fileCitations
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].File)
	require.Len(t, got[0].Citations, 1)
	assert.Equal(t, "41 SCRA 190", got[0].Citations[0].SCRA)
	assert.Equal(t, second, got[1].File)
	assert.Empty(t, got[1].Citations)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := execute(t, "", "extract", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestCountMergesReportMentions(t *testing.T) {
	text := villegas + ". The rule was later restated. See 41 SCRA 190."

	out, err := execute(t, text, "count")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "2  GR No. 31711")
}

func TestCountYAML(t *testing.T) {
	out, err := execute(t, villegas, "count", "-f", "yaml")
	require.NoError(t, err)

	var got []struct {
		File      string `yaml:"file"`
		Citations []struct {
			SCRA     string `yaml:"scra"`
			Mentions int    `yaml:"mentions"`
		} `yaml:"citations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "-", got[0].File)
	require.Len(t, got[0].Citations, 1)
	assert.Equal(t, "41 SCRA 190", got[0].Citations[0].SCRA)
	assert.Equal(t, 1, got[0].Citations[0].Mentions)
}

func TestDocketsRules(t *testing.T) {
	text := "B.M. No. 1922, June 3, 2008; A.C. No. 6166, October 2, 2009"

	out, err := execute(t, text, "dockets")
	require.NoError(t, err)
	assert.NotContains(t, out, "BM No. 1922")
	assert.Contains(t, out, "AC No. 6166")

	out, err = execute(t, text, "dockets", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "BM No. 1922")
	assert.Contains(t, out, "[rule]")

	out, err = execute(t, text, "dockets", "--all", "--category", "AC")
	require.NoError(t, err)
	assert.NotContains(t, out, "BM No. 1922")
	assert.Contains(t, out, "AC No. 6166")

	_, err = execute(t, text, "dockets", "--category", "CA")
	assert.Error(t, err)
}

func TestMetaLines(t *testing.T) {
	stdin := "G.R. No. 234179. December 5, 2022 [Date Uploaded: 01/26/2023]\n" +
		"not a sub-title\n" +
		"A.C. No. 9094. January 13, 2014\n"

	out, err := execute(t, stdin, "meta")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "GR\t234179\t2022-12-05\t01/26/2023"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "AC\t9094\t2014-01-13"), lines[1])
}

func TestLookup(t *testing.T) {
	out, err := execute(t, "", "lookup", "gr", "1241-sc", "Sep.", "1,", "1981")
	require.NoError(t, err)
	assert.Equal(t, "gr\t1241-SC\t1981-09-01\n", out)

	out, err = execute(t, "", "lookup", "-f", "json", "ac ac-2142-12, 12/4/2000")
	require.NoError(t, err)
	assert.JSONEq(t, `{"docket_cat":"ac","docket_idx":"AC-2142-12","docket_dated":"2000-12-04"}`, out)

	_, err = execute(t, "", "lookup", "nothing to see")
	assert.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, villegas, "extract", "--format", "xml")
	assert.Error(t, err)
}

func TestRulesFlag(t *testing.T) {
	rules := writeFile(t, t.TempDir(), "rules.yaml", "bar_matter:\n  - \"712\"\n")

	out, err := execute(t, "B.M. No. 712, March 19, 1997", "--rules", rules, "dockets")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}
