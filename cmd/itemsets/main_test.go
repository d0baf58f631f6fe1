package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/itemsets/fpgrowth"
)

const wordsCSV = "M,O,N,K,E,Y\nD,O,N,K,E,Y\nM,A,K,E\nM,U,C,K,Y\nC,O,O,K,I,E\n"

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cliParser()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}

func TestMine_JSON(t *testing.T) {
	in := writeFile(t, "words.csv", wordsCSV)
	stdout, stderr, err := run(t, "mine", "-i", in, "--min-support", "0.6")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Done")

	var res fpgrowth.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, 11, res.Len())
	assert.Equal(t, 5, res.Transactions)
	s, ok := res.Lookup(5) // K
	require.True(t, ok)
	assert.Equal(t, []string{"K"}, s.Labels)
	assert.Equal(t, 1.0, s.Support)
}

func TestMine_YAMLWithMaxLenAndIDs(t *testing.T) {
	in := writeFile(t, "words.csv", wordsCSV)
	stdout, _, err := run(t, "mine", "-i", in, "-s", "0.6", "--max-len", "1", "--ids", "--output-format", "yaml", "-w", "3")
	require.NoError(t, err)

	var res struct {
		Itemsets []struct {
			Items  []int    `yaml:"items"`
			Labels []string `yaml:"labels"`
			Count  int      `yaml:"count"`
		} `yaml:"itemsets"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &res))
	require.Len(t, res.Itemsets, 5)
	for _, s := range res.Itemsets {
		assert.Len(t, s.Items, 1)
		assert.Nil(t, s.Labels)
	}
}

func TestMine_OneHotTable(t *testing.T) {
	in := writeFile(t, "onehot.csv", "bread,milk,eggs\n1,1,0\n1,0,1\n1,1,1\n")
	out := filepath.Join(t.TempDir(), "out.txt")
	stdout, _, err := run(t, "mine", "-i", in, "-f", "onehot", "-s", "0.6", "--output-format", "table", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	table, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(table), "SUPPORT")
	assert.Contains(t, string(table), "{bread, milk}")
	assert.Contains(t, string(table), "1.0000")
	assert.Contains(t, string(table), "5 itemsets over 3 transactions (min count 2)")
}

func TestMine_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	for _, s := range []string{
		`CREATE TABLE transactions (transaction_id INTEGER, item TEXT)`,
		`INSERT INTO transactions VALUES (1, 'milk'), (1, 'bread'), (2, 'bread'), (3, 'milk'), (3, 'bread')`,
	} {
		_, err = db.Exec(s)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	stdout, _, err := run(t, "mine", "-i", path, "-s", "0.6")
	require.NoError(t, err)
	var res fpgrowth.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, 3, res.Len())
	assert.Equal(t, 3, res.Transactions)

	_, _, err = run(t, "mine", "-i", path, "-q", "SELECT item FROM transactions")
	assert.Equal(t, exitInput, exitCode(err))
}

func TestMine_Verbose(t *testing.T) {
	in := writeFile(t, "words.csv", wordsCSV)
	_, stderr, err := run(t, "mine", "-i", in, "-s", "0.6", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "itemset emitted")
	assert.Contains(t, stderr, "fp-tree built")
}

func TestMine_ExitCodes(t *testing.T) {
	good := writeFile(t, "words.csv", wordsCSV)
	bad := writeFile(t, "bad.csv", "a,b\n1,2\n")

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"SupportZero", []string{"mine", "-i", good, "-s", "0"}, exitConfig},
		{"SupportAboveOne", []string{"mine", "-i", good, "-s", "1.5"}, exitConfig},
		{"NegativeMaxLen", []string{"mine", "-i", good, "--max-len", "-1"}, exitConfig},
		{"NoWorkers", []string{"mine", "-i", good, "-w", "0"}, exitConfig},
		{"BadFormat", []string{"mine", "-i", good, "-f", "xml"}, exitConfig},
		{"BadOutputFormat", []string{"mine", "-i", good, "--output-format", "csv"}, exitConfig},
		{"BadLogLevel", []string{"mine", "-i", good, "--log-level", "loud"}, exitConfig},
		{"MissingFile", []string{"mine", "-i", filepath.Join(t.TempDir(), "none.csv")}, exitInput},
		{"NonBinary", []string{"mine", "-i", bad, "-f", "onehot"}, exitInput},
		{"UnwritableOutput", []string{"mine", "-i", good, "-o", filepath.Join(t.TempDir(), "no", "dir", "out.json")}, exitOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, exitCode(err))
		})
	}
}

func TestMine_EnvDefaults(t *testing.T) {
	in := writeFile(t, "words.csv", wordsCSV)
	t.Setenv("ITEMSETS_MIN_SUPPORT", "0.8")
	t.Setenv("ITEMSETS_OUTPUT_FORMAT", "yaml")

	stdout, _, err := run(t, "mine", "-i", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "min_support: 0.8")
	assert.Contains(t, stdout, "min_count: 4")

	t.Setenv("ITEMSETS_WORKERS", "many")
	_, _, err = run(t, "mine", "-i", in)
	assert.Equal(t, exitConfig, exitCode(err))
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "itemsets v0.1.0\n", stdout)
}
