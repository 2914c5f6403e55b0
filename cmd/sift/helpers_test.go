package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func sampleTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "finance.txt"), "bank loan payment")
	writeFile(t, filepath.Join(dir, "notes", "visit.txt"), "The doctor sent the patient to the hospital")
	writeFile(t, filepath.Join(dir, ".hidden"), "bank bank bank")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref: refs/heads/main")
	return dir
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCollectFiles(t *testing.T) {
	dir := sampleTree(t)

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "finance.txt"),
		filepath.Join(dir, "notes", "visit.txt"),
	}, files)

	hidden := filepath.Join(dir, ".hidden")
	files, err = collectFiles([]string{hidden})
	require.NoError(t, err)
	assert.Equal(t, []string{hidden}, files, "explicit paths are kept")

	_, err = collectFiles([]string{filepath.Join(dir, "missing")})
	require.Error(t, err)

	_, err = collectFiles([]string{t.TempDir()})
	require.ErrorIs(t, err, common.ErrNoFiles)
	assert.Equal(t, "No files found to organize", common.UserMessage(err))
}

func TestReadUploads(t *testing.T) {
	dir := sampleTree(t)

	uploads, err := readUploads([]string{filepath.Join(dir, "finance.txt")})
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, "finance.txt", uploads[0].Name)
	assert.Equal(t, "bank loan payment", string(uploads[0].Data))
}

func TestReadInput(t *testing.T) {
	name, data, err := readInput(strings.NewReader("from stdin"), stdinName)
	require.NoError(t, err)
	assert.Equal(t, "stdin.txt", name)
	assert.Equal(t, "from stdin", string(data))

	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "from disk")
	name, data, err = readInput(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "doc.txt", name)
	assert.Equal(t, "from disk", string(data))
}

func TestWriteStructured(t *testing.T) {
	v := map[string]any{"category": "Finance"}

	var buf bytes.Buffer
	require.NoError(t, writeStructured(&buf, outputJSON, v))
	assert.JSONEq(t, `{"category":"Finance"}`, buf.String())

	buf.Reset()
	require.NoError(t, writeStructured(&buf, outputYAML, v))
	assert.Equal(t, "category: Finance\n", buf.String())

	err := writeStructured(&buf, "xml", v)
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestOrganizeCommand(t *testing.T) {
	dir := sampleTree(t)

	out, err := execute(t, organizeCmd(), "", dir, "--output", "json")
	require.NoError(t, err)

	var result organizeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Folders, 4, "empty Others folder is hidden")
	assert.Len(t, result.Folders[1].Files, 1)
	assert.Equal(t, "finance.txt", result.Folders[1].Files[0].Name)
	assert.Len(t, result.Folders[2].Files, 1)
	assert.Equal(t, 2, result.Stats.TotalFiles)
	assert.Empty(t, result.Files)
}

func TestOrganizeCommandFiltered(t *testing.T) {
	dir := sampleTree(t)

	out, err := execute(t, organizeCmd(), "", dir, "--category", "health", "--output", "yaml")
	require.NoError(t, err)

	var result organizeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	require.Len(t, result.Files, 1)
	assert.Equal(t, "visit.txt", result.Files[0].Name)
	assert.Equal(t, model.CategoryHealth, result.Files[0].Category)

	_, err = execute(t, organizeCmd(), "", dir, "--category", "sports")
	require.ErrorIs(t, err, common.ErrUnknownCategory)

	_, err = execute(t, organizeCmd(), "", dir, "--output", "xml")
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestOrganizeCommandText(t *testing.T) {
	dir := sampleTree(t)

	out, err := execute(t, organizeCmd(), "", dir, "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "finance.txt")
	assert.Contains(t, out, "visit.txt")
	assert.Contains(t, out, "Files: 2")
}

func TestCategorizeCommand(t *testing.T) {
	out, err := execute(t, categorizeCmd(), "software database server", "-", "--output", "json")
	require.NoError(t, err)

	var result categorizeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, model.CategoryTechnology, result.Category)
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, []string{"software", "database", "server"}, result.Keywords)
}

func TestKeywordsCommand(t *testing.T) {
	out, err := execute(t, keywordsCmd(), "alpha beta alpha gamma", "-", "--top", "2", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"file":"stdin.txt","keywords":["alpha","beta"]}`, out)

	_, err = execute(t, keywordsCmd(), "", "-", "--top", "-1")
	require.Error(t, err)
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, categoriesCmd(), "", "--output", "json")
	require.NoError(t, err)

	var categories []model.CategoryConfig
	require.NoError(t, json.Unmarshal([]byte(out), &categories))
	require.Len(t, categories, len(model.CategoryNames))
	assert.Equal(t, model.CategoryOthers, categories[len(categories)-1].Name)
}
