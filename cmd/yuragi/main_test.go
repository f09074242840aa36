package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuragi/internal/analyzer"
	"yuragi/internal/config"
	"yuragi/internal/model"
	"yuragi/internal/store"
)

const bokuIPA = `ボク	名詞,代名詞,一般,*,*,*,ボク,ボク,ボク
、	記号,読点,*,*,*,*,、,、,、
運命	名詞,一般,*,*,*,*,運命,ウンメイ,ウンメイ
の	助詞,連体化,*,*,*,*,の,ノ,ノ
人	名詞,一般,*,*,*,*,人,ヒト,ヒト
です	助動詞,*,*,*,特殊・デス,基本形,です,デス,デス
。	記号,句点,*,*,*,*,。,。,。
EOS
`

const mayoIPA = `真夜中	名詞,副詞可能,*,*,*,*,真夜中,マヨナカ,マヨナカ
の	助詞,連体化,*,*,*,*,の,ノ,ノ
プリンス	名詞,一般,*,*,*,*,プリンス,プリンス,プリンス
EOS
`

func fixtureAnalyzer() *analyzer.Static {
	return analyzer.NewStatic().
		Add(analyzer.Standard, "ボク、運命の人です。", bokuIPA).
		Add(analyzer.Standard, "真夜中のプリンス", mayoIPA)
}

// run executes the CLI with a scripted analyzer and a config directory
// holding no yuragi.yaml.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	a := &app{analyzer: fixtureAnalyzer()}
	root := newRootCmd(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "ボク、運命の人です。")
	require.NoError(t, err)

	var got generateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ボク、運命の人です。", got.Title)
	assert.Contains(t, got.Candidates, "ボク運")
	assert.Nil(t, got.Groups)
}

func TestGenerateCommandDebug(t *testing.T) {
	out, err := run(t, "generate", "--debug", "真夜中のプリンス")
	require.NoError(t, err)

	var got generateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Groups[model.GroupCombined], "真夜プリ")
	assert.Contains(t, got.Groups, model.GroupDivided)
}

func TestGenerateCommandCombinedAndDump(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump")
	out, err := run(t, "generate", "--combined", "--dump", dump, "真夜中のプリンス")
	require.NoError(t, err)

	var got generateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Candidates, "マヨプリ")

	raw, err := os.ReadFile(filepath.Join(dump, got.ID+".json"))
	require.NoError(t, err)
	var dumped generateOutput
	require.NoError(t, json.Unmarshal(raw, &dumped))
	assert.Equal(t, got, dumped)
}

func TestGenerateCommandEmptyTitle(t *testing.T) {
	_, err := run(t, "generate", "  ")
	assert.Error(t, err)
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "tokens", "真夜中のプリンス")
	require.NoError(t, err)

	var toks []model.Token
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Len(t, toks, 3)
	assert.Equal(t, "マヨナカ", toks[0].Reading)

	out, err = run(t, "tokens", "--extended", "真夜中のプリンス")
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestTokensCommandMerge(t *testing.T) {
	out, err := run(t, "tokens", "--merge", "ボク、運命の人です。")
	require.NoError(t, err)

	var phrases []analyzer.Phrase
	require.NoError(t, json.Unmarshal([]byte(out), &phrases))
	// no verbs, so nothing is merged
	require.Len(t, phrases, 7)
	assert.Equal(t, "ボク", phrases[0].Surface)
	assert.Empty(t, phrases[0].Auxiliaries)
}

func TestIndexAndLookupCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "aliases.db")
	titles := filepath.Join(dir, "titles.txt")
	require.NoError(t, os.WriteFile(titles, []byte("# test\nボク、運命の人です。\n真夜中のプリンス\n"), 0o644))

	out, err := run(t, "index", "--db", db, titles)
	require.NoError(t, err)
	assert.Contains(t, out, "indexed 2 titles")

	out, err = run(t, "lookup", "--db", db, "真夜プリ")
	require.NoError(t, err)
	var matches []store.Match
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "真夜中のプリンス", matches[0].Title)
	assert.Equal(t, model.GroupCombined, matches[0].Group)
}

func TestNewEngineFromConfig(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.Generator.Groups = []string{model.GroupCombined, model.GroupPronoun}

	e, err := newEngine(cfg.Generator, fixtureAnalyzer(), slog.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{model.GroupCombined, model.GroupPronoun}, e.Groups())

	set, err := e.Generate(context.Background(), "ボク、運命の人です。")
	require.NoError(t, err)
	assert.Equal(t, []string{}, set.Group(model.GroupPronoun))

	cfg.Generator.Groups = []string{"catchcopy"}
	_, err = newEngine(cfg.Generator, fixtureAnalyzer(), slog.Default())
	assert.Error(t, err)
}
