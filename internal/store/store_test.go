package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuragi/internal/ingest"
	"yuragi/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustTitle(t *testing.T, text string) ingest.Title {
	t.Helper()
	title, err := ingest.NewTitle(text)
	require.NoError(t, err)
	return title
}

func TestSaveAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	boku := mustTitle(t, "ボク、運命の人です。")
	n, err := s.Save(ctx, boku, model.CandidateSet{Groups: []model.CandidateGroup{
		{Name: model.GroupDivided, Words: []string{}},
		{Name: model.GroupCombined, Words: []string{"ボク運", "ボク運命", "ボク運"}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mayo := mustTitle(t, "真夜中のプリンス")
	_, err = s.Save(ctx, mayo, model.CandidateSet{Groups: []model.CandidateGroup{
		{Name: model.GroupUniqueKatakana, Words: []string{"プリンス"}},
		{Name: model.GroupCombined, Words: []string{"真夜プリ", "プリンス"}},
	}})
	require.NoError(t, err)

	matches, err := s.Lookup(ctx, " ボク運 ")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, Match{TitleID: boku.ID, Title: boku.Text, Group: model.GroupCombined}, matches[0])

	matches, err = s.Lookup(ctx, "プリンス")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, model.GroupUniqueKatakana, matches[0].Group)

	matches, err = s.Lookup(ctx, "CRISIS")
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = s.Lookup(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyAlias)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestSaveReplacesTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := mustTitle(t, "真夜中のプリンス")
	_, err := s.Save(ctx, first, model.CandidateSet{Groups: []model.CandidateGroup{
		{Name: model.GroupCombined, Words: []string{"真夜プリ", "まよぷり"}},
	}})
	require.NoError(t, err)

	second := mustTitle(t, "真夜中のプリンス")
	n, err := s.Save(ctx, second, model.CandidateSet{Groups: []model.CandidateGroup{
		{Name: model.GroupCombined, Words: []string{"マヨプリ"}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	words, err := s.Aliases(ctx, "真夜中のプリンス")
	require.NoError(t, err)
	assert.Equal(t, []string{"マヨプリ"}, words)

	matches, err := s.Lookup(ctx, "マヨプリ")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, second.ID, matches[0].TitleID)
}

func TestSaveEmptySet(t *testing.T) {
	s := newTestStore(t)
	n, err := s.Save(context.Background(), mustTitle(t, "、。"), model.CandidateSet{})
	require.NoError(t, err)
	assert.Zero(t, n)

	words, err := s.Aliases(context.Background(), "、。")
	require.NoError(t, err)
	require.NotNil(t, words)
	assert.Empty(t, words)
}

func TestLookupSharedAlias(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"幸せ！ボンビーガール", "ボンビーガールとプリンス"} {
		_, err := s.Save(ctx, mustTitle(t, text), model.CandidateSet{Groups: []model.CandidateGroup{
			{Name: model.GroupUniqueKatakana, Words: []string{"ボンビーガール"}},
		}})
		require.NoError(t, err)
	}

	matches, err := s.Lookup(ctx, "ボンビーガール")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.ElementsMatch(t, []string{"幸せ！ボンビーガール", "ボンビーガールとプリンス"},
		[]string{matches[0].Title, matches[1].Title})
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "yuragi.db")
	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), mustTitle(t, "CRISIS"), model.CandidateSet{Groups: []model.CandidateGroup{
		{Name: model.GroupDivided, Words: []string{"CRISIS"}},
	}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	matches, err := reopened.Lookup(context.Background(), "CRISIS")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
