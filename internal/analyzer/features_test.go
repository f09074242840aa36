package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bokuOutput = `ボク	名詞,代名詞,一般,*,*,*,ボク,ボク,ボク
、	記号,読点,*,*,*,*,、,、,、
運命	名詞,一般,*,*,*,*,運命,ウンメイ,ウンメイ
の	助詞,連体化,*,*,*,*,の,ノ,ノ
人	名詞,一般,*,*,*,*,人,ヒト,ヒト
です	助動詞,*,*,*,特殊・デス,基本形,です,デス,デス
。	記号,句点,*,*,*,*,。,。,。
EOS
`

func TestFromFeatures(t *testing.T) {
	t.Run("known word", func(t *testing.T) {
		tok := FromFeatures("運命", []string{"名詞", "一般", "*", "*", "*", "*", "運命", "ウンメイ", "ウンメイ"})
		assert.Equal(t, "名詞", tok.POS)
		assert.Equal(t, "一般", tok.POS1)
		assert.Equal(t, "運命", tok.Lemma)
		assert.Equal(t, "ウンメイ", tok.Reading)
		assert.True(t, tok.HasReading())
	})

	t.Run("unknown word has seven features", func(t *testing.T) {
		tok := FromFeatures("ボンビーガール", []string{"名詞", "一般", "*", "*", "*", "*", "*"})
		assert.False(t, tok.HasReading())
		assert.Equal(t, "ボンビーガール", tok.Lemma)
	})

	t.Run("placeholder reading", func(t *testing.T) {
		tok := FromFeatures("X", []string{"記号", "一般", "*", "*", "*", "*", "X", "*", "*"})
		assert.False(t, tok.HasReading())
		assert.Empty(t, tok.Pronunciation)
	})

	t.Run("short record", func(t *testing.T) {
		tok := FromFeatures("a", []string{"名詞"})
		assert.Equal(t, "名詞", tok.POS)
		assert.Empty(t, tok.POS1)
		assert.False(t, tok.HasReading())
	})
}

func TestParseMeCab(t *testing.T) {
	toks := ParseMeCab(bokuOutput)
	require.Len(t, toks, 7)

	surfaces := make([]string, 0, len(toks))
	for _, tk := range toks {
		surfaces = append(surfaces, tk.Surface)
	}
	assert.Equal(t, []string{"ボク", "、", "運命", "の", "人", "です", "。"}, surfaces)
	assert.Equal(t, 3, toks[2].Start)
	assert.Equal(t, 5, toks[2].End)
	assert.Equal(t, "助動詞", toks[5].POS)
}

func TestParseMeCabSkipsSentinelAndBlankLines(t *testing.T) {
	toks := ParseMeCab("\n\nEOS\n  \n")
	require.NotNil(t, toks)
	assert.Empty(t, toks)
}

func TestStatic(t *testing.T) {
	s := NewStatic().Add(Standard, "ボク、運命の人です。", bokuOutput)

	toks, err := s.Analyze(context.Background(), "ボク、運命の人です。", Standard)
	require.NoError(t, err)
	assert.Len(t, toks, 7)

	toks, err = s.Analyze(context.Background(), "ボク、運命の人です。", Extended)
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestDictionaryString(t *testing.T) {
	assert.Equal(t, "standard", Standard.String())
	assert.Equal(t, "extended", Extended.String())

	d, err := ParseDictionary("uni")
	require.NoError(t, err)
	assert.Equal(t, Extended, d)

	_, err = ParseDictionary("neologd")
	assert.Error(t, err)
}
