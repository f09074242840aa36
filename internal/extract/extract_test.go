package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yuragi/internal/analyzer"
)

// 恋がヘタでも生きてます
const koiOutput = `恋	名詞,一般,*,*,*,*,恋,コイ,コイ
が	助詞,格助詞,一般,*,*,*,が,ガ,ガ
ヘタ	名詞,一般,*,*,*,*,ヘタ,ヘタ,ヘタ
で	助詞,格助詞,一般,*,*,*,で,デ,デ
も	助詞,係助詞,*,*,*,*,も,モ,モ
生き	動詞,自立,*,*,一段,連用形,生きる,イキ,イキ
て	助詞,接続助詞,*,*,*,*,て,テ,テ
ます	助動詞,*,*,*,特殊・マス,基本形,ます,マス,マス
EOS`

// 櫻子さんの足下には死体が埋まっている, 警視庁捜査一課9係
const mixedOutput = `櫻子	名詞,固有名詞,人名,名,*,*,櫻子,サクラコ,サクラコ
さん	名詞,接尾,人名,*,*,*,さん,サン,サン
僕	名詞,代名詞,一般,*,*,*,僕,ボク,ボク
9	名詞,数,*,*,*,*,*
係	名詞,接尾,一般,*,*,*,係,ガカリ,ガカリ
EOS`

func TestSubjects(t *testing.T) {
	toks := analyzer.ParseMeCab(koiOutput)
	assert.Equal(t, []string{"恋"}, Subjects(toks))
}

func TestSubjectsMarkerFirst(t *testing.T) {
	toks := analyzer.ParseMeCab("が\t助詞,格助詞,一般,*,*,*,が,ガ,ガ\nEOS")
	got := Subjects(toks)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSubjectsIgnoresOtherParticles(t *testing.T) {
	// は tagged as something other than a case/binding particle
	toks := analyzer.ParseMeCab("猫\t名詞,一般,*,*,*,*,猫,ネコ,ネコ\nは\t助詞,接続助詞,*,*,*,*,は,ハ,ワ\nEOS")
	assert.Empty(t, Subjects(toks))
}

func TestNounClasses(t *testing.T) {
	toks := analyzer.ParseMeCab(mixedOutput)

	assert.Equal(t, []string{"僕"}, Pronouns(toks))
	assert.Equal(t, []string{"櫻子"}, ProperNouns(toks))
	assert.Equal(t, []string{"さん", "係"}, Suffixes(toks))
	assert.Equal(t, []string{"9"}, Numbers(toks))
}

func TestEmptyTokens(t *testing.T) {
	assert.Empty(t, Subjects(nil))
	assert.Empty(t, Pronouns(nil))
	assert.NotNil(t, Numbers(nil))
}
