package generator

import (
	"context"

	"yuragi/internal/analyzer"
	"yuragi/internal/model"
)

const (
	titleBoku    = "ボク、運命の人です。"
	titleMayo    = "真夜中のプリンス"
	titleBonby   = "幸せ！ボンビーガール"
	titleCrisis  = "CRISIS 公安機動捜査隊特捜班"
	title9       = "警視庁捜査一課9係　season12"
	normalized9  = "警視庁捜査一課9係"
	titleKatanas = "ボンビーガールとプリンス"
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

const bonbyIPA = `幸せ	名詞,形容動詞語幹,*,*,*,*,幸せ,シアワセ,シアワセ
！	記号,一般,*,*,*,*,！,！,！
ボンビーガール	名詞,一般,*,*,*,*,*
EOS
`

// the extended vocabulary splits the compound, so it carries no signal
const bonbyUni = `幸せ	名詞,普通名詞,一般,*,*,*,シアワセ,幸せ,幸せ,シアワセ,幸せ,シアワセ
！	補助記号,句点,*,*,*,*,,！,！,,！,
ボンビー	名詞,普通名詞,一般,*,*,*
ガール	名詞,普通名詞,一般,*,*,*,ガール,ガール-girl,ガール,ガール,ガール,ガール
EOS
`

const katanasIPA = `ボンビーガール	名詞,一般,*,*,*,*,*
と	助詞,並立助詞,*,*,*,*,と,ト,ト
プリンス	名詞,一般,*,*,*,*,プリンス,プリンス,プリンス
EOS
`

const katanasUni = `ボンビーガール	名詞,固有名詞,一般,*,*,*
と	助詞,格助詞,*,*,*,*,ト,と,と,ト,と,ト
プリンス	名詞,普通名詞,一般,*,*,*
EOS
`

const title9IPA = `警視庁	名詞,固有名詞,組織,*,*,*,警視庁,ケイシチョウ,ケーシチョー
捜査	名詞,サ変接続,*,*,*,*,捜査,ソウサ,ソーサ
一	名詞,数,*,*,*,*,一,イチ,イチ
課	名詞,接尾,一般,*,*,*,課,カ,カ
9	名詞,数,*,*,*,*,*
係	名詞,接尾,一般,*,*,*,係,ガカリ,ガカリ
EOS
`

func newFixtureAnalyzer() *analyzer.Static {
	return analyzer.NewStatic().
		Add(analyzer.Standard, titleBoku, bokuIPA).
		Add(analyzer.Standard, titleMayo, mayoIPA).
		Add(analyzer.Standard, titleBonby, bonbyIPA).
		Add(analyzer.Extended, titleBonby, bonbyUni).
		Add(analyzer.Standard, titleKatanas, katanasIPA).
		Add(analyzer.Extended, titleKatanas, katanasUni).
		Add(analyzer.Standard, normalized9, title9IPA)
}

type failingAnalyzer struct {
	err error
}

func (f failingAnalyzer) Analyze(context.Context, string, analyzer.Dictionary) ([]model.Token, error) {
	return nil, f.err
}

func tokens(output string) []model.Token {
	return analyzer.ParseMeCab(output)
}
