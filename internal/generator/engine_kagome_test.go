package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuragi/internal/analyzer"
	"yuragi/internal/model"
)

func TestEngineScenariosKagome(t *testing.T) {
	if testing.Short() {
		t.Skip("loads both dictionaries")
	}
	e := NewEngine(analyzer.NewKagome())
	ctx := context.Background()

	tests := []struct {
		title string
		group string
		want  string
	}{
		{titleCrisis, model.GroupDivided, "CRISIS"},
		{titleBonby, model.GroupUniqueKatakana, "ボンビーガール"},
		{titleBoku, model.GroupCombined, "ボク運"},
		{titleMayo, model.GroupCombined, "真夜プリ"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			set, err := e.Generate(ctx, tt.title)
			require.NoError(t, err)
			assert.Contains(t, set.Group(tt.group), tt.want)
		})
	}
}
