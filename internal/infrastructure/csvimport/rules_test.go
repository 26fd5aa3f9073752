package csvimport

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	rules := []Rule{
		Column("title").Required().MaxLength(5).Build(),
		Column("unit_price").Required().Decimal().Range(decimal.NewFromInt(1), decimal.RequireFromString("9999.99")).Build(),
		Column("inventory").Int().Min(decimal.Zero).Build(),
		Column("category_id").UUID().Build(),
	}

	tests := []struct {
		name   string
		line   string
		column string
		code   string
	}{
		{"valid", "Mug,9.50,3,1b4e28ba-2fa1-11d2-883f-0016d3cca427", "", ""},
		{"optional cells may be empty", "Mug,9.50,,", "", ""},
		{"missing title", ",9.50,3,", "title", CodeRequired},
		{"title too long", "Teapots,9.50,3,", "title", CodeLength},
		{"price not a number", "Mug,cheap,3,", "unit_price", CodeType},
		{"price too low", "Mug,0.50,3,", "unit_price", CodeRange},
		{"price too high", "Mug,10000,3,", "unit_price", CodeRange},
		{"fractional inventory", "Mug,9.50,1.5,", "inventory", CodeType},
		{"negative inventory", "Mug,9.50,-1,", "inventory", CodeRange},
		{"bad uuid", "Mug,9.50,3,kitchen", "category_id", CodeType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(strings.NewReader("title,unit_price,inventory,category_id\n" + tt.line + "\n"))
			require.NoError(t, err)
			row, err := p.Next()
			require.NoError(t, err)

			errs := NewErrors(0)
			ok := Check(row, rules, errs)
			if tt.code == "" {
				assert.True(t, ok)
				assert.True(t, errs.Empty())
				return
			}
			assert.False(t, ok)
			require.Len(t, errs.Items(), 1)
			got := errs.Items()[0]
			assert.Equal(t, 2, got.Row)
			assert.Equal(t, tt.column, got.Column)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}
