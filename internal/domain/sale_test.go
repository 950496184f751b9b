package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleTemplate_NewSale(t *testing.T) {
	tests := []struct {
		name     string
		template SaleTemplate
		offset   int
		validate func(t *testing.T, sale Sale)
	}{
		{
			name: "Seção Winter Sale - nome e datas do primeiro dia",
			template: SaleTemplate{
				Percent:   20,
				Scope:     ScopeSection,
				ScopeName: "Winter Sale",
				StartDate: "2025-11-26",
			},
			offset: 0,
			validate: func(t *testing.T, sale Sale) {
				assert.Equal(t, "DS25NOV26P20WINTERSALE", sale.Name)
				assert.Equal(t, "WINTERSALE", sale.ScopeName)
				assert.Equal(t, "2025-11-26", sale.StartDate)
				assert.Equal(t, "2025-11-26", sale.EndDate)
				assert.Equal(t, 1, sale.SaleLengthDays)
				assert.Equal(t, SaleStatusPending, sale.Status)
				assert.False(t, sale.Created)
				assert.False(t, sale.Cancelled)
			},
		},
		{
			name: "Loja inteira - escopo vira ALL mesmo com nome informado",
			template: SaleTemplate{
				Percent:   15,
				Scope:     ScopeWholeShop,
				ScopeName: "qualquer",
				StartDate: "2025-12-01",
			},
			offset: 0,
			validate: func(t *testing.T, sale Sale) {
				assert.Equal(t, "DS25DEC01P15ALL", sale.Name)
				assert.Equal(t, AllScopeName, sale.ScopeName)
				assert.Equal(t, ScopeWholeShop, sale.Scope)
			},
		},
		{
			name: "Offset atravessa a virada do ano",
			template: SaleTemplate{
				Percent:   30,
				Scope:     ScopeWholeShop,
				StartDate: "2025-12-30",
			},
			offset: 3,
			validate: func(t *testing.T, sale Sale) {
				assert.Equal(t, "2026-01-02", sale.StartDate)
				assert.Equal(t, "DS26JAN02P30ALL", sale.Name)
			},
		},
		{
			name: "Promoção de vários dias calcula a data final",
			template: SaleTemplate{
				Percent:        10,
				Scope:          ScopeSection,
				ScopeName:      "mugs & cups!",
				StartDate:      "2024-02-27",
				SaleLengthDays: 3,
			},
			offset: 0,
			validate: func(t *testing.T, sale Sale) {
				assert.Equal(t, "2024-02-29", sale.EndDate)
				assert.Equal(t, "MUGSCUPS", sale.ScopeName)
				assert.Equal(t, 3, sale.SaleLengthDays)
			},
		},
		{
			name: "Seção sem nome usa o sentinela ALL",
			template: SaleTemplate{
				Percent:   25,
				Scope:     ScopeSection,
				ScopeName: "  ---  ",
				StartDate: "2025-03-05",
			},
			offset: 0,
			validate: func(t *testing.T, sale Sale) {
				assert.Equal(t, AllScopeName, sale.ScopeName)
				assert.Equal(t, "DS25MAR05P25ALL", sale.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale, err := tt.template.NewSale("id-1", tt.offset)
			require.NoError(t, err)
			assert.Equal(t, "id-1", sale.ID)
			tt.validate(t, sale)
		})
	}
}

func TestSaleTemplate_NewSale_InvalidDate(t *testing.T) {
	_, err := SaleTemplate{Percent: 10, StartDate: "26/11/2025"}.NewSale("id", 0)
	assert.Error(t, err)

	_, err = SaleTemplate{Percent: 10}.NewSale("id", 0)
	assert.Error(t, err)
}

func TestBuildSaleName_MatchesPatternAndIsDeterministic(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
	scopes := []string{"ALL", "WINTERSALE", "A1", ""}

	for day := 0; day < 366; day += 7 {
		date := start.AddDate(0, 0, day)
		for percent := 5; percent <= 90; percent += 17 {
			for _, scope := range scopes {
				name := BuildSaleName(date, percent, scope)
				assert.Regexp(t, SaleNamePattern, name)
				assert.Equal(t, name, BuildSaleName(date, percent, scope))
			}
		}
	}
}

func TestNormalizeScopeName(t *testing.T) {
	tests := []struct {
		scope    Scope
		raw      string
		expected string
	}{
		{ScopeSection, "Winter Sale", "WINTERSALE"},
		{ScopeSection, "cups-2024", "CUPS2024"},
		{ScopeSection, "", AllScopeName},
		{ScopeWholeShop, "Winter", AllScopeName},
		{"", "Winter", AllScopeName},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.scope, tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeScopeName(tt.scope, tt.raw))
		})
	}
}

func TestSaleUpdate_Apply(t *testing.T) {
	sale := Sale{ID: "a", Status: SaleStatusPending}

	require.NoError(t, MarkRunning().Apply(&sale))
	assert.Equal(t, SaleStatusRunning, sale.Status)
	assert.True(t, sale.Created)

	pending := SaleStatusPending
	err := SaleUpdate{Status: &pending}.Apply(&sale)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, SaleStatusRunning, sale.Status)

	cancelled := true
	require.NoError(t, SaleUpdate{Cancelled: &cancelled}.Apply(&sale))
	assert.True(t, sale.Cancelled)
	assert.Equal(t, SaleStatusRunning, sale.Status)
}

func TestLatestPerScope(t *testing.T) {
	sales := []Sale{
		{ID: "1", Scope: ScopeWholeShop, ScopeName: "ALL", StartDate: "2025-11-01"},
		{ID: "2", Scope: ScopeSection, ScopeName: "WINTER", StartDate: "2025-11-03"},
		{ID: "3", Scope: ScopeWholeShop, ScopeName: "ALL", StartDate: "2025-11-05"},
		{ID: "4", Scope: ScopeSection, ScopeName: "WINTER", StartDate: "2025-11-02"},
		{ID: "5", Scope: ScopeSection, ScopeName: "SUMMER", StartDate: "2025-11-03"},
		{ID: "6", Scope: ScopeSection, ScopeName: "SUMMER", StartDate: "2025-11-03"},
	}

	latest := LatestPerScope(sales)

	require.Len(t, latest, 3)
	assert.Equal(t, "3", latest[0].ID)
	assert.Equal(t, "2", latest[1].ID)
	assert.Equal(t, "6", latest[2].ID)
	assert.Len(t, sales, 6)
}

func TestContinueFrom(t *testing.T) {
	sale := Sale{
		Percent:        20,
		Scope:          ScopeSection,
		ScopeName:      "WINTERSALE",
		StartDate:      "2025-11-26",
		EndDate:        "2025-11-28",
		SaleLengthDays: 3,
	}

	template, days, err := ContinueFrom(sale)
	require.NoError(t, err)

	assert.Equal(t, 10, days)
	assert.Equal(t, "2025-11-29", template.StartDate)
	assert.Equal(t, 20, template.Percent)
	assert.Equal(t, ScopeSection, template.Scope)
	assert.Equal(t, "WINTERSALE", template.ScopeName)
	assert.Equal(t, 3, template.SaleLengthDays)
}

func TestISOToUSDate_RoundTrip(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < 3*366; i++ {
		date := start.AddDate(0, 0, i)
		expected := date.Format("01/02/2006")
		assert.Equal(t, expected, ISOToUSDate(FormatLocalYMD(date)))
	}

	assert.Equal(t, "11/26/2025", ISOToUSDate("2025-11-26"))
}
