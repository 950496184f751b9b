package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

type Scope string

const (
	ScopeWholeShop Scope = "WHOLE_SHOP"
	ScopeSection   Scope = "SECTION"
)

type SaleStatus string

const (
	SaleStatusPending SaleStatus = "pending"
	SaleStatusRunning SaleStatus = "running"
)

// AllScopeName é o sentinela usado quando a promoção vale para a loja inteira
const AllScopeName = "ALL"

var (
	ErrSaleNotFound            = errors.New("sale not found")
	ErrInvalidStatusTransition = errors.New("sale status cannot go back to pending")

	SaleNamePattern = regexp.MustCompile(`^DS\d{2}[A-Z]{3}\d{2}P\d{1,2}[A-Z0-9]*$`)
	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)
)

type Sale struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Percent        int        `json:"percent"`
	Scope          Scope      `json:"scope"`
	ScopeName      string     `json:"scopeName"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate"`
	SaleLengthDays int        `json:"saleLengthDays"`
	Status         SaleStatus `json:"status"`
	Created        bool       `json:"created"`
	Cancelled      bool       `json:"cancelled"`
}

// SaleTemplate é a entrada do usuário para um lote de promoções
type SaleTemplate struct {
	Percent        int
	Scope          Scope
	ScopeName      string
	StartDate      string
	SaleLengthDays int
}

// SaleUpdate é uma atualização parcial aplicada por id
type SaleUpdate struct {
	Status    *SaleStatus
	Created   *bool
	Cancelled *bool
}

// MarkRunning é a atualização registrada quando o assistente confirma a criação
func MarkRunning() SaleUpdate {
	status := SaleStatusRunning
	created := true
	return SaleUpdate{Status: &status, Created: &created}
}

// Apply aplica a atualização na promoção. O status nunca volta de running para pending.
func (u SaleUpdate) Apply(sale *Sale) error {
	if u.Status != nil {
		if sale.Status == SaleStatusRunning && *u.Status == SaleStatusPending {
			return ErrInvalidStatusTransition
		}
		sale.Status = *u.Status
	}
	if u.Created != nil {
		sale.Created = *u.Created
	}
	if u.Cancelled != nil {
		sale.Cancelled = *u.Cancelled
	}
	return nil
}

// NormalizeScopeName deixa apenas letras maiúsculas e dígitos, ou ALL
func NormalizeScopeName(scope Scope, raw string) string {
	if scope != ScopeSection {
		return AllScopeName
	}

	normalized := nonAlphanumeric.ReplaceAllString(strings.ToUpper(strings.TrimSpace(raw)), "")
	if normalized == "" {
		return AllScopeName
	}
	return normalized
}

// BuildSaleName gera o nome DS<YY><MES><DD>P<PERCENT><ESCOPO>, ex: DS25NOV26P20WINTERSALE
func BuildSaleName(startDate time.Time, percent int, scopeCode string) string {
	month := strings.ToUpper(startDate.Month().String()[:3])
	return fmt.Sprintf("DS%02d%s%02dP%d%s",
		startDate.Year()%100,
		month,
		startDate.Day(),
		percent,
		scopeCode,
	)
}

func (t SaleTemplate) lengthDays() int {
	if t.SaleLengthDays < 1 {
		return 1
	}
	return t.SaleLengthDays
}

// NewSale monta a promoção do dia offset do lote, sempre com status pending
func (t SaleTemplate) NewSale(id string, offset int) (Sale, error) {
	baseStart, err := ParseLocalYMD(t.StartDate)
	if err != nil {
		return Sale{}, err
	}

	length := t.lengthDays()
	scopeName := NormalizeScopeName(t.Scope, t.ScopeName)
	start := baseStart.AddDate(0, 0, offset)
	end := start.AddDate(0, 0, length-1)

	scope := t.Scope
	if scope != ScopeSection {
		scope = ScopeWholeShop
	}

	return Sale{
		ID:             id,
		Name:           BuildSaleName(start, t.Percent, scopeName),
		Percent:        t.Percent,
		Scope:          scope,
		ScopeName:      scopeName,
		StartDate:      FormatLocalYMD(start),
		EndDate:        FormatLocalYMD(end),
		SaleLengthDays: length,
		Status:         SaleStatusPending,
	}, nil
}

// ContinueFrom sugere o próximo lote a partir de uma promoção existente:
// mesmo desconto e escopo, começando no dia seguinte ao fim dela.
func ContinueFrom(sale Sale) (SaleTemplate, int, error) {
	end, err := ParseLocalYMD(sale.EndDate)
	if err != nil {
		return SaleTemplate{}, 0, err
	}

	scopeName := sale.ScopeName
	if sale.Scope != ScopeSection {
		scopeName = ""
	}

	return SaleTemplate{
		Percent:        sale.Percent,
		Scope:          sale.Scope,
		ScopeName:      scopeName,
		StartDate:      FormatLocalYMD(end.AddDate(0, 0, 1)),
		SaleLengthDays: sale.SaleLengthDays,
	}, 10, nil
}

func scopeKey(sale Sale) string {
	name := sale.ScopeName
	if name == "" {
		name = AllScopeName
	}
	return fmt.Sprintf("%s:%s", sale.Scope, name)
}

// LatestPerScope é só uma projeção de leitura: mantém a promoção mais recente
// por (escopo, nome do escopo) e ordena por data de início decrescente.
// Nada é removido do ledger.
func LatestPerScope(sales []Sale) []Sale {
	latest := make(map[string]Sale)
	order := make([]string, 0)

	for _, sale := range sales {
		key := scopeKey(sale)
		existing, ok := latest[key]
		if !ok {
			order = append(order, key)
			latest[key] = sale
			continue
		}
		// empate fica com a entrada mais nova da lista
		if sale.StartDate >= existing.StartDate {
			latest[key] = sale
		}
	}

	result := make([]Sale, 0, len(order))
	for _, key := range order {
		result = append(result, latest[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate > result[j].StartDate
	})

	return result
}
