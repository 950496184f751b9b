package domain

import (
	"fmt"
	"strings"
	"time"
)

const localDateLayout = "2006-01-02"

// ParseLocalYMD interpreta YYYY-MM-DD como meia-noite no fuso local
func ParseLocalYMD(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	date, err := time.ParseInLocation(localDateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", value, err)
	}
	return date, nil
}

func FormatLocalYMD(date time.Time) string {
	return date.Format(localDateLayout)
}

// ISOToUSDate converte 2025-11-26 para 11/26/2025, formato dos campos de data do painel
func ISOToUSDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return fmt.Sprintf("%s/%s/%s", parts[1], parts[2], parts[0])
}

// FirstDayOfMonth retorna o primeiro dia do mês de t, à meia-noite no mesmo fuso
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
