package wizard

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var ErrElementNotFound = errors.New("element not found")

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)

// MatchMode define como o texto visível de um elemento é comparado com uma frase
type MatchMode int

const (
	// MatchContains compara por substring, sem diferenciar maiúsculas
	MatchContains MatchMode = iota
	// MatchExact exige o texto inteiro, sem diferenciar maiúsculas
	MatchExact
	// MatchPrefix exige que o texto comece pela frase, sem diferenciar maiúsculas
	MatchPrefix
	// MatchAlnumPrefix compara prefixos depois de remover tudo que não é letra ou dígito
	MatchAlnumPrefix
)

// MatchText aplica o modo de comparação. Frases vazias nunca casam.
func MatchText(mode MatchMode, phrase, candidate string) bool {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return false
	}
	candidate = strings.TrimSpace(candidate)

	switch mode {
	case MatchExact:
		return strings.EqualFold(candidate, phrase)
	case MatchPrefix:
		return strings.HasPrefix(strings.ToUpper(candidate), strings.ToUpper(phrase))
	case MatchAlnumPrefix:
		want := alnumUpper(phrase)
		return want != "" && strings.HasPrefix(alnumUpper(candidate), want)
	default:
		return strings.Contains(strings.ToLower(candidate), strings.ToLower(phrase))
	}
}

func alnumUpper(value string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToUpper(value), "")
}

// Element é um nó da página externa
type Element interface {
	Click(ctx context.Context) error
	Text(ctx context.Context) (string, error)
	Value(ctx context.Context) (string, error)
	// SetValue foca o campo, troca o valor e dispara input e change
	SetValue(ctx context.Context, value string) error
	// SelectValue troca o valor de um select e dispara change
	SelectValue(ctx context.Context, value string) error
	Find(ctx context.Context, selector string) (Element, error)
	FindAll(ctx context.Context, selector string) ([]Element, error)
	Closest(ctx context.Context, selector string) (Element, error)
}

// Locator encontra elementos na página atual.
// Buscas sem resultado retornam ErrElementNotFound.
type Locator interface {
	CurrentURL(ctx context.Context) (string, error)
	Navigate(ctx context.Context, url string) error
	Exists(ctx context.Context, selector string) (bool, error)
	// FindByRoute procura um link cujo href contém a rota
	FindByRoute(ctx context.Context, route string) (Element, error)
	// FindByAttribute devolve o primeiro elemento do seletor
	FindByAttribute(ctx context.Context, selector string) (Element, error)
	// FindByText percorre as frases em ordem e devolve o primeiro elemento do seletor que casa
	FindByText(ctx context.Context, selector string, phrases []string, mode MatchMode) (Element, error)
	FindAll(ctx context.Context, selector string) ([]Element, error)
}

// FirstByText é a busca textual compartilhada pelas implementações de Locator.
// Para cada frase, na ordem dada, devolve o primeiro elemento cujo texto casa.
func FirstByText(ctx context.Context, elements []Element, phrases []string, mode MatchMode) (Element, error) {
	texts := make([]string, len(elements))
	for i, el := range elements {
		text, err := el.Text(ctx)
		if err != nil {
			continue
		}
		texts[i] = text
	}

	for _, phrase := range phrases {
		for i, el := range elements {
			if MatchText(mode, phrase, texts[i]) {
				return el, nil
			}
		}
	}

	return nil, ErrElementNotFound
}

// FirstBySelectors tenta os seletores em ordem, como uma cadeia de querySelector || querySelector
func FirstBySelectors(ctx context.Context, locator Locator, selectors []string) (Element, error) {
	for _, selector := range selectors {
		el, err := locator.FindByAttribute(ctx, selector)
		if err == nil {
			return el, nil
		}
		if !errors.Is(err, ErrElementNotFound) {
			return nil, err
		}
	}
	return nil, ErrElementNotFound
}
