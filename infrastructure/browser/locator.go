package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/vfg2006/dailysale/internal/wizard"
)

const (
	jsText    = `() => (this.innerText || this.textContent || "")`
	jsValue   = `() => (this.value === undefined || this.value === null ? "" : String(this.value))`
	jsClick   = `() => this.click()`
	jsClosest = `(selector) => this.closest(selector)`

	// o painel só observa a mudança quando recebe input e change
	jsSetValue = `(value) => {
		this.focus();
		this.value = value;
		this.dispatchEvent(new Event("input", { bubbles: true }));
		this.dispatchEvent(new Event("change", { bubbles: true }));
	}`

	jsSelectValue = `(value) => {
		this.value = value;
		this.dispatchEvent(new Event("change", { bubbles: true }));
	}`
)

// Locator implementa wizard.Locator sobre uma página do rod.
// Consultas não esperam: a espera fica com o Poller do assistente.
type Locator struct {
	page *rod.Page
}

func NewLocator(page *rod.Page) *Locator {
	return &Locator{page: page}
}

func (l *Locator) CurrentURL(ctx context.Context) (string, error) {
	res, err := l.page.Context(ctx).Eval(`() => window.location.href`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (l *Locator) Navigate(ctx context.Context, url string) error {
	page := l.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// Exists trata erro de avaliação como ausência: durante uma navegação o contexto JS some
func (l *Locator) Exists(ctx context.Context, selector string) (bool, error) {
	elements, err := l.page.Context(ctx).Elements(selector)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	return len(elements) > 0, nil
}

func (l *Locator) FindByRoute(ctx context.Context, route string) (wizard.Element, error) {
	return l.FindByAttribute(ctx, fmt.Sprintf(`a[href*=%q]`, route))
}

func (l *Locator) FindByAttribute(ctx context.Context, selector string) (wizard.Element, error) {
	elements, err := l.FindAll(ctx, selector)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, wizard.ErrElementNotFound
	}
	return elements[0], nil
}

func (l *Locator) FindByText(ctx context.Context, selector string, phrases []string, mode wizard.MatchMode) (wizard.Element, error) {
	elements, err := l.FindAll(ctx, selector)
	if err != nil {
		return nil, err
	}
	return wizard.FirstByText(ctx, elements, phrases, mode)
}

func (l *Locator) FindAll(ctx context.Context, selector string) ([]wizard.Element, error) {
	elements, err := l.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrap(elements), nil
}

func wrap(elements rod.Elements) []wizard.Element {
	out := make([]wizard.Element, 0, len(elements))
	for _, el := range elements {
		out = append(out, &element{el: el})
	}
	return out
}

type element struct {
	el *rod.Element
}

// Click usa o click() do DOM, sem simular o mouse
func (e *element) Click(ctx context.Context) error {
	_, err := e.el.Context(ctx).Eval(jsClick)
	return err
}

func (e *element) Text(ctx context.Context) (string, error) {
	res, err := e.el.Context(ctx).Eval(jsText)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (e *element) Value(ctx context.Context) (string, error) {
	res, err := e.el.Context(ctx).Eval(jsValue)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (e *element) SetValue(ctx context.Context, value string) error {
	_, err := e.el.Context(ctx).Eval(jsSetValue, value)
	return err
}

func (e *element) SelectValue(ctx context.Context, value string) error {
	_, err := e.el.Context(ctx).Eval(jsSelectValue, value)
	return err
}

func (e *element) Find(ctx context.Context, selector string) (wizard.Element, error) {
	elements, err := e.FindAll(ctx, selector)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, wizard.ErrElementNotFound
	}
	return elements[0], nil
}

func (e *element) FindAll(ctx context.Context, selector string) ([]wizard.Element, error) {
	elements, err := e.el.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrap(elements), nil
}

func (e *element) Closest(ctx context.Context, selector string) (wizard.Element, error) {
	obj, err := e.el.Context(ctx).Evaluate(rod.Eval(jsClosest, selector).ByObject())
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.ObjectID == "" {
		return nil, wizard.ErrElementNotFound
	}

	found, err := e.el.Page().Context(ctx).ElementFromObject(obj)
	if err != nil {
		return nil, err
	}
	return &element{el: found}, nil
}
