package wizard_test

import (
	"context"
	"time"

	"github.com/vfg2006/dailysale/internal/wizard"
)

type fakeClock struct {
	now    time.Time
	slept  []time.Duration
	onTick func()
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	c.slept = append(c.slept, d)
	if c.onTick != nil {
		c.onTick()
	}
	return nil
}

// fakeElement é um nó mínimo de DOM; selectors lista os seletores que casam com ele
type fakeElement struct {
	page      *fakePage
	selectors map[string]bool
	text      string
	value     string
	hidden    bool
	parent    *fakeElement
	children  []*fakeElement
	clicks    int
	events    []string
	onClick   func()
}

func (e *fakeElement) visible() bool {
	for node := e; node != nil; node = node.parent {
		if node.hidden {
			return false
		}
	}
	return true
}

func (e *fakeElement) Click(ctx context.Context) error {
	e.clicks++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) Text(ctx context.Context) (string, error) {
	return e.text, nil
}

func (e *fakeElement) Value(ctx context.Context) (string, error) {
	return e.value, nil
}

func (e *fakeElement) SetValue(ctx context.Context, value string) error {
	e.value = value
	e.events = append(e.events, "focus", "input", "change")
	return nil
}

func (e *fakeElement) SelectValue(ctx context.Context, value string) error {
	e.value = value
	e.events = append(e.events, "change")
	return nil
}

func (e *fakeElement) descendants() []*fakeElement {
	var out []*fakeElement
	for _, child := range e.children {
		out = append(out, child)
		out = append(out, child.descendants()...)
	}
	return out
}

func (e *fakeElement) Find(ctx context.Context, selector string) (wizard.Element, error) {
	all, _ := e.FindAll(ctx, selector)
	if len(all) == 0 {
		return nil, wizard.ErrElementNotFound
	}
	return all[0], nil
}

func (e *fakeElement) FindAll(ctx context.Context, selector string) ([]wizard.Element, error) {
	return matching(e.descendants(), selector), nil
}

func (e *fakeElement) Closest(ctx context.Context, selector string) (wizard.Element, error) {
	for node := e; node != nil; node = node.parent {
		if node.selectors[selector] {
			return node, nil
		}
	}
	return nil, wizard.ErrElementNotFound
}

func matching(elements []*fakeElement, selector string) []wizard.Element {
	out := make([]wizard.Element, 0)
	for _, el := range elements {
		if el.selectors[selector] && el.visible() {
			out = append(out, el)
		}
	}
	return out
}

type fakePage struct {
	url       string
	elements  []*fakeElement
	navigated []string
}

func (p *fakePage) add(parent *fakeElement, text string, selectors ...string) *fakeElement {
	el := &fakeElement{page: p, text: text, selectors: map[string]bool{}, parent: parent}
	for _, selector := range selectors {
		el.selectors[selector] = true
	}
	if parent != nil {
		parent.children = append(parent.children, el)
	}
	p.elements = append(p.elements, el)
	return el
}

func (p *fakePage) CurrentURL(ctx context.Context) (string, error) {
	return p.url, nil
}

func (p *fakePage) Navigate(ctx context.Context, url string) error {
	p.url = url
	p.navigated = append(p.navigated, url)
	return nil
}

func (p *fakePage) Exists(ctx context.Context, selector string) (bool, error) {
	return len(matching(p.elements, selector)) > 0, nil
}

func (p *fakePage) FindByRoute(ctx context.Context, route string) (wizard.Element, error) {
	return p.FindByAttribute(ctx, "route:"+route)
}

func (p *fakePage) FindByAttribute(ctx context.Context, selector string) (wizard.Element, error) {
	found := matching(p.elements, selector)
	if len(found) == 0 {
		return nil, wizard.ErrElementNotFound
	}
	return found[0], nil
}

func (p *fakePage) FindByText(ctx context.Context, selector string, phrases []string, mode wizard.MatchMode) (wizard.Element, error) {
	return wizard.FirstByText(ctx, matching(p.elements, selector), phrases, mode)
}

func (p *fakePage) FindAll(ctx context.Context, selector string) ([]wizard.Element, error) {
	return matching(p.elements, selector), nil
}

// salesWizard monta as três etapas do painel; cada clique revela a etapa seguinte
type salesWizard struct {
	page *fakePage

	entry, step1, step2, step3       *fakeElement
	discountType, rewardPercentage   *fakeElement
	percent, startDate, endDate      *fakeElement
	terms, name, continueButton      *fakeElement
	allListings, selectListings      *fakeElement
	sectionPicker, menu              *fakeElement
	winterItem, winterAction         *fakeElement
	reviewButton, finalButton        *fakeElement
	overlayRoot, overlay, doneButton *fakeElement
}

func newSalesWizard(cfg wizard.Config) *salesWizard {
	sel := cfg.Selectors
	p := &fakePage{url: "https://www.etsy.com/your/shops/me/sales-discounts"}
	w := &salesWizard{page: p}

	w.entry = p.add(nil, "Run a sale", "route:"+cfg.CreateRoute, sel.Clickable)

	w.step1 = p.add(nil, "")
	w.step1.hidden = true
	w.discountType = p.add(w.step1, "", sel.DiscountType)
	w.rewardPercentage = p.add(w.step1, "", sel.RewardPercentage)
	p.add(w.rewardPercentage, "10% off", sel.RewardOption).value = "10"
	p.add(w.rewardPercentage, "Custom", sel.RewardOption).value = "custom-percent"
	w.percent = p.add(w.step1, "", sel.PercentInputs[0], cfg.PercentInputSelector())
	w.startDate = p.add(w.step1, "", sel.DateInputs)
	w.endDate = p.add(w.step1, "", sel.DateInputs)
	w.terms = p.add(w.step1, "", sel.Terms[0])
	w.name = p.add(w.step1, "", sel.SaleName[0])
	w.continueButton = p.add(w.step1, "Continue", sel.Clickable)

	w.step2 = p.add(nil, "")
	w.step2.hidden = true
	p.add(w.step2, "Which listings are included?", sel.Step2Ready)
	w.allListings = p.add(w.step2, "All listings in your shop", sel.ScopeLabel)
	w.selectListings = p.add(w.step2, "Select listings", sel.ScopeLabel)
	w.sectionPicker = p.add(w.step2, "Add listings by shop section", sel.SectionPicker)
	w.menu = p.add(w.step2, "", sel.SectionMenu)
	w.menu.hidden = true
	summer := p.add(w.menu, "SUMMER (3)", sel.SectionItem)
	p.add(summer, "SUMMER (3)", sel.SectionAction)
	w.winterItem = p.add(w.menu, "Winter Sale (12)", sel.SectionItem)
	w.winterAction = p.add(w.winterItem, "Winter Sale (12)", sel.SectionAction)
	w.reviewButton = p.add(w.step2, "Review and confirm", sel.Clickable)

	w.step3 = p.add(nil, "")
	w.step3.hidden = true
	w.finalButton = p.add(w.step3, "Create sale", sel.FinalButtons)

	w.overlayRoot = p.add(nil, "")
	w.overlayRoot.hidden = true
	modal := p.add(w.overlayRoot, "", sel.OverlayModal)
	w.overlay = p.add(modal, "Your sale is live", sel.SuccessOverlay)
	p.add(modal, "Share", sel.OverlayButton)
	w.doneButton = p.add(modal, " Done ", sel.OverlayButton)

	w.entry.onClick = func() {
		p.url = "https://www.etsy.com" + cfg.CreateRoute
		w.entry.hidden = true
		w.step1.hidden = false
	}
	w.continueButton.onClick = func() {
		w.step1.hidden = true
		w.step2.hidden = false
	}
	w.sectionPicker.onClick = func() {
		w.menu.hidden = false
	}
	w.reviewButton.onClick = func() {
		w.step2.hidden = true
		w.step3.hidden = false
	}
	w.finalButton.onClick = func() {
		w.step3.hidden = true
		w.overlayRoot.hidden = false
	}
	w.doneButton.onClick = func() {
		w.overlayRoot.hidden = true
	}

	return w
}
