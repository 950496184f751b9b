package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/pkg/log"
)

// StatusRecorder persiste a transição de status quando o assistente termina
type StatusRecorder interface {
	UpdateSaleStatus(ctx context.Context, id string, update domain.SaleUpdate) error
}

// Automator cria uma promoção no painel externo por chamada
type Automator interface {
	Run(ctx context.Context, sale domain.Sale, recorder StatusRecorder) (*Report, error)
	EnsureSalesPage(ctx context.Context, salesURL string) error
}

type Driver struct {
	locator Locator
	cfg     Config
	clock   Clock
	poller  *Poller
	logger  log.Logger
}

type Option func(*Driver)

func WithClock(clock Clock) Option {
	return func(d *Driver) {
		d.clock = clock
	}
}

func WithLogger(logger log.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

func NewDriver(locator Locator, cfg Config, opts ...Option) *Driver {
	d := &Driver{
		locator: locator,
		cfg:     cfg,
		clock:   RealClock(),
		logger:  log.ForComponent("wizard"),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.poller = NewPoller(d.clock, cfg.WaitTimeout, cfg.PollInterval)
	return d
}

type transition struct {
	from   State
	to     State
	action func(ctx context.Context) error
}

// execution guarda o estado de uma única chamada a Run
type execution struct {
	*Driver
	sale     domain.Sale
	recorder StatusRecorder
	report   *Report
	current  State
	logger   log.Logger
}

// Run conduz o assistente de três passos para uma promoção.
// Só marca a promoção como running quando todos os passos obrigatórios passam.
func (d *Driver) Run(ctx context.Context, sale domain.Sale, recorder StatusRecorder) (*Report, error) {
	report := &Report{Sale: sale.Name}
	report.enter(StateNotStarted)

	exec := &execution{
		Driver:   d,
		sale:     sale,
		recorder: recorder,
		report:   report,
		current:  StateNotStarted,
		logger:   d.logger.WithContext(ctx).WithField("sale", sale.Name),
	}

	transitions := []transition{
		{StateNotStarted, StateAwaitingStep1Controls, exec.openWizard},
		{StateAwaitingStep1Controls, StateStep1Filled, exec.fillDiscount},
		{StateStep1Filled, StateAwaitingStep2, exec.submitStep1},
		{StateAwaitingStep2, StateStep2ScopeChosen, exec.chooseScope},
		{StateStep2ScopeChosen, StateAwaitingStep3, exec.submitStep2},
		{StateAwaitingStep3, StateStep3Confirmed, exec.confirm},
		{StateStep3Confirmed, StateAwaitingSuccessOverlay, exec.settleForOverlay},
		{StateAwaitingSuccessOverlay, StateDone, exec.acknowledgeAndCommit},
	}

	for _, t := range transitions {
		if err := t.action(ctx); err != nil {
			report.enter(StateFailed)
			exec.logger.WithFields(log.Fields{"state": t.from}).WithError(err).Error("Falha na automação da promoção")
			return report, &FailedError{State: t.from, Err: err}
		}
		exec.current = t.to
		report.enter(t.to)
		exec.logger.WithField("state", t.to).Debug("Assistente avançou")
	}

	exec.logger.Info("Promoção criada no painel")
	return report, nil
}

// EnsureSalesPage garante que o navegador está na página de promoções, fora da sub página de estatísticas
func (d *Driver) EnsureSalesPage(ctx context.Context, salesURL string) error {
	current, err := d.locator.CurrentURL(ctx)
	if err != nil {
		return fmt.Errorf("erro ao ler a url atual: %w", err)
	}

	if strings.HasPrefix(current, salesURL) && !strings.Contains(current, d.cfg.SalesDetails) {
		return nil
	}

	d.logger.WithContext(ctx).Infof("Abrindo página de promoções %s", salesURL)
	if err := d.locator.Navigate(ctx, salesURL); err != nil {
		return fmt.Errorf("erro ao abrir a página de promoções: %w", err)
	}
	return nil
}

func (e *execution) warn(message string) {
	e.report.warn(message)
	e.logger.WithField("state", e.current).Warn(message)
}

func (e *execution) waitFor(ctx context.Context, selector string) error {
	return e.poller.WaitFor(ctx, func(ctx context.Context) (bool, error) {
		return e.locator.Exists(ctx, selector)
	})
}

// optional transforma ErrElementNotFound em ausência
func optional(el Element, err error) (Element, error) {
	if errors.Is(err, ErrElementNotFound) {
		return nil, nil
	}
	return el, err
}

func (e *execution) openWizard(ctx context.Context) error {
	current, err := e.locator.CurrentURL(ctx)
	if err != nil {
		return err
	}
	if strings.Contains(current, e.cfg.CreateRoute) {
		return nil
	}

	entry, err := optional(e.locator.FindByRoute(ctx, e.cfg.CreateRoute))
	if err != nil {
		return err
	}
	if entry == nil {
		entry, err = optional(e.locator.FindByText(ctx, e.cfg.Selectors.Clickable, e.cfg.Phrases.EntryPoint, MatchContains))
		if err != nil {
			return err
		}
	}
	if entry == nil {
		return ErrEntryPointNotFound
	}

	return entry.Click(ctx)
}

func (e *execution) fillDiscount(ctx context.Context) error {
	sel := e.cfg.Selectors

	if err := e.waitFor(ctx, sel.RewardPercentage); err != nil {
		return err
	}

	discountType, err := optional(e.locator.FindByAttribute(ctx, sel.DiscountType))
	if err != nil {
		return err
	}
	if discountType != nil {
		if err := discountType.SelectValue(ctx, e.cfg.DiscountValue); err != nil {
			return err
		}
	}

	if err := e.selectCustomPercent(ctx); err != nil {
		return err
	}

	if err := e.waitFor(ctx, e.cfg.PercentInputSelector()); err != nil {
		return err
	}

	if err := e.setFirst(ctx, sel.PercentInputs, strconv.Itoa(e.sale.Percent), "percentual"); err != nil {
		return err
	}

	dates, err := e.locator.FindAll(ctx, sel.DateInputs)
	if err != nil {
		return err
	}
	if len(dates) >= 2 {
		if err := dates[0].SetValue(ctx, domain.ISOToUSDate(e.sale.StartDate)); err != nil {
			return err
		}
		if err := dates[1].SetValue(ctx, domain.ISOToUSDate(e.sale.EndDate)); err != nil {
			return err
		}
	} else {
		e.warn("Campos de data não encontrados")
	}

	if err := e.setFirst(ctx, sel.Terms, "", ""); err != nil {
		return err
	}

	return e.setFirst(ctx, sel.SaleName, e.sale.Name, "nome da promoção")
}

// setFirst preenche o primeiro seletor presente. Label vazio indica campo opcional.
func (e *execution) setFirst(ctx context.Context, selectors []string, value, label string) error {
	el, err := optional(FirstBySelectors(ctx, e.locator, selectors))
	if err != nil {
		return err
	}
	if el == nil {
		if label != "" {
			e.warn(fmt.Sprintf("Campo %s não encontrado", label))
		}
		return nil
	}
	return el.SetValue(ctx, value)
}

// selectCustomPercent escolhe a opção pelo texto, pois os valores das opções não são estáveis
func (e *execution) selectCustomPercent(ctx context.Context) error {
	sel := e.cfg.Selectors

	percentType, err := optional(e.locator.FindByAttribute(ctx, sel.RewardPercentage))
	if err != nil || percentType == nil {
		return err
	}

	options, err := percentType.FindAll(ctx, sel.RewardOption)
	if err != nil {
		return err
	}

	custom, err := optional(FirstByText(ctx, options, []string{e.cfg.Phrases.CustomPercent}, MatchContains))
	if err != nil {
		return err
	}
	if custom == nil {
		e.warn("Opção de percentual personalizado não encontrada")
		return nil
	}

	value, err := custom.Value(ctx)
	if err != nil {
		return err
	}
	return percentType.SelectValue(ctx, value)
}

func (e *execution) submitStep1(ctx context.Context) error {
	button, err := optional(e.locator.FindByText(ctx, e.cfg.Selectors.Clickable, e.cfg.Phrases.Continue, MatchContains))
	if err != nil {
		return err
	}
	if button == nil {
		return ErrContinueNotFound
	}
	return button.Click(ctx)
}

func (e *execution) chooseScope(ctx context.Context) error {
	if err := e.clock.Sleep(ctx, e.cfg.Delays.Step2Settle); err != nil {
		return err
	}
	if err := e.waitFor(ctx, e.cfg.Selectors.Step2Ready); err != nil {
		return err
	}

	if e.sale.Scope != domain.ScopeSection {
		return e.clickLabel(ctx, e.cfg.Phrases.AllListings)
	}

	if err := e.clickLabel(ctx, e.cfg.Phrases.SelectListings); err != nil {
		return err
	}
	return e.chooseSection(ctx)
}

func (e *execution) clickLabel(ctx context.Context, phrase string) error {
	label, err := optional(e.locator.FindByText(ctx, e.cfg.Selectors.ScopeLabel, []string{phrase}, MatchContains))
	if err != nil {
		return err
	}
	if label == nil {
		e.warn(fmt.Sprintf("Opção %q não encontrada", phrase))
		return nil
	}
	return label.Click(ctx)
}

// chooseSection abre o seletor de seções e escolhe a seção da promoção.
// Seção ausente é tolerada: o catálogo de seções não é controlado por nós.
func (e *execution) chooseSection(ctx context.Context) error {
	sel := e.cfg.Selectors
	scopeName := e.sale.ScopeName
	if scopeName == "" || scopeName == domain.AllScopeName {
		e.warn("Promoção por seção sem nome de seção")
		return nil
	}

	if err := e.clock.Sleep(ctx, e.cfg.Delays.SectionSettle); err != nil {
		return err
	}

	picker, err := optional(e.locator.FindByText(ctx, sel.SectionPicker, []string{e.cfg.Phrases.SectionPicker}, MatchContains))
	if err != nil {
		return err
	}
	if picker == nil {
		e.warn("Botão de seções da loja não encontrado")
		return nil
	}
	if err := picker.Click(ctx); err != nil {
		return err
	}

	if err := e.waitFor(ctx, sel.SectionMenu); err != nil {
		if errors.Is(err, ErrTimeout) {
			e.warn("Menu de seções não abriu")
			return nil
		}
		return err
	}
	if err := e.clock.Sleep(ctx, e.cfg.Delays.MenuSettle); err != nil {
		return err
	}

	items, err := e.locator.FindAll(ctx, sel.SectionItem)
	if err != nil {
		return err
	}
	item, err := optional(FirstByText(ctx, items, []string{scopeName}, MatchAlnumPrefix))
	if err != nil {
		return err
	}
	if item == nil {
		e.warn(fmt.Sprintf("Seção %s não encontrada entre %d opções", scopeName, len(items)))
		return nil
	}

	target, err := optional(item.Find(ctx, sel.SectionAction))
	if err != nil {
		return err
	}
	if target == nil {
		target = item
	}
	if err := target.Click(ctx); err != nil {
		return err
	}

	return e.clock.Sleep(ctx, e.cfg.Delays.SectionChosen)
}

func (e *execution) submitStep2(ctx context.Context) error {
	if err := e.clock.Sleep(ctx, e.cfg.Delays.BeforeReview); err != nil {
		return err
	}

	button, err := optional(e.locator.FindByText(ctx, e.cfg.Selectors.Clickable, e.cfg.Phrases.Review, MatchContains))
	if err != nil {
		return err
	}
	if button == nil {
		return ErrReviewNotFound
	}
	return button.Click(ctx)
}

// confirm clica no botão final. Sem botão, segue: o painel pode criar a promoção direto na revisão.
func (e *execution) confirm(ctx context.Context) error {
	if err := e.clock.Sleep(ctx, e.cfg.Delays.FinalSettle); err != nil {
		return err
	}

	button, err := optional(e.locator.FindByText(ctx, e.cfg.Selectors.FinalButtons, e.cfg.Phrases.FinalConfirm, MatchContains))
	if err != nil {
		return err
	}
	if button == nil {
		button, err = optional(e.locator.FindByText(ctx, e.cfg.Selectors.Clickable, e.cfg.Phrases.FinalConfirm, MatchContains))
		if err != nil {
			return err
		}
	}
	if button == nil {
		e.warn("Botão de confirmação final não encontrado")
		return nil
	}
	return button.Click(ctx)
}

func (e *execution) settleForOverlay(ctx context.Context) error {
	return e.clock.Sleep(ctx, e.cfg.Delays.OverlaySettle)
}

func (e *execution) acknowledgeAndCommit(ctx context.Context) error {
	if err := e.closeSuccessOverlay(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		e.warn(fmt.Sprintf("Erro ao fechar o aviso de sucesso: %v", err))
	}

	if err := e.recorder.UpdateSaleStatus(ctx, e.sale.ID, domain.MarkRunning()); err != nil {
		return fmt.Errorf("erro ao registrar promoção como running: %w", err)
	}
	return nil
}

// closeSuccessOverlay clica em Done no aviso de sucesso, se ele aparecer
func (e *execution) closeSuccessOverlay(ctx context.Context) error {
	sel := e.cfg.Selectors

	overlay, err := optional(e.locator.FindByAttribute(ctx, sel.SuccessOverlay))
	if err != nil {
		return err
	}
	if overlay == nil {
		e.warn("Aviso de sucesso não encontrado")
		return nil
	}

	modal, err := optional(overlay.Closest(ctx, sel.OverlayModal))
	if err != nil {
		return err
	}
	if modal == nil {
		e.warn("Janela do aviso de sucesso não encontrada")
		return nil
	}

	buttons, err := modal.FindAll(ctx, sel.OverlayButton)
	if err != nil {
		return err
	}
	done, err := optional(FirstByText(ctx, buttons, []string{e.cfg.Phrases.Done}, MatchExact))
	if err != nil {
		return err
	}
	if done == nil {
		e.warn("Botão Done não encontrado no aviso de sucesso")
		return nil
	}

	if err := done.Click(ctx); err != nil {
		return err
	}
	return e.clock.Sleep(ctx, e.cfg.Delays.AfterDoneClick)
}
