package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"github.com/vfg2006/dailysale/infrastructure/integrator/license"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/internal/usecases/orchestrating"
	"github.com/vfg2006/dailysale/internal/wizard"
)

const (
	minPercent = 5
	maxPercent = 90
)

func runBatch(ctx context.Context, a *app, args []string) error {
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	percent := flags.IntP("percent", "p", 0, "desconto percentual (5 a 90)")
	start := flags.StringP("start", "s", "", "data de início YYYY-MM-DD")
	days := flags.IntP("days", "d", 1, "quantidade de dias consecutivos")
	section := flags.String("section", "", "nome da seção da loja; vazio vale para a loja inteira")
	if err := flags.Parse(args); err != nil {
		return err
	}

	template := domain.SaleTemplate{
		Percent:        *percent,
		Scope:          domain.ScopeWholeShop,
		StartDate:      *start,
		SaleLengthDays: 1,
	}
	if strings.TrimSpace(*section) != "" {
		template.Scope = domain.ScopeSection
		template.ScopeName = *section
	}

	return executeBatch(ctx, a, template, *days)
}

func executeBatch(ctx context.Context, a *app, template domain.SaleTemplate, days int) error {
	if template.Percent < minPercent || template.Percent > maxPercent {
		return fmt.Errorf("%w: percentual deve estar entre %d e %d", orchestrating.ErrInvalidInput, minPercent, maxPercent)
	}

	orchestrator, err := a.automatedOrchestrator(ctx)
	if err != nil {
		return err
	}

	result, err := orchestrator.RunBatch(ctx, template, days)
	if err != nil {
		return explainLicenseError(err)
	}

	for _, failure := range result.Failures {
		fmt.Printf("aviso: a promoção de %s (%s) falhou: %v\n", failure.StartDate, failure.Sale, failure.Err)
	}
	for sale, warnings := range result.Warnings {
		for _, warning := range warnings {
			fmt.Printf("aviso: %s: %s\n", sale, warning)
		}
	}

	fmt.Printf("Concluído. Promoções criadas para %d de %d dia(s).\n", result.Created, days)
	return nil
}

func listSales(ctx context.Context, a *app, args []string) error {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
	all := flags.Bool("all", false, "mostra todas as tentativas, não só a mais recente por escopo")
	if err := flags.Parse(args); err != nil {
		return err
	}

	sales, err := a.orchestrator().ListSales(ctx, *all)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		fmt.Println("Nenhuma promoção registrada.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tDESCONTO\tESCOPO\tINÍCIO\tFIM\tSTATUS")
	for _, sale := range sales {
		fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\t%s\t%s\t%s\n",
			sale.ID, sale.Name, sale.Percent, sale.ScopeName, sale.StartDate, sale.EndDate, sale.Status)
	}
	return w.Flush()
}

func removeSale(ctx context.Context, a *app, args []string) error {
	id, err := singleArg(args, "sale-id")
	if err != nil {
		return err
	}
	if err := a.orchestrator().RemoveSale(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Promoção %s removida.\n", id)
	return nil
}

func retrySale(ctx context.Context, a *app, args []string) error {
	id, err := singleArg(args, "sale-id")
	if err != nil {
		return err
	}

	orchestrator, err := a.automatedOrchestrator(ctx)
	if err != nil {
		return err
	}

	report, err := orchestrator.RetrySale(ctx, id)
	if report != nil {
		for _, warning := range report.Warnings {
			fmt.Printf("aviso: %s\n", warning)
		}
	}
	if err != nil {
		return explainLicenseError(err)
	}

	fmt.Printf("Promoção %s criada.\n", id)
	return nil
}

func continueFrom(ctx context.Context, a *app, args []string) error {
	flags := pflag.NewFlagSet("continue", pflag.ContinueOnError)
	days := flags.IntP("days", "d", 0, "quantidade de dias; padrão é a sugestão")
	run := flags.Bool("run", false, "executa o lote sugerido")
	if err := flags.Parse(args); err != nil {
		return err
	}

	id, err := singleArg(flags.Args(), "sale-id")
	if err != nil {
		return err
	}

	template, suggestedDays, err := a.orchestrator().ContinueFrom(ctx, id)
	if err != nil {
		return err
	}
	if *days > 0 {
		suggestedDays = *days
	}

	scope := domain.AllScopeName
	if template.Scope == domain.ScopeSection {
		scope = template.ScopeName
	}
	fmt.Printf("Próximo lote: %d%% em %s a partir de %s por %d dia(s).\n",
		template.Percent, scope, template.StartDate, suggestedDays)

	if !*run {
		return nil
	}
	return executeBatch(ctx, a, template, suggestedDays)
}

func setKey(ctx context.Context, a *app, args []string) error {
	key, err := singleArg(args, "license-key")
	if err != nil {
		return err
	}

	if err := a.ledger.SaveLicenseKey(ctx, strings.TrimSpace(key)); err != nil {
		return err
	}
	a.license.Invalidate()

	fmt.Println("Chave de licença salva.")
	return status(ctx, a, nil)
}

// status faz uma consulta sem consumo
func status(ctx context.Context, a *app, args []string) error {
	info, err := a.license.CheckLicense(ctx, 0)
	if err != nil {
		return explainLicenseError(err)
	}

	fmt.Printf("Licença válida. Plano: %s. Créditos: %d. Execuções restantes: %d. Créditos por execução: %d.\n",
		info.Plan, info.RemainingCredits, info.RemainingRuns, info.CreditsPerRun)
	return nil
}

func writeWizardConfig(ctx context.Context, a *app, args []string) error {
	path := a.cfg.Browser.WizardConfigPath

	cfg, err := wizard.LoadConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Printf("Configuração do assistente gravada em %s.\n", path)
	return nil
}

func singleArg(args []string, name string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("informe <%s>", name)
	}
	return args[0], nil
}

// explainLicenseError acrescenta a ação esperada do usuário às recusas de licença
func explainLicenseError(err error) error {
	switch {
	case errors.Is(err, license.ErrNoKeyConfigured):
		return fmt.Errorf("%w (use: dailysale set-key <chave>)", err)
	case errors.Is(err, license.ErrInsufficientCredits):
		var checkErr *license.CheckError
		if errors.As(err, &checkErr) && checkErr.RemainingCredits != nil {
			return fmt.Errorf("%w (saldo atual: %d créditos)", err, *checkErr.RemainingCredits)
		}
		return err
	default:
		return err
	}
}
