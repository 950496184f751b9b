package browser

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/pkg/log"
)

// Session é um Chrome com perfil persistente, para que o login no painel sobreviva entre execuções
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	logger   log.Logger
}

// Launch abre o navegador e uma página com stealth
func Launch(ctx context.Context, cfg config.Browser) (*Session, error) {
	logger := log.ForComponent("browser").WithContext(ctx)

	// leakless trava no Windows: https://github.com/go-rod/rod/issues/853
	l := launcher.New().
		Leakless(runtime.GOOS != "windows").
		Headless(cfg.Headless)

	if cfg.ProfilePath != "" {
		l = l.UserDataDir(cfg.ProfilePath)
	}

	bin := cfg.Bin
	if bin == "" {
		if path, ok := launcher.LookPath(); ok {
			bin = path
		}
	}
	if bin != "" {
		l = l.Bin(bin)
		logger.Debugf("Usando Chrome em %s", bin)
	} else {
		logger.Info("Chrome não encontrado, o rod vai baixar o Chromium")
	}

	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar o navegador: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("erro ao conectar ao navegador: %w", err)
	}

	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("erro ao criar página stealth: %w", err)
	}

	logger.Info("Navegador iniciado")

	return &Session{
		launcher: l,
		browser:  browser,
		page:     page,
		logger:   logger,
	}, nil
}

// Locator expõe a página da sessão para o assistente
func (s *Session) Locator() *Locator {
	return NewLocator(s.page)
}

// Close fecha o navegador sem apagar o diretório de perfil
func (s *Session) Close() error {
	if err := s.browser.Close(); err != nil {
		s.logger.WithError(err).Warn("Erro ao fechar o navegador, encerrando o processo")
		s.launcher.Kill()
		return err
	}
	return nil
}
