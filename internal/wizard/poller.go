package wizard

import (
	"context"
	"time"
)

const (
	DefaultWaitTimeout = 10 * time.Second
	// aproximadamente um quadro a 60Hz
	DefaultPollInterval = 16 * time.Millisecond
)

// Condition informa se o estado esperado já foi alcançado
type Condition func(ctx context.Context) (bool, error)

// Poller repete uma condição até ela ser verdadeira ou o prazo acabar
type Poller struct {
	clock    Clock
	timeout  time.Duration
	interval time.Duration
}

func NewPoller(clock Clock, timeout, interval time.Duration) *Poller {
	if clock == nil {
		clock = RealClock()
	}
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poller{
		clock:    clock,
		timeout:  timeout,
		interval: interval,
	}
}

// WaitFor avalia cond imediatamente e depois a cada intervalo.
// Retorna ErrTimeout quando o prazo vence sem a condição ser satisfeita.
func (p *Poller) WaitFor(ctx context.Context, cond Condition) error {
	deadline := p.clock.Now().Add(p.timeout)

	for {
		ok, err := cond(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		if !p.clock.Now().Before(deadline) {
			return ErrTimeout
		}

		if err := p.clock.Sleep(ctx, p.interval); err != nil {
			return err
		}
	}
}
