package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dailysale/infrastructure/integrator/license"
)

func TestExplainLicenseError(t *testing.T) {
	balance := 2

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"sem chave sugere set-key", license.ErrNoKeyConfigured, "set-key"},
		{"saldo insuficiente mostra o saldo", &license.CheckError{Err: license.ErrInsufficientCredits, RemainingCredits: &balance}, "saldo atual: 2"},
		{"outros erros passam sem alteração", errors.New("timeout"), "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := explainLicenseError(tt.err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSingleArg(t *testing.T) {
	id, err := singleArg([]string{"multi-1-0-abc123"}, "sale-id")
	require.NoError(t, err)
	assert.Equal(t, "multi-1-0-abc123", id)

	_, err = singleArg(nil, "sale-id")
	assert.ErrorContains(t, err, "sale-id")

	_, err = singleArg([]string{"a", "b"}, "sale-id")
	assert.Error(t, err)
}
