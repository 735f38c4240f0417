package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erc7824/nitrolite/txsigner/pkg/log"
)

func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	_, isNoop := log.FromContext(ctx).(log.NoopLogger)
	assert.True(t, isNoop)

	ctx = log.SetContextLogger(ctx, log.NewZapLogger(log.Config{}))
	_, isZap := log.FromContext(ctx).(*log.ZapLogger)
	assert.True(t, isZap)

	ctx = log.SetContextLogger(ctx, nil)
	_, isNoop = log.FromContext(ctx).(log.NoopLogger)
	assert.True(t, isNoop)
}

func TestNoopLogger(t *testing.T) {
	lg := log.NewNoopLogger()
	lg.Info("ignored", "k", "v")

	assert.Equal(t, "noop", lg.WithName("x").Name())
	assert.Empty(t, lg.WithKV("k", "v").GetAllKV())
	assert.Equal(t, lg, lg.AddCallerSkip(3))
}
