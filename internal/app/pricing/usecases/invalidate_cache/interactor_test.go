package invalidate_cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/tests/testutil"
)

func TestInteractor_Execute(t *testing.T) {
	source := testutil.NewFakePricingSource(testutil.DefaultSettings(""), nil, nil)
	clk := clock.NewMockClock(time.Now())
	ldr := loader.New(source, clk, time.Hour)

	_, err := ldr.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, source.SettingsFetches)

	NewInteractor(ldr).Execute()

	_, err = ldr.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.SettingsFetches)
}
