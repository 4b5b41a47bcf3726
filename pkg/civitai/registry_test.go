package civitai_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/civitai-community/civitai-client/pkg/civitai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	t.Parallel()
	t.Run("registers and resolves both directions", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()
		require.NoError(t, registry.Register("ModelType", "Lora", "LORA"))

		wire, err := registry.ToWire("ModelType", "Lora")
		require.NoError(t, err)
		assert.Equal(t, "LORA", wire)

		variant, err := registry.FromWire("ModelType", "LORA")
		require.NoError(t, err)
		assert.Equal(t, "Lora", variant)
	})

	t.Run("idempotent for identical mapping", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()
		require.NoError(t, registry.Register("ModelType", "Lora", "LORA"))
		require.NoError(t, registry.Register("ModelType", "Lora", "LORA"))
		assert.Equal(t, 1, registry.Count())
	})

	t.Run("conflicting wire string fails", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()
		require.NoError(t, registry.Register("ModelType", "Lora", "LORA"))

		err := registry.Register("ModelType", "Lora", "lora")
		require.Error(t, err)
		assert.ErrorIs(t, err, civitai.ErrDuplicateMapping)
	})

	t.Run("conflicting variant for same wire string fails", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()
		require.NoError(t, registry.Register("ModelType", "Lora", "LORA"))

		err := registry.Register("ModelType", "LowRankAdaptation", "LORA")
		require.Error(t, err)
		assert.ErrorIs(t, err, civitai.ErrDuplicateMapping)
	})

	t.Run("same wire string allowed across enum types", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()
		require.NoError(t, registry.Register("ModelSort", "Newest", "Newest"))
		require.NoError(t, registry.Register("ImageSort", "Newest", "Newest"))
		assert.Equal(t, 2, registry.Count())
	})
}

func TestRegistry_Lookups(t *testing.T) {
	t.Parallel()
	t.Run("unmapped variant", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()

		_, err := registry.ToWire("ModelType", "Bogus")
		require.Error(t, err)
		assert.ErrorIs(t, err, civitai.ErrUnmappedVariant)
	})

	t.Run("unknown wire value", func(t *testing.T) {
		t.Parallel()

		registry := civitai.NewRegistry()
		require.NoError(t, registry.Register("ModelType", "Lora", "LORA"))

		_, err := registry.FromWire("ModelType", "UNKNOWN_STATUS")
		require.Error(t, err)
		assert.ErrorIs(t, err, civitai.ErrUnknownWireValue)
	})
}

func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	registry := civitai.NewRegistry()
	civitai.RegisterSharedEnums(registry)
	civitai.RegisterModelEnums(registry)
	civitai.RegisterImageEnums(registry)

	for _, entry := range registry.Entries() {
		wire, err := registry.ToWire(entry.EnumType, entry.Variant)
		require.NoError(t, err)

		variant, err := registry.FromWire(entry.EnumType, wire)
		require.NoError(t, err)
		assert.Equal(t, entry.Variant, variant, "round trip for %s.%s", entry.EnumType, entry.Variant)
	}
}

func TestRegistry_FeatureRegistrationCommutes(t *testing.T) {
	t.Parallel()

	// Two registries populated in opposite feature order must end up equal.
	first := civitai.NewRegistry()
	civitai.RegisterSharedEnums(first)
	civitai.RegisterModelEnums(first)
	civitai.RegisterImageEnums(first)

	second := civitai.NewRegistry()
	civitai.RegisterImageEnums(second)
	civitai.RegisterModelEnums(second)
	civitai.RegisterSharedEnums(second)

	assert.Equal(t, first.Count(), second.Count())

	for _, entry := range first.Entries() {
		wire, err := second.ToWire(entry.EnumType, entry.Variant)
		require.NoError(t, err)
		assert.Equal(t, entry.Wire, wire)
	}
}

func TestRegistry_RepeatedFeatureRegistrationIsIdempotent(t *testing.T) {
	t.Parallel()

	registry := civitai.NewRegistry()
	civitai.RegisterModelEnums(registry)

	count := registry.Count()

	// A second feature module registering the same mappings is a no-op.
	require.NotPanics(t, func() {
		civitai.RegisterModelEnums(registry)
	})
	assert.Equal(t, count, registry.Count())

	// A conflicting registration is a programming error and fails loudly.
	require.Panics(t, func() {
		registry.MustRegister("ModelType", "Lora", "lora")
	})
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	registry := civitai.NewRegistry()

	var wg sync.WaitGroup

	register := []func(*civitai.Registry){
		civitai.RegisterSharedEnums,
		civitai.RegisterModelEnums,
		civitai.RegisterImageEnums,
	}

	for n := 0; n < 8; n++ {
		for _, fn := range register {
			fn := fn

			wg.Add(1)

			go func() {
				defer wg.Done()
				fn(registry)
			}()
		}
	}

	wg.Wait()

	wire, err := registry.ToWire("ModelType", "Lora")
	require.NoError(t, err)
	assert.Equal(t, "LORA", wire)
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry := civitai.DefaultRegistry()
	require.NotNil(t, registry)
	assert.Same(t, registry, civitai.DefaultRegistry())

	wire, err := registry.ToWire("ModelType", string(civitai.ModelTypeLora))
	require.NoError(t, err)
	assert.Equal(t, "LORA", wire)
}

func TestParseHelpers(t *testing.T) {
	t.Parallel()

	modelType, err := civitai.ParseModelType("LORA")
	require.NoError(t, err)
	assert.Equal(t, civitai.ModelTypeLora, modelType)

	sortOrder, err := civitai.ParseModelSort("Most Downloaded")
	require.NoError(t, err)
	assert.Equal(t, civitai.ModelSortMostDownloaded, sortOrder)

	period, err := civitai.ParsePeriod("AllTime")
	require.NoError(t, err)
	assert.Equal(t, civitai.PeriodAllTime, period)

	level, err := civitai.ParseNSFWLevel("Soft")
	require.NoError(t, err)
	assert.Equal(t, civitai.NSFWLevelSoft, level)

	_, err = civitai.ParseModelType("not-a-type")
	require.True(t, errors.Is(err, civitai.ErrUnknownWireValue))
}
