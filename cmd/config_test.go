package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "textaug", configBaseName)
	assert.Equal(t, "textaug.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "parallel", threadsFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "augment.threads", threadsConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, 1, defaultThreads)
	assert.Equal(t, "TEXTAUG", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestPolicyFromConfig(t *testing.T) {
	t.Run("unset keys stay nil", func(t *testing.T) {
		policy := policyFromConfig("count.unused")
		assert.Nil(t, policy.Min)
		assert.Nil(t, policy.Max)
		assert.Nil(t, policy.Fraction)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("TEXTAUG_COUNT_TEST_MIN", "2")
		t.Setenv("TEXTAUG_COUNT_TEST_P", "0.25")

		policy := policyFromConfig("count.test")
		require.NotNil(t, policy.Min)
		require.NotNil(t, policy.Fraction)
		assert.Equal(t, 2, *policy.Min)
		assert.Nil(t, policy.Max)
		assert.InDelta(t, 0.25, *policy.Fraction, 1e-12)
	})
}

func TestOptionalSeed(t *testing.T) {
	t.Setenv("TEXTAUG_AUGMENT_SEED", "12345")

	seed := optionalSeed()
	require.NotNil(t, seed)
	assert.Equal(t, uint64(12345), *seed)
}
