package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier falls back to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	assert.Equal(t, "", config.GetModel(TierStandard))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierStandard))
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &GenerationError{Message: "rate limited", Retryable: true, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "rate limited")
}
