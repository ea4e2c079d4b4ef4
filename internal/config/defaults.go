package config

const (
	defaultDataDir            = "~/.local/share/playbox"
	defaultLogDir             = "~/.local/share/playbox/logs"
	defaultContentStoreURL    = "https://cdn.playbox.example/assets"
	defaultRequestTimeout     = 10
	defaultProbeConcurrency   = 16
	defaultSynthImageModel    = "imagen-3.0-generate-002"
	defaultSynthSpeechModel   = "gemini-2.5-flash-preview-tts"
	defaultSynthVoice         = "Leda"
	defaultSynthTimeout       = 120
	defaultStickerThreshold   = 10
	defaultBigRewardThreshold = 20
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		ContentStore: ContentStore{
			BaseURL:          defaultContentStoreURL,
			RequestTimeout:   defaultRequestTimeout,
			ProbeConcurrency: defaultProbeConcurrency,
		},
		Synth: Synth{
			ImageModel:     defaultSynthImageModel,
			SpeechModel:    defaultSynthSpeechModel,
			Voice:          defaultSynthVoice,
			TimeoutSeconds: defaultSynthTimeout,
		},
		Reward: Reward{
			StickerThreshold:   defaultStickerThreshold,
			BigRewardThreshold: defaultBigRewardThreshold,
		},
		Notifications: Notifications{
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
