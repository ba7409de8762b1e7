package config

import (
	"flag"
	"strings"
	"time"
)

// Flag loads the configuration file when the flag is set.
// It should be specified before other configuration flags since loading
// the file replaces the whole configuration.
type Flag struct {
	File   string
	Config *Configuration
	IsSet  bool
}

func (f *Flag) Set(path string) error {
	f.File = path

	cfg, err := FromFile(path)
	if err != nil {
		return err
	}

	*f.Config = cfg
	f.IsSet = true

	return nil
}

func (f *Flag) String() string {
	return f.File
}

// ListFlag sets a list of words from a comma-separated string.
type ListFlag struct {
	Values *[]string
}

func (f ListFlag) Set(s string) error {
	var values []string

	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}

	*f.Values = values

	return nil
}

func (f ListFlag) String() string {
	if f.Values == nil {
		return ""
	}
	return strings.Join(*f.Values, ",")
}

// AddFlags registers a flag for each configuration field.
// The returned flag loads a configuration file.
func AddFlags(flags *flag.FlagSet, cfg *Configuration) *Flag {
	configFlag := &Flag{Config: cfg}

	flags.Var(configFlag, "config", "Path to the configuration file")
	flags.StringVar(&cfg.ModelPath, "model-path", cfg.ModelPath, "path to the speech recognition model")
	flags.StringVar(&cfg.STTEngine, "stt-engine", cfg.STTEngine, "speech recognition engine (vosk or whisper)")
	flags.StringVar(&cfg.STTLanguage, "stt-language", cfg.STTLanguage, "language spoken to the whisper engine")
	flags.StringVar(&cfg.InputDevice, "input-device", cfg.InputDevice, "name or ID or the audio input device")
	flags.StringVar(&cfg.OutputDevice, "output-device", cfg.OutputDevice, "name or ID or the audio output device")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "path to the conversation log file")
	flags.StringVar(&cfg.DiagnosticsFile, "diagnostics-file", cfg.DiagnosticsFile, "path to the file the terminal UI writes log messages to")
	flags.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "path to a YAML file with questions, answers and keywords replacing the built-in ones")
	flags.StringVar(&cfg.ActivationWord, "activation-word", cfg.ActivationWord, "word used to activate the assistant")
	flags.Var(ListFlag{Values: &cfg.ExitWords}, "exit-words", "comma-separated words that stop the assistant")
	flags.BoolVar(&cfg.WholeWordCommands, "whole-word-commands", cfg.WholeWordCommands, "match activation and exit words as whole words only")
	flags.DurationVar((*time.Duration)(&cfg.StandbyListenTimeout), "standby-timeout", cfg.StandbyListenTimeout.Duration(), "listen timeout while waiting for the activation word")
	flags.DurationVar((*time.Duration)(&cfg.EngagedListenTimeout), "engaged-timeout", cfg.EngagedListenTimeout.Duration(), "listen timeout while answering questions")
	flags.IntVar(&cfg.MaxEmptyListens, "max-empty-listens", cfg.MaxEmptyListens, "number of listens without speech after which the assistant returns to standby")
	flags.StringVar(&cfg.Voice, "voice", cfg.Voice, "espeak voice name")
	flags.IntVar(&cfg.SpeechRate, "speech-rate", cfg.SpeechRate, "speech rate in words per minute")
	flags.StringVar(&cfg.EspeakBinary, "espeak", cfg.EspeakBinary, "path to the espeak-ng binary")
	flags.BoolVar(&cfg.Chime, "chime", cfg.Chime, "play a sound when the assistant gets activated")

	return configFlag
}
