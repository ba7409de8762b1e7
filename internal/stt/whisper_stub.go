//go:build !whisper

package stt

import "fmt"

// NewWhisperModel fails since the binary was built without whisper.cpp.
func NewWhisperModel(path, language string) (Model, error) {
	return nil, fmt.Errorf("the %s engine is not available, build with -tags whisper to enable it", EngineWhisper)
}
