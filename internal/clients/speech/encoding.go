package speech

import (
	"bytes"
	"fmt"
	"path"
	"strings"
)

const (
	encodingWebMOpus = "WEBM_OPUS"
	encodingOggOpus  = "OGG_OPUS"

	// browser recorders always produce 48 kHz Opus
	defaultOpusSampleRate = 48000
)

// Encoding is how the recognizer should decode one audio format. The zero
// value leaves decoding to the file header, which works for FLAC and WAV.
type Encoding struct {
	Name            string
	SampleRateHertz int64
}

// EncodingForName picks the encoding from a file or object name extension.
// Unknown extensions fall back to header detection.
func EncodingForName(name string, opusSampleRate int64) (Encoding, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".webm":
		return Encoding{Name: encodingWebMOpus, SampleRateHertz: opusSampleRate}, nil
	case ".ogg", ".oga", ".opus":
		return Encoding{Name: encodingOggOpus, SampleRateHertz: opusSampleRate}, nil
	case ".mp3":
		return Encoding{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	default:
		return Encoding{}, nil
	}
}

var (
	webmMagic = []byte{0x1A, 0x45, 0xDF, 0xA3}
	oggMagic  = []byte("OggS")
	id3Magic  = []byte("ID3")
)

// EncodingForContent sniffs the container from the first bytes of the audio
func EncodingForContent(audio []byte, opusSampleRate int64) (Encoding, error) {
	switch {
	case bytes.HasPrefix(audio, webmMagic):
		return Encoding{Name: encodingWebMOpus, SampleRateHertz: opusSampleRate}, nil
	case bytes.HasPrefix(audio, oggMagic):
		return Encoding{Name: encodingOggOpus, SampleRateHertz: opusSampleRate}, nil
	case bytes.HasPrefix(audio, id3Magic), len(audio) > 1 && audio[0] == 0xFF && audio[1]&0xE0 == 0xE0:
		return Encoding{}, fmt.Errorf("%w: mp3", ErrUnsupportedFormat)
	default:
		return Encoding{}, nil
	}
}
