// Package whisper implements speech.Recognizer on top of a whisper.cpp server.
//
// Each Recognize call records one fixed-length utterance with a platform
// recorder command (arecord by default) that writes 16-bit signed
// little-endian mono PCM to stdout, wraps it in a WAV container and POSTs it
// to the server's /inference endpoint.
//
// Usage:
//
//	r := whisper.New("http://localhost:8080",
//	    whisper.WithLanguage("en"),
//	    whisper.WithDuration(3*time.Second),
//	)
//	text, err := r.Recognize(ctx)
package whisper

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/speakup/internal/speech"
)

const (
	bitsPerSample = 16
	channels      = 1

	defaultLanguage   = "en"
	defaultSampleRate = 16000
	defaultDuration   = 3 * time.Second
	defaultRecorder   = "arecord"
	backendName       = "whisper"
)

var _ speech.Recognizer = (*Recognizer)(nil)

var errNoServer = errors.New("whisper: no server configured")

// RecordFunc captures raw PCM audio for at most d.
type RecordFunc func(ctx context.Context, d time.Duration) ([]byte, error)

// Option is a functional option for configuring a Recognizer.
type Option func(*Recognizer)

// WithLanguage sets the language code sent to the server. Defaults to "en".
func WithLanguage(lang string) Option {
	return func(r *Recognizer) {
		if lang != "" {
			r.language = lang
		}
	}
}

// WithModel sets the model identifier forwarded to the server.
func WithModel(model string) Option {
	return func(r *Recognizer) {
		r.model = model
	}
}

// WithDuration sets how long one capture records. Defaults to 3s.
func WithDuration(d time.Duration) Option {
	return func(r *Recognizer) {
		if d > 0 {
			r.duration = d
		}
	}
}

// WithRecorderCommand sets the recorder binary. It is invoked with
// arecord-compatible flags.
func WithRecorderCommand(cmd string) Option {
	return func(r *Recognizer) {
		if cmd != "" {
			r.recorderCmd = cmd
		}
	}
}

// WithRecordFunc replaces the recorder command entirely.
func WithRecordFunc(fn RecordFunc) Option {
	return func(r *Recognizer) {
		r.record = fn
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Recognizer) {
		r.httpClient = c
	}
}

// Recognizer is a single-shot whisper.cpp-backed speech.Recognizer.
type Recognizer struct {
	serverURL   string
	language    string
	model       string
	sampleRate  int
	duration    time.Duration
	recorderCmd string
	record      RecordFunc
	httpClient  *http.Client
	lookPath    func(string) (string, error)
}

// New creates a Recognizer for the server at serverURL. An empty serverURL
// yields a Recognizer that reports itself unavailable.
func New(serverURL string, opts ...Option) *Recognizer {
	r := &Recognizer{
		serverURL:   strings.TrimRight(serverURL, "/"),
		language:    defaultLanguage,
		sampleRate:  defaultSampleRate,
		duration:    defaultDuration,
		recorderCmd: defaultRecorder,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		lookPath:    exec.LookPath,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Available reports whether a server is configured and a recorder exists.
func (r *Recognizer) Available() bool {
	if r.serverURL == "" {
		return false
	}
	if r.record != nil {
		return true
	}
	_, err := r.lookPath(r.recorderCmd)
	return err == nil
}

// Recognize records one utterance and returns its transcript.
func (r *Recognizer) Recognize(ctx context.Context) (string, error) {
	if !r.Available() {
		return "", speech.ErrUnavailable
	}

	record := r.record
	if record == nil {
		record = r.runRecorder
	}
	pcm, err := record(ctx, r.duration)
	if err != nil {
		return "", &speech.CaptureError{Backend: backendName, Reason: "could not record", Err: err}
	}
	if len(pcm) == 0 {
		return "", &speech.CaptureError{Backend: backendName, Reason: "no audio", Err: speech.ErrNoSpeech}
	}

	text, err := r.infer(ctx, pcm)
	if err != nil {
		return "", &speech.CaptureError{Backend: backendName, Reason: "could not transcribe", Err: err}
	}
	text = cleanTranscript(text)
	if text == "" {
		return "", &speech.CaptureError{Backend: backendName, Reason: "no speech heard", Err: speech.ErrNoSpeech}
	}
	return text, nil
}

// runRecorder shells out to an arecord-compatible recorder.
func (r *Recognizer) runRecorder(ctx context.Context, d time.Duration) ([]byte, error) {
	secs := max(1, int((d+time.Second-1)/time.Second))
	cmd := exec.CommandContext(ctx, r.recorderCmd,
		"-q",
		"-f", "S16_LE",
		"-r", strconv.Itoa(r.sampleRate),
		"-c", strconv.Itoa(channels),
		"-t", "raw",
		"-d", strconv.Itoa(secs),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", r.recorderCmd, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", r.recorderCmd, err)
	}
	return out, nil
}

// infer encodes pcm as a WAV file and POSTs it to the /inference endpoint as
// multipart/form-data.
func (r *Recognizer) infer(ctx context.Context, pcm []byte) (string, error) {
	wav := encodeWAV(pcm, r.sampleRate, channels)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", fmt.Errorf("whisper: create form file: %w", err)
	}
	if _, err := fw.Write(wav); err != nil {
		return "", fmt.Errorf("whisper: write wav data: %w", err)
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("whisper: write response_format field: %w", err)
	}
	if r.language != "" {
		if err := mw.WriteField("language", r.language); err != nil {
			return "", fmt.Errorf("whisper: write language field: %w", err)
		}
	}
	if r.model != "" {
		if err := mw.WriteField("model", r.model); err != nil {
			return "", fmt.Errorf("whisper: write model field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("whisper: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.serverURL+"/inference", &body)
	if err != nil {
		return "", fmt.Errorf("whisper: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper: http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper: server returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whisper: read response body: %w", err)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("whisper: parse JSON response: %w", err)
	}
	return result.Text, nil
}

// Ping checks that the server answers.
func (r *Recognizer) Ping(ctx context.Context) error {
	if r.serverURL == "" {
		return errNoServer
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.serverURL+"/", nil)
	if err != nil {
		return fmt.Errorf("whisper: create request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whisper: ping: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("whisper: server returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// cleanTranscript drops whisper.cpp's non-speech markers such as
// "[BLANK_AUDIO]" or "(wind blowing)".
func cleanTranscript(text string) string {
	var b strings.Builder
	depth := 0
	for _, c := range text {
		switch c {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(c)
			}
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// encodeWAV wraps raw 16-bit signed little-endian PCM data in a standard
// RIFF/WAV container.
func encodeWAV(pcm []byte, sampleRate, channels int) []byte {
	bps := bitsPerSample
	byteRate := sampleRate * channels * bps / 8
	blockAlign := channels * bps / 8
	dataSize := len(pcm)

	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(bps))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))
	copy(buf[44:], pcm)

	return buf
}
