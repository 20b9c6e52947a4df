// Package transcode turns uploaded videos into DASH renditions with ffmpeg.
package transcode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"postgate/internal/config"
)

const manifestName = "manifest.mpd"

type Options struct {
	MinBitrate int // kbps
	MaxBitrate int // kbps
}

// Quality is one video rendition of the DASH output.
type Quality struct {
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Bitrate int    `json:"bitrate"`
}

type Data struct {
	MPDPath   string    `json:"mpdPath"`
	Qualities []Quality `json:"qualities"`
}

// Result reports a transcode outcome. A failed transcode is a Result with
// Success false; the returned error is reserved for I/O problems.
type Result struct {
	Success bool   `json:"success"`
	Data    *Data  `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type Service interface {
	Config() config.TranscodeConfig
	Available(ctx context.Context) bool
	Transcode(ctx context.Context, input, outputDir string, opts Options) (Result, error)
}

// runFunc executes a command and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type FFmpeg struct {
	cfg    config.TranscodeConfig
	run    runFunc
	logger *slog.Logger
}

func NewFFmpeg(log *slog.Logger, cfg *config.Config) *FFmpeg {
	if log == nil {
		log = slog.Default()
	}
	return &FFmpeg{
		cfg:    cfg.Transcode,
		run:    execRun,
		logger: log.With(slog.String("service", "transcode")),
	}
}

func (f *FFmpeg) Config() config.TranscodeConfig {
	return f.cfg
}

// Available reports whether the configured ffmpeg binary runs.
func (f *FFmpeg) Available(ctx context.Context) bool {
	if _, err := exec.LookPath(f.cfg.FFmpegPath); err != nil {
		f.logger.Warn("ffmpeg not found", slog.String("path", f.cfg.FFmpegPath))
		return false
	}
	if _, err := f.run(ctx, f.cfg.FFmpegPath, "-hide_banner", "-version"); err != nil {
		f.logger.Warn("ffmpeg not runnable", slog.Any("error", err))
		return false
	}
	return true
}

// Ladder picks the renditions for a bitrate range, highest first.
func Ladder(opts Options) []Quality {
	lo, hi := opts.MinBitrate, opts.MaxBitrate
	if lo <= 0 {
		lo = 500
	}
	if hi < lo {
		hi = lo
	}

	ladder := []Quality{{Name: "1080p", Height: 1080, Bitrate: hi}}
	if mid := (lo + hi) / 2; mid != hi && mid != lo {
		ladder = append(ladder, Quality{Name: "720p", Height: 720, Bitrate: mid})
	}
	if lo != hi {
		ladder = append(ladder, Quality{Name: "480p", Height: 480, Bitrate: lo})
	}
	return ladder
}

func buildArgs(input, mpdPath string, qualities []Quality) []string {
	args := []string{"-hide_banner", "-y", "-i", input}
	for range qualities {
		args = append(args, "-map", "0:v:0")
	}
	args = append(args, "-map", "0:a:0?")

	for i, q := range qualities {
		idx := strconv.Itoa(i)
		args = append(args,
			"-c:v:"+idx, "libx264",
			"-b:v:"+idx, fmt.Sprintf("%dk", q.Bitrate),
			"-filter:v:"+idx, fmt.Sprintf("scale=-2:%d", q.Height),
		)
	}
	args = append(args,
		"-c:a", "aac",
		"-b:a", "128k",
		"-f", "dash",
		"-seg_duration", "4",
		"-use_template", "1",
		"-use_timeline", "1",
		"-adaptation_sets", "id=0,streams=v id=1,streams=a",
		mpdPath,
	)
	return args
}

// Transcode writes outputDir/<input name>/manifest.mpd plus its segments.
func (f *FFmpeg) Transcode(ctx context.Context, input, outputDir string, opts Options) (Result, error) {
	if _, err := os.Stat(input); err != nil {
		return Result{}, fmt.Errorf("transcode input: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := filepath.Join(outputDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	qualities := Ladder(opts)
	mpdPath := filepath.Join(dir, manifestName)

	f.logger.Info("transcoding", slog.String("input", input), slog.Int("renditions", len(qualities)))
	out, err := f.run(ctx, f.cfg.FFmpegPath, buildArgs(input, mpdPath, qualities)...)
	if err != nil {
		f.logger.Warn("ffmpeg failed", slog.Any("error", err), slog.String("output", tail(string(out), 512)))
		_ = os.RemoveAll(dir)
		return Result{Success: false, Message: fmt.Sprintf("ffmpeg failed: %v", err)}, nil
	}
	if _, err := os.Stat(mpdPath); err != nil {
		_ = os.RemoveAll(dir)
		return Result{Success: false, Message: "ffmpeg produced no manifest"}, nil
	}

	return Result{
		Success: true,
		Data:    &Data{MPDPath: filepath.ToSlash(mpdPath), Qualities: qualities},
	}, nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
