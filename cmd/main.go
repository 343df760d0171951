package main

import (
	"fmt"
	"log"
	"os"

	"github.com/brandquad/decomposer"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const (
	PublishInline    = "inline"
	PublishDirectory = "directory"
	PublishS3        = "s3"

	ThumbnailsNative      = "native"
	ThumbnailsLibreOffice = "libreoffice"
)

type Config struct {
	TempDir             string   `envconfig:"DECOMPOSER_TEMP_DIR"`
	OutputDir           string   `envconfig:"DECOMPOSER_OUTPUT_DIR" default:"./output" validate:"required_if=Publish directory"`
	Publish             string   `envconfig:"DECOMPOSER_PUBLISH" default:"inline" validate:"oneof=inline directory s3"`
	Thumbnails          string   `envconfig:"DECOMPOSER_THUMBNAILS" default:"native" validate:"oneof=native libreoffice"`
	LibreOfficePath     string   `envconfig:"DECOMPOSER_LIBREOFFICE_PATH"`
	FontDirs            []string `envconfig:"DECOMPOSER_FONT_DIRS"`
	UploadWorkers       int      `envconfig:"DECOMPOSER_UPLOAD_WORKERS" default:"10" validate:"min=1,max=100"`
	MaxCpuCount         int      `envconfig:"MAX_CPU_COUNT" default:"4" validate:"min=1"`
	DebugMode           bool     `envconfig:"DECOMPOSER_DEBUG" default:"false"`
	KeepPlaceholderFill bool     `envconfig:"DECOMPOSER_KEEP_PLACEHOLDER_FILL" default:"false"`
	S3Host              string   `envconfig:"DECOMPOSER_S3_HOST" validate:"required_if=Publish s3"`
	S3Key               string   `envconfig:"DECOMPOSER_S3_KEY" validate:"required_if=Publish s3"`
	S3Secret            string   `envconfig:"DECOMPOSER_S3_SECRET" validate:"required_if=Publish s3"`
	S3Bucket            string   `envconfig:"DECOMPOSER_BUCKET" default:"decomposer"`
}

func loadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

func (c Config) EngineConfig() decomposer.Config {
	return decomposer.Config{
		TempDir:             c.TempDir,
		DebugMode:           c.DebugMode,
		KeepPlaceholderFill: c.KeepPlaceholderFill,
	}
}

func (c Config) S3() decomposer.S3Config {
	return decomposer.S3Config{
		Host:   c.S3Host,
		Key:    c.S3Key,
		Secret: c.S3Secret,
		Bucket: c.S3Bucket,
	}
}

// startVips brings libvips up for the lifetime of a command.
func startVips(c *Config) func() {
	vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
	vips.Startup(&vips.Config{
		ConcurrencyLevel: c.MaxCpuCount,
	})
	return vips.Shutdown
}

var rootCmd = &cobra.Command{
	Use:           "decomposer",
	Short:         "Slide deck decomposition",
	Long:          "Decomposes presentations into per-shape rasters, slide thumbnails, isolated backgrounds and a structured description of every shape.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		log.Println("[!]", err)
		os.Exit(1)
	}
}
