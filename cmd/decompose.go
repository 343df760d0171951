package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/brandquad/decomposer"
	"github.com/brandquad/decomposer/native"
	"github.com/brandquad/decomposer/pptxmodel"
	"github.com/brandquad/decomposer/soffice"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	decomposeOutput string
	slideOutput     string
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <path|url>",
	Short: "Decompose every slide of a presentation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecompose,
}

var slideCmd = &cobra.Command{
	Use:   "slide <path|url> <index>",
	Short: "Decompose a single slide",
	Args:  cobra.ExactArgs(2),
	RunE:  runSlide,
}

func init() {
	decomposeCmd.Flags().StringVarP(&decomposeOutput, "out", "o", "", "Path to the result JSON file (default stdout)")
	slideCmd.Flags().StringVarP(&slideOutput, "out", "o", "", "Path to the slide JSON file (default stdout)")

	rootCmd.AddCommand(decomposeCmd, slideCmd)
}

func runDecompose(_ *cobra.Command, args []string) error {
	st := time.Now()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	defer startVips(c)()

	filePath, basename, cleanup, err := resolveSource(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := newDecomposer(c).Open(filePath)
	if err != nil {
		return err
	}
	defer p.Close()

	out, err := newOutput(c, basename)
	if err != nil {
		return err
	}
	defer out.cleanup()

	result := decomposer.NewProcessingResult(p.SlideCount(), p.FrameSize)
	runErr := func() error {
		for slide, err := range p.Slides() {
			if err != nil {
				return err
			}
			published, err := out.delivery.Publish(slide)
			if err != nil {
				return err
			}
			result.Add(published)
		}
		return out.finish()
	}()
	result.Finish(runErr)

	if err := writeJSON(decomposeOutput, result); err != nil {
		return err
	}
	log.Printf("[<] Decomposed %s: %d slides, at %s", basename, result.ProcessedSlides, time.Since(st))
	return runErr
}

func runSlide(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("slide index: %w", err)
	}
	c, err := loadConfig()
	if err != nil {
		return err
	}
	defer startVips(c)()

	filePath, basename, cleanup, err := resolveSource(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	slide, err := newDecomposer(c).DecomposeSlide(filePath, index)
	if err != nil {
		return err
	}

	out, err := newOutput(c, basename)
	if err != nil {
		return err
	}
	defer out.cleanup()

	published, err := out.delivery.Publish(slide)
	if err != nil {
		return err
	}
	if err := out.finish(); err != nil {
		return err
	}
	return writeJSON(slideOutput, published)
}

func newDecomposer(c *Config) *decomposer.Decomposer {
	var opts []decomposer.Option
	if c.Thumbnails == ThumbnailsLibreOffice {
		opts = append(opts, decomposer.WithThumbnailSource(soffice.New(c.LibreOfficePath, c.TempDir)))
	}
	return decomposer.New(
		native.Backend{FontDirs: c.FontDirs},
		pptxmodel.Opener{},
		c.EngineConfig(),
		opts...,
	)
}

// output is the delivery side of a command: the publisher, its pool and the
// staging directory of an S3 upload.
type output struct {
	delivery *decomposer.Delivery
	staging  string
	s3       *decomposer.S3Config
	closed   bool
}

func newOutput(c *Config, basename string) (*output, error) {
	switch c.Publish {
	case PublishDirectory:
		return &output{
			delivery: decomposer.NewDelivery(decomposer.DirectoryPublisher{Root: c.OutputDir}, basename, c.UploadWorkers),
		}, nil
	case PublishS3:
		root := c.TempDir
		if root == "" {
			root = os.TempDir()
		}
		staging := filepath.Join(root, "staging-"+uuid.NewString())
		if err := os.MkdirAll(staging, decomposer.DefaultFolderPerm); err != nil {
			return nil, err
		}
		s3 := c.S3()
		return &output{
			delivery: decomposer.NewDelivery(decomposer.DirectoryPublisher{Root: staging}, basename, c.UploadWorkers),
			staging:  staging,
			s3:       &s3,
		}, nil
	}
	return &output{
		delivery: decomposer.NewDelivery(decomposer.InlinePublisher{}, basename, c.UploadWorkers),
	}, nil
}

// finish drains the pool and mirrors the staging directory.
func (o *output) finish() error {
	o.closed = true
	if err := o.delivery.Close(); err != nil {
		return err
	}
	if o.s3 == nil {
		return nil
	}
	return decomposer.SyncToS3(o.staging, "", *o.s3)
}

func (o *output) cleanup() {
	if !o.closed {
		o.delivery.Close()
	}
	if o.staging != "" {
		if err := os.RemoveAll(o.staging); err != nil {
			log.Printf("[!] Error removing staging directory: %v", err)
		}
	}
}

// resolveSource downloads URLs to a temporary file. basename names the
// artifacts of the document.
func resolveSource(source string) (filePath, basename string, cleanup func(), err error) {
	cleanup = func() {}
	name := source
	if decomposer.IsURL(source) {
		u, err := url.Parse(source)
		if err != nil {
			return "", "", cleanup, err
		}
		name = path.Base(u.Path)

		f, err := decomposer.DownloadFileTemporary(source)
		if err != nil {
			return "", "", cleanup, fmt.Errorf("download %s: %w", source, err)
		}
		f.Close()
		filePath = f.Name()
		cleanup = func() { os.Remove(filePath) }
	} else {
		if _, err := os.Stat(source); err != nil {
			return "", "", cleanup, err
		}
		filePath = source
	}
	basename = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return filePath, basename, cleanup, nil
}

func writeJSON(target string, v any) error {
	buffer, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if target == "" {
		_, err = os.Stdout.Write(append(buffer, '\n'))
		return err
	}
	return os.WriteFile(target, buffer, 0644)
}
