package decomposer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alitto/pond"
	"github.com/brandquad/decomposer/colorutils"
	"github.com/google/uuid"
)

// DefaultUploadWorkers bounds the delivery pool.
const DefaultUploadWorkers = 10

// Publisher stores one artifact under key and returns how consumers reach
// it: inline data, a path or a URL.
type Publisher interface {
	Publish(key string, data []byte) (string, error)
}

// InlinePublisher embeds artifacts as base64 text.
type InlinePublisher struct{}

func (InlinePublisher) Publish(_ string, data []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(data), nil
}

// DirectoryPublisher writes artifacts below Root and returns their keys.
type DirectoryPublisher struct {
	Root string
}

func (p DirectoryPublisher) Publish(key string, data []byte) (string, error) {
	target := filepath.Join(p.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), DefaultFolderPerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", err
	}
	return key, nil
}

// PublishedSlide is a Slide whose rasters were replaced by references.
type PublishedSlide struct {
	Index           int               `json:"index"`
	Shapes          map[string]string `json:"shapes"`
	Structure       []*Shape          `json:"structure"`
	Thumbnail       *string           `json:"thumbnail"`
	Background      *string           `json:"background"`
	BackgroundColor colorutils.RGBA   `json:"background_color"`
	FrameSize       FrameSize         `json:"frame_size"`
}

// SlideKeyPrefix is the storage prefix of the artifacts of one slide.
func SlideKeyPrefix(basename string, index int) string {
	return fmt.Sprintf("processed/%s/slide_%d", basename, index)
}

// Delivery publishes slide artifacts through a bounded worker pool. The
// pool only sees finished byte buffers.
type Delivery struct {
	pool      *pond.WorkerPool
	publisher Publisher
	basename  string
}

func NewDelivery(publisher Publisher, basename string, workers int) *Delivery {
	if workers <= 0 {
		workers = DefaultUploadWorkers
	}
	panicHandler := func(p interface{}) {
		log.Printf("[!] Upload task panicked: %v", p)
	}
	return &Delivery{
		pool:      pond.New(workers, 1000, pond.MinWorkers(workers), pond.PanicHandler(panicHandler)),
		publisher: publisher,
		basename:  basename,
	}
}

// Publish uploads every raster of slide and returns the slide with
// references in place of bytes.
func (d *Delivery) Publish(slide *Slide) (*PublishedSlide, error) {
	st := time.Now()
	prefix := SlideKeyPrefix(d.basename, slide.Index)

	out := &PublishedSlide{
		Index:           slide.Index,
		Shapes:          make(map[string]string, len(slide.Shapes)),
		Structure:       slide.Structure,
		BackgroundColor: slide.BackgroundColor,
		FrameSize:       slide.FrameSize,
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	group := d.pool.Group()
	submit := func(key string, data []byte, store func(string)) {
		group.Submit(func() {
			ref, err := d.publisher.Publish(key, data)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("publish %s: %w", key, err))
				return
			}
			store(ref)
		})
	}

	for name, data := range slide.Shapes {
		submit(fmt.Sprintf("%s/%s.png", prefix, name), data, func(ref string) {
			out.Shapes[name] = ref
		})
	}
	if slide.Thumbnail != nil {
		submit(prefix+"/thumbnail.png", slide.Thumbnail, func(ref string) { out.Thumbnail = &ref })
	}
	if slide.Background != nil {
		submit(prefix+"/background.png", slide.Background, func(ref string) { out.Background = &ref })
	}
	group.Wait()

	log.Printf("[<] Published slide %d, %d artifacts at %s", slide.Index, len(out.Shapes), time.Since(st))
	return out, errors.Join(errs...)
}

// Close waits for pending uploads and stops the pool.
func (d *Delivery) Close() error {
	d.pool.StopAndWait()
	if d.pool.FailedTasks() > 0 {
		return fmt.Errorf("%d upload tasks failed", d.pool.FailedTasks())
	}
	return nil
}

// S3Config addresses the bucket a directory is mirrored to.
type S3Config struct {
	Host   string
	Key    string
	Secret string
	Bucket string
}

// SyncToS3 copies dir to <bucket>/<prefix> with the MinIO client.
func SyncToS3(dir, prefix string, c S3Config) (err error) {
	st := time.Now()
	log.Println("[>] Copy to S3:", c.Host, c.Bucket)

	if err = os.Setenv("MC_NO_COLOR", "1"); err != nil {
		return err
	}

	aliasName := "decomposer" + uuid.New().String()[:8]
	to := fmt.Sprintf("%s/%s/%s", aliasName, c.Bucket, prefix)
	from := fmt.Sprintf("%s/", dir)

	if _, err = ExecCmd("mc", "alias", "set", aliasName, c.Host, c.Key, c.Secret); err != nil {
		return err
	}
	defer func() {
		if _, rerr := ExecCmd("mc", "alias", "rm", aliasName); rerr != nil {
			log.Printf("[!] Error removing mc alias: %v", rerr)
		}
		log.Printf("[<] Copy to S3, at %s", time.Since(st))
	}()

	_, err = ExecCmd("mc", "cp", "-r", from, to, "--quiet")
	return err
}
