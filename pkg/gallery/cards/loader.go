package cards

import (
	"context"
	"fmt"
	"image"
	"sync"

	// Formats card images may arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// DefaultConcurrency bounds simultaneous downloads when none is configured.
const DefaultConcurrency = 4

// Ticket identifies one image request.
type Ticket uint64

type completion struct {
	ticket Ticket
	img    image.Image
	err    error
	fn     func(image.Image, error)
}

// Loader fetches and decodes images in the background. Callbacks never run
// on the worker goroutines: finished requests wait in a queue until the frame
// thread calls Poll.
type Loader struct {
	fetch Fetcher
	sem   *semaphore.Weighted
	group singleflight.Group
	log   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	queue   []completion
	pending mapset.Set[Ticket]
	next    Ticket
	closed  bool
}

// NewLoader creates a loader running at most concurrency fetches at once.
func NewLoader(fetch Fetcher, concurrency int, log *zap.Logger) *Loader {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		fetch:   fetch,
		sem:     semaphore.NewWeighted(int64(concurrency)),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		pending: mapset.New[Ticket](),
	}
}

// Request starts loading ref. fn is called from Poll with the decoded image
// or the error. Requests for the same URL in flight together share a single
// download. Requests made after Close are ignored.
func (l *Loader) Request(ref string, fn func(image.Image, error)) Ticket {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return 0
	}
	l.next++
	t := l.next
	l.pending.Put(t)
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		img, err := l.load(ref)

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed {
			return
		}
		l.queue = append(l.queue, completion{ticket: t, img: img, err: err, fn: fn})
	}()
	return t
}

func (l *Loader) load(ref string) (image.Image, error) {
	v, err, shared := l.group.Do(ref, func() (interface{}, error) {
		if err := l.sem.Acquire(l.ctx, 1); err != nil {
			return nil, err
		}
		defer l.sem.Release(1)

		rc, err := l.fetch.Fetch(l.ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", ref, err)
		}
		defer rc.Close()

		img, format, err := image.Decode(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", ref, err)
		}
		l.log.Debug("image decoded", zap.String("url", ref), zap.String("format", format))
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.log.Debug("image download shared", zap.String("url", ref))
	}
	return v.(image.Image), nil
}

// Poll runs the callbacks of every finished request and returns how many ran.
func (l *Loader) Poll() int {
	l.mu.Lock()
	q := l.queue
	l.queue = nil
	for _, c := range q {
		l.pending.Remove(c.ticket)
	}
	l.mu.Unlock()

	for _, c := range q {
		c.fn(c.img, c.err)
	}
	return len(q)
}

// Pending returns the number of requests whose callbacks have not run yet.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending.Size()
}

// Close cancels outstanding requests, drops undelivered results and waits
// for the workers to exit.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.queue = nil
	l.pending = mapset.New[Ticket]()
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}
