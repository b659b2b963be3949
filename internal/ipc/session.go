package ipc

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/deck"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/transition"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrMissingFrames = errors.New("both from and to are required")
	ErrNoDeck        = errors.New("no pages loaded")
	ErrEndOfDeck     = errors.New("no more pages in that direction")
)

// Session owns the one transition the preview server plays. The
// transition itself is not safe for concurrent use, so every access goes
// through the session lock.
type Session struct {
	sync.Mutex
	defaults transition.Config
	opts     []transition.Option
	cache    *frame.Cache
	tr       *transition.Transition
	from, to string
	deck     *deck.Deck
	// nav serializes Load, Next and Prev so a page turn reads and moves
	// the cursor as one step.
	nav sync.Mutex

	registry *prometheus.Registry
	metrics  *metrics

	stopOnce sync.Once
	done     chan struct{}
}

// NewSession creates an idle session. defaults fill in whatever a start
// request leaves out; opts are passed to every transition it creates.
func NewSession(defaults transition.Config, opts ...transition.Option) *Session {
	reg := prometheus.NewRegistry()
	return &Session{
		defaults: defaults,
		opts:     opts,
		cache:    frame.NewCache(defaults.ScaleMode),
		registry: reg,
		metrics:  newMetrics(reg),
		done:     make(chan struct{}),
	}
}

// Registry holds the session's metrics.
func (s *Session) Registry() *prometheus.Registry { return s.registry }

// Done is closed once Stop has been called.
func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		log.Info("Stopping preview session ...")
		close(s.done)
	})
}

// Start loads both frames and starts a new transition, replacing any
// transition in progress.
func (s *Session) Start(req StartRequest) error {
	cfg, err := s.config(req)
	if err != nil {
		s.metrics.failures.Inc()
		return err
	}

	from := s.cache.Add(req.From)
	to := s.cache.Add(req.To)

	a, err := s.cache.Frame(from, image.Point{})
	if err != nil {
		s.metrics.failures.Inc()
		return err
	}
	b, err := s.cache.Frame(to, a.Rect.Size())
	if err != nil {
		s.metrics.failures.Inc()
		return err
	}

	tr := cfg.NewTransition(s.opts...)
	tr.Start(a, b)

	s.Lock()
	defer s.Unlock()
	s.tr = tr
	s.from, s.to = req.From, req.To
	s.metrics.started.WithLabelValues(cfg.Style.String()).Inc()

	log.Infof("started %v from %v to %v over %v", cfg.Style, req.From, req.To, cfg.Duration)
	return nil
}

// Frame polls the transition. The image is nil while idle.
func (s *Session) Frame() (image.Image, transition.Phase) {
	s.Lock()
	defer s.Unlock()

	if s.tr == nil {
		return nil, transition.PhaseIdle
	}

	wasRunning := s.tr.IsRunning()
	img := s.tr.Image()
	if img == nil {
		return nil, s.tr.Phase()
	}
	if wasRunning && s.tr.IsFinished() {
		s.metrics.finished.WithLabelValues(s.tr.Style().String()).Inc()
	}
	s.metrics.frames.Inc()
	return img, s.tr.Phase()
}

func (s *Session) Reset() {
	s.Lock()
	defer s.Unlock()
	if s.tr != nil {
		s.tr.Reset()
	}
}

func (s *Session) Status() SessionStatus {
	s.Lock()
	defer s.Unlock()

	page, pages := 0, 0
	if s.deck != nil {
		_, page, _ = s.deck.Current()
		pages = s.deck.Len()
	}

	if s.tr == nil {
		return SessionStatus{
			Page:      page,
			Pages:     pages,
			Style:     s.defaults.Style.String(),
			Phase:     transition.PhaseIdle.String(),
			Duration:  s.defaults.Duration.Seconds(),
			Direction: s.defaults.Direction,
			Motion:    s.defaults.Motion.String(),
		}
	}
	return SessionStatus{
		Style:     s.tr.Style().String(),
		Phase:     s.tr.Phase().String(),
		Running:   s.tr.IsRunning(),
		Finished:  s.tr.IsFinished(),
		Duration:  s.tr.Duration().Seconds(),
		Direction: s.tr.Direction(),
		Motion:    s.tr.Motion().String(),
		From:      s.from,
		To:        s.to,
		Page:      page,
		Pages:     pages,
	}
}

func (s *Session) config(req StartRequest) (transition.Config, error) {
	cfg := s.defaults
	if req.From == "" || req.To == "" {
		return cfg, ErrMissingFrames
	}
	if req.Style != "" {
		style, err := transition.ParseStyle(req.Style)
		if err != nil {
			return cfg, err
		}
		cfg.Style = style
	}
	if req.Duration != nil {
		cfg.Duration = time.Duration(*req.Duration * float64(time.Second))
	}
	if req.Direction != nil {
		cfg.Direction = *req.Direction
	}
	if req.Motion != "" {
		m, err := transition.ParseMotion(req.Motion)
		if err != nil {
			return cfg, err
		}
		cfg.Motion = m
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("bad start request: %w", err)
	}
	return cfg, nil
}

// Load replaces the deck of pages Next and Prev step through. The cursor
// starts on the first page and no transition is started.
func (s *Session) Load(req LoadRequest) error {
	if len(req.Pages) == 0 {
		return deck.ErrEmpty
	}

	d := deck.New(req.Pages, req.Loop)

	s.nav.Lock()
	defer s.nav.Unlock()
	s.Lock()
	s.deck = d
	s.Unlock()

	s.cache.Purge()
	log.Infof("loaded %d pages", d.Len())
	return nil
}

// Next starts a transition from the current page to the following one.
func (s *Session) Next() error {
	return s.advance(1)
}

// Prev starts a transition from the current page to the previous one.
func (s *Session) Prev() error {
	return s.advance(-1)
}

// advance moves the cursor by delta once the transition to the target
// page has started. A page that fails to load leaves the cursor alone.
func (s *Session) advance(delta int) error {
	s.nav.Lock()
	defer s.nav.Unlock()

	s.Lock()
	d := s.deck
	s.Unlock()
	if d == nil {
		return ErrNoDeck
	}

	from, _, err := d.Current()
	if err != nil {
		return err
	}
	to, index, ok := d.Peek(delta)
	if !ok {
		return ErrEndOfDeck
	}

	if err := s.Start(StartRequest{From: from, To: to}); err != nil {
		return err
	}
	log.Debugf("page %d: %v", index, to)
	_, err = d.Goto(index)
	return err
}
