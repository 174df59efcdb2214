// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/model"
)

const (
	// ReplyDelay is how long a responder takes to answer.
	ReplyDelay = 1500 * time.Millisecond

	// ScanDelay is how long a dropped file takes to "upload".
	ScanDelay = 2000 * time.Millisecond
)

// =============================================================================
// SIMULATOR
// =============================================================================

type timerKind int

const (
	kindReply timerKind = iota
	kindUpload
)

type pendingTimer struct {
	timer *time.Timer
	kind  timerKind
}

// Simulator appends user submissions to a Store and schedules one-shot
// replies from its Responder. Every timer it starts is tracked so Close can
// stop them.
type Simulator struct {
	store     *Store
	responder Responder
	userLabel string
	log       *zap.Logger

	// Overridden in tests.
	replyDelay time.Duration
	scanDelay  time.Duration

	mu      sync.Mutex
	rng     *rand.Rand
	timers  map[uint64]pendingTimer
	nextID  uint64
	closed  bool
	updates chan struct{}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithUserLabel sets the label stamped on user messages.
func WithUserLabel(label string) Option {
	return func(s *Simulator) {
		if label != "" {
			s.userLabel = label
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Simulator) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand sets the random source used to pick replies.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func withDelays(reply, scan time.Duration) Option {
	return func(s *Simulator) {
		s.replyDelay = reply
		s.scanDelay = scan
	}
}

// NewSimulator creates a simulator writing to store.
func NewSimulator(store *Store, responder Responder, opts ...Option) *Simulator {
	s := &Simulator{
		store:      store,
		responder:  responder,
		userLabel:  model.SenderUser.DisplayName(),
		log:        zap.NewNop(),
		replyDelay: ReplyDelay,
		scanDelay:  ScanDelay,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		timers:     make(map[uint64]pendingTimer),
		updates:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the store the simulator writes to.
func (s *Simulator) Store() *Store {
	return s.store
}

// Submit records a user message and, when the responder matches, schedules
// exactly one reply. Whitespace-only input is ignored and reports false.
func (s *Simulator) Submit(text string) (model.Message, bool) {
	input := strings.TrimSpace(text)
	if input == "" {
		return model.Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.Message{}, false
	}

	msg := s.store.Append(model.NewUserMessage(s.userLabel, input))
	if s.responder != nil && s.responder.Match(input) {
		s.scheduleLocked(kindReply, s.replyDelay, func() {
			reply := s.store.Append(s.responder.Reply(input, s.rng))
			s.log.Debug("reply delivered",
				zap.String("id", reply.ID),
				zap.String("label", reply.SenderLabel))
		})
	}
	return msg, true
}

// Attach simulates a dropped file: after ScanDelay an upload notice is
// appended as a user message. An empty name is ignored.
func (s *Simulator) Attach(filename string) bool {
	name := strings.TrimSpace(filename)
	if name == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.scheduleLocked(kindUpload, s.scanDelay, func() {
		s.store.Append(model.NewUserMessage(s.userLabel, UploadNotice(name)))
	})
	return true
}

// UploadNotice is the message body recorded for an uploaded file.
func UploadNotice(filename string) string {
	return "📎 Uploaded: " + filename
}

// Pending returns the number of replies scheduled but not yet delivered.
func (s *Simulator) Pending() int {
	return s.count(kindReply)
}

// Scanning returns the number of uploads still in flight.
func (s *Simulator) Scanning() int {
	return s.count(kindUpload)
}

func (s *Simulator) count(kind timerKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.timers {
		if p.kind == kind {
			n++
		}
	}
	return n
}

// Updates signals after a timer appends to the store. Signals coalesce:
// several appends between reads produce one value. The channel is closed
// by Close.
func (s *Simulator) Updates() <-chan struct{} {
	return s.updates
}

// Close stops every pending timer and closes the Updates channel. Replies
// scheduled before Close never land. Safe to call more than once.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	stopped := 0
	for id, p := range s.timers {
		if p.timer.Stop() {
			stopped++
		}
		delete(s.timers, id)
	}
	close(s.updates)

	if stopped > 0 {
		s.log.Debug("simulator closed", zap.Int("cancelled", stopped))
	}
}

// Closed reports whether Close has been called.
func (s *Simulator) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// scheduleLocked starts a one-shot timer running fn. Caller holds s.mu.
func (s *Simulator) scheduleLocked(kind timerKind, delay time.Duration, fn func()) {
	id := s.nextID
	s.nextID++
	t := time.AfterFunc(delay, func() { s.fire(id, fn) })
	s.timers[id] = pendingTimer{timer: t, kind: kind}
}

func (s *Simulator) fire(id uint64, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A timer that lost the race with Close finds itself gone.
	if _, ok := s.timers[id]; !ok || s.closed {
		return
	}
	delete(s.timers, id)
	fn()

	select {
	case s.updates <- struct{}{}:
	default:
	}
}
