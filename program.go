package main

import (
	"math"
	"sync"
	"time"

	"git.lost.host/meutraa/notefall/internal/audio"
	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/game"
	"git.lost.host/meutraa/notefall/internal/input"
	"git.lost.host/meutraa/notefall/internal/render"
	"git.lost.host/meutraa/notefall/internal/score"
	"git.lost.host/meutraa/notefall/internal/timeline"
	"github.com/google/uuid"
)

// activeNote is one registry record: a note in flight plus the handles
// that must die with it.
type activeNote struct {
	note    *game.Note
	sampler *timeline.Handle
	expiry  *timeline.Handle
}

// Program drives one session. All timers live on a single timeline and
// every scoring mutation funnels through the transition queue, consumed
// by exactly one goroutine.
type Program struct {
	Scorer score.Scorer
	Audio  audio.Gateway

	view      *render.View
	scheduler *timeline.Scheduler
	clock     timeline.Clock
	field     game.Field

	chart     *game.Chart
	sessionID uuid.UUID
	start     time.Time // Session zero; elapsed time is measured from here

	mu       sync.Mutex
	active   map[uuid.UUID]*activeNote
	lanes    [config.NKey][]*activeNote
	lastEval [config.NKey]time.Time

	transitions chan game.Transition
	state       game.State // Touched only by the consume goroutine
	done        chan struct{}
}

func NewProgram(
	chart *game.Chart,
	scorer score.Scorer,
	gateway audio.Gateway,
	view *render.View,
	clock timeline.Clock,
	field game.Field,
) *Program {
	return &Program{
		Scorer:      scorer,
		Audio:       gateway,
		view:        view,
		scheduler:   timeline.New(clock),
		clock:       clock,
		field:       field,
		chart:       chart,
		sessionID:   uuid.New(),
		active:      map[uuid.UUID]*activeNote{},
		transitions: make(chan game.Transition, 256),
		done:        make(chan struct{}),
	}
}

func (p *Program) elapsed() time.Duration {
	return p.clock.Now().Sub(p.start)
}

// until converts a session-relative deadline into a scheduler delay.
func (p *Program) until(target time.Duration) time.Duration {
	d := target - p.elapsed()
	if d < 0 {
		return 0
	}
	return d
}

// Run blocks until the session reaches its computed duration.
func (p *Program) Run(events <-chan input.Event, delay time.Duration) {
	p.start = p.clock.Now().Add(delay)
	p.state = game.NewState(p.Scorer.LoadHighScore(p.chart))

	go p.consume()
	go p.route(events)

	p.Schedule()
	p.view.DrawStatic()
	p.view.UpdateScore(p.state)
	p.scheduler.Start()

	<-p.done
	p.scheduler.Stop()
}

// Schedule registers every timer the session needs: one timeline per
// note, the background triggers, the end sampler, the end-of-session
// deadline and the render flush.
func (p *Program) Schedule() {
	for _, note := range p.chart.Notes {
		note := note
		if note.UserPlayed {
			p.scheduler.ScheduleOnce(p.until(p.field.AppearAt(note)), func() {
				p.activate(note)
			})
		} else {
			// Fire-and-forget, no scoring or visual side effect
			p.scheduler.ScheduleOnce(p.until(time.Duration(note.StartMs()*float64(time.Millisecond))), func() {
				p.Audio.Play(note.Instrument, note.Pitch, note.Duration(), note.Velocity)
			})
		}
	}

	p.scheduler.ScheduleRepeating(config.EndSamplePeriod, func() {
		p.transitions <- game.Transition{Outcome: game.OutcomeTick}
	})

	p.scheduler.ScheduleOnce(p.until(p.chart.Duration()), func() {
		p.transitions <- game.Transition{Outcome: game.OutcomeEnd}
	})

	p.scheduler.ScheduleRepeating(*config.FramePeriod, p.view.Flush)
}

// activate moves a note into the registry and starts its private timers.
func (p *Program) activate(note *game.Note) {
	an := &activeNote{note: note}

	p.mu.Lock()
	p.active[note.ID] = an
	p.lanes[note.Column] = append(p.lanes[note.Column], an)
	p.mu.Unlock()

	an.sampler = p.scheduler.ScheduleRepeating(config.SamplePeriod, func() {
		el := p.elapsed()
		p.view.MoveNote(note, p.field.PositionAt(note, el), p.field.TailAt(note, el))
	})
	an.expiry = p.scheduler.ScheduleOnce(p.until(p.field.ExpireAt(note, config.LateWindow)), func() {
		p.expire(an)
	})
}

// expire self-terminates a note's sampler and tears down its input
// subscription in the same step.
func (p *Program) expire(an *activeNote) {
	if !p.unbind(an) {
		return
	}
	an.sampler.Cancel()
	p.view.RemoveNote(an.note)
}

// unbind removes the note from the registry, reporting whether it was
// still bound. Exactly one of hit or expiry wins.
func (p *Program) unbind(an *activeNote) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.active[an.note.ID]; !ok {
		return false
	}
	delete(p.active, an.note.ID)

	lane := p.lanes[an.note.Column]
	for i, other := range lane {
		if other == an {
			p.lanes[an.note.Column] = append(lane[:i], lane[i+1:]...)
			break
		}
	}
	return true
}

// route pushes key presses onto the timeline so evaluation shares the
// single cooperative goroutine with every other task.
func (p *Program) route(events <-chan input.Event) {
	for ev := range events {
		if !ev.Pressed {
			continue
		}
		ev := ev
		p.scheduler.ScheduleOnce(0, func() {
			p.evaluate(ev)
		})
	}
}

// closest picks the eligible note nearest the bottom edge in a column,
// by absolute distance.
func (p *Program) closest(column int, el time.Duration) *activeNote {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best *activeNote
	bestDistance := math.MaxFloat64
	for _, an := range p.lanes[column] {
		d := math.Abs(p.field.PositionAt(an.note, el) - p.field.Bottom)
		if d < bestDistance {
			bestDistance = d
			best = an
		}
	}
	return best
}

func (p *Program) correctTiming(position float64) bool {
	return position >= p.field.Bottom-config.EarlyWindow &&
		position <= p.field.Bottom+config.LateWindow
}

// evaluate turns one debounced key press into a Hit, a Miss, or nothing.
func (p *Program) evaluate(ev input.Event) {
	if ev.Column < 0 || ev.Column >= config.NKey {
		return
	}

	p.mu.Lock()
	if !p.lastEval[ev.Column].IsZero() && ev.At.Sub(p.lastEval[ev.Column]) < config.Debounce {
		p.mu.Unlock()
		return
	}
	p.lastEval[ev.Column] = ev.At
	p.mu.Unlock()

	el := ev.At.Sub(p.start)
	an := p.closest(ev.Column, el)
	if nil == an {
		// No eligible note in this column: deliberate no-op, no feedback
		return
	}

	note := an.note
	if p.correctTiming(p.field.PositionAt(note, el)) {
		if !p.unbind(an) {
			return
		}
		an.sampler.Cancel()
		an.expiry.Cancel()
		p.view.RemoveNote(note)
		p.Audio.Play(note.Instrument, note.Pitch, note.Duration(), note.Velocity)
		p.transitions <- game.Transition{NoteID: note.ID, Outcome: game.OutcomeHit}
		return
	}

	p.Audio.Filler()
	p.transitions <- game.Transition{NoteID: note.ID, Outcome: game.OutcomeMiss}
}

// consume is the single writer for session state.
func (p *Program) consume() {
	for tr := range p.transitions {
		prev := p.state
		p.state = score.Apply(prev, tr.Outcome)

		switch tr.Outcome {
		case game.OutcomeHit, game.OutcomeMiss:
			p.view.UpdateScore(p.state)
			if p.state.HighScore > prev.HighScore {
				p.Scorer.SaveHighScore(p.chart, p.state.HighScore)
			}
		case game.OutcomeTick:
			p.view.SetEndBanner(p.state.GameEnd)
		case game.OutcomeEnd:
			if prev.GameEnd {
				continue
			}
			p.view.SetEndBanner(true)
			p.view.UpdateScore(p.state)
			p.view.Flush()
			p.Scorer.SaveSession(p.chart, p.sessionID, p.state)
			close(p.done)
		}
	}
}
