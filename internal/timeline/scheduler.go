package timeline

import (
	"container/heap"
	"sync"
	"time"
)

// Scheduler is a single cooperative timeline: many independent cancellable
// timers drained by one goroutine, so no two tasks ever run concurrently.
type Scheduler struct {
	clock Clock

	mu    sync.Mutex
	tasks taskHeap
	seq   uint64

	wake chan struct{}
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// Handle cancels a scheduled task. Cancel is idempotent and safe to call
// from inside the task itself.
type Handle struct {
	s    *Scheduler
	task *task
}

func (h *Handle) Cancel() {
	if nil == h {
		return
	}
	h.s.mu.Lock()
	h.task.cancelled = true
	h.s.mu.Unlock()
}

type task struct {
	at        time.Time
	interval  time.Duration // 0 for one-shot
	seq       uint64        // FIFO tiebreak for equal deadlines
	run       func()
	cancelled bool
}

func New(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
	}
}

// ScheduleOnce runs task once after delay.
func (s *Scheduler) ScheduleOnce(delay time.Duration, run func()) *Handle {
	return s.add(delay, 0, run)
}

// ScheduleRepeating runs task every interval, first firing one interval
// from now. The next deadline is derived from the previous deadline, not
// from the task's completion time.
func (s *Scheduler) ScheduleRepeating(interval time.Duration, run func()) *Handle {
	return s.add(interval, interval, run)
}

func (s *Scheduler) add(delay, interval time.Duration, run func()) *Handle {
	s.mu.Lock()
	t := &task{
		at:       s.clock.Now().Add(delay),
		interval: interval,
		seq:      s.seq,
		run:      run,
	}
	s.seq++
	heap.Push(&s.tasks, t)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return &Handle{s: s, task: t}
}

// Tick runs every task due at now, in deadline order. Exposed so tests
// can drive the timeline with a ManualClock.
func (s *Scheduler) Tick(now time.Time) {
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 || s.tasks[0].at.After(now) {
			s.mu.Unlock()
			return
		}
		t := heap.Pop(&s.tasks).(*task)
		if t.cancelled {
			s.mu.Unlock()
			continue
		}
		if t.interval > 0 {
			t.at = t.at.Add(t.interval)
			heap.Push(&s.tasks, t)
		}
		s.mu.Unlock()

		t.run()
	}
}

// Start drains the timeline until Stop.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(time.Hour)
		if !timer.Stop() {
			<-timer.C
		}
		for {
			s.Tick(s.clock.Now())

			s.mu.Lock()
			var wait time.Duration = time.Hour
			if len(s.tasks) > 0 {
				wait = s.tasks[0].at.Sub(s.clock.Now())
			}
			s.mu.Unlock()
			if wait < 0 {
				wait = 0
			}

			timer.Reset(wait)
			select {
			case <-s.stop:
				if !timer.Stop() {
					<-timer.C
				}
				return
			case <-s.wake:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			case <-timer.C:
			}
		}
	}()
}

// Stop halts the timeline goroutine. Pending tasks never fire.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x interface{}) {
	*h = append(*h, x.(*task))
}

func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
