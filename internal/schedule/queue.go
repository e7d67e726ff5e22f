// internal/schedule/queue.go
package schedule

import (
	"container/heap"
	"log"
	"time"

	"go-beastfight/internal/clock"
)

// Task — отложенный вызов, который выполнится в игровом цикле не раньше Due.
type Task struct {
	Due time.Time
	Run func(now time.Time)
	seq uint64
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].Due.Equal(h[j].Due) {
		return h[i].seq < h[j].seq
	}
	return h[i].Due.Before(h[j].Due)
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(*Task)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Queue — очередь отложенных событий, встроенная в однопоточный игровой цикл.
// Никаких горутин и sleep: цикл сам вызывает RunDue каждый кадр.
type Queue struct {
	clock  clock.Clock
	tasks  taskHeap
	seq    uint64
	logger *log.Logger
}

// NewQueue создаёт очередь, отсчитывающую задержки от clock.
func NewQueue(c clock.Clock, logger *log.Logger) *Queue {
	if logger == nil {
		logger = log.Default()
	}
	return &Queue{clock: c, logger: logger}
}

// After планирует fn через d от текущего времени часов.
func (q *Queue) After(d time.Duration, fn func(now time.Time)) {
	q.At(q.clock.Now().Add(d), fn)
}

// At планирует fn на момент due.
func (q *Queue) At(due time.Time, fn func(now time.Time)) {
	q.seq++
	heap.Push(&q.tasks, &Task{Due: due, Run: fn, seq: q.seq})
}

// RunDue выполняет все задачи со сроком <= now в порядке (срок, порядок постановки)
// и возвращает их количество. Задачи, поставленные во время выполнения, тоже
// исполняются, если их срок уже наступил. Паника в задаче логируется и не
// останавливает остальные.
func (q *Queue) RunDue(now time.Time) int {
	ran := 0
	for len(q.tasks) > 0 && !q.tasks[0].Due.After(now) {
		t := heap.Pop(&q.tasks).(*Task)
		q.run(t, now)
		ran++
	}
	return ran
}

func (q *Queue) run(t *Task, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Printf("schedule: task due at %v panicked: %v", t.Due, r)
		}
	}()
	t.Run(now)
}

// Len возвращает число ожидающих задач.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Clear удаляет все ожидающие задачи.
func (q *Queue) Clear() {
	q.tasks = nil
}
