package cli

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/numlist/internal/lineread"
)

// recordExit stands in for os.Exit and reports each call on a channel.
func recordExit() (func(int), <-chan int) {
	codes := make(chan int, 1)
	return func(code int) { codes <- code }, codes
}

func TestWatchInterrupts_Signal(t *testing.T) {
	signals := make(chan os.Signal, 1)
	var busy sync.Mutex
	var out bytes.Buffer
	exit, codes := recordExit()

	stop := watchInterrupts(signals, &busy, &out, exit)
	signals <- os.Interrupt

	select {
	case code := <-codes:
		assert.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("exit was not called after an interrupt")
	}
	stop()
	assert.Equal(t, "CTRL-C\n", out.String())
}

func TestWatchInterrupts_StopEndsWatch(t *testing.T) {
	signals := make(chan os.Signal, 1)
	var busy sync.Mutex
	var out bytes.Buffer
	exit, codes := recordExit()

	stop := watchInterrupts(signals, &busy, &out, exit)
	stop()
	stop()

	// The goroutine has returned, so a late signal is never handled.
	signals <- os.Interrupt
	assert.Empty(t, codes)
	assert.Empty(t, out.String())
}

// TestWatchInterrupts_WaitsForIdle verifies an interrupt arriving while a
// command runs is only acted on once the session waits for input again.
func TestWatchInterrupts_WaitsForIdle(t *testing.T) {
	signals := make(chan os.Signal, 1)
	var busy sync.Mutex
	var out bytes.Buffer
	exit, codes := recordExit()

	busy.Lock()
	stop := watchInterrupts(signals, &busy, &out, exit)
	signals <- os.Interrupt

	select {
	case <-codes:
		t.Fatal("exit was called while the session was busy")
	case <-time.After(50 * time.Millisecond):
	}

	busy.Unlock()
	select {
	case code := <-codes:
		assert.Equal(t, 0, code)
	case <-time.After(time.Second):
		t.Fatal("exit was not called once the session was idle")
	}
	stop()
}

// lockCheckReader records whether busy was free each time it is read.
type lockCheckReader struct {
	data *bytes.Buffer
	busy *sync.Mutex
	free []bool
}

func (r *lockCheckReader) Read(p []byte) (int, error) {
	if r.busy.TryLock() {
		r.busy.Unlock()
		r.free = append(r.free, true)
	} else {
		r.free = append(r.free, false)
	}
	return r.data.Read(p)
}

func TestIdleReader_ReleasesWhileReading(t *testing.T) {
	var busy sync.Mutex
	in := &lockCheckReader{data: bytes.NewBufferString("5\ny\n"), busy: &busy}
	plain := lineread.NewPlain(in, &bytes.Buffer{}, &bytes.Buffer{}, ">> ")
	r := idleReader{Reader: plain, busy: &busy}

	busy.Lock()
	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "5", line)
	assert.False(t, busy.TryLock(), "lock is held again after ReadLine")

	answer, err := r.Prompt("overwrite? ")
	require.NoError(t, err)
	assert.Equal(t, "y", answer)
	assert.False(t, busy.TryLock(), "lock is held again after Prompt")
	busy.Unlock()

	require.NotEmpty(t, in.free)
	for _, free := range in.free {
		assert.True(t, free)
	}
}
