package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mmr-tortoise/numlist/internal/lineread"
	"github.com/mmr-tortoise/numlist/internal/model"
)

// idleReader holds busy while the session runs and releases it only while
// the session waits for input. An interrupt therefore never ends the process
// in the middle of a command's output or an export.
type idleReader struct {
	lineread.Reader
	busy *sync.Mutex
}

func (r idleReader) ReadLine() (string, error) {
	r.busy.Unlock()
	defer r.busy.Lock()
	return r.Reader.ReadLine()
}

func (r idleReader) Prompt(question string) (string, error) {
	r.busy.Unlock()
	defer r.busy.Lock()
	return r.Reader.Prompt(question)
}

// watchInterrupts ends the process through exit when a signal arrives on
// signals, printing CTRL-C to out first. It waits for busy so that nothing
// else is writing at that moment. The returned stop function ends the watch
// and waits for the goroutine to return; busy must not be held by the
// caller when stop is called.
func watchInterrupts(signals <-chan os.Signal, busy sync.Locker, out io.Writer, exit func(int)) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		select {
		case <-signals:
			busy.Lock()
			defer busy.Unlock()
			fmt.Fprintln(out, "CTRL-C")
			exit(int(model.ExitSuccess))
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-finished
	}
}
