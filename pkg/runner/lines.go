package runner

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type inputResult struct {
	text string
	err  error
}

// linePump reads lines in a background goroutine so that a blocked read can
// be abandoned when the context ends. Once abandoned the pump is finished:
// its goroutine exits after the pending read and later calls return io.EOF.
type linePump struct {
	reader    *bufio.Reader
	inputChan chan inputResult
	done      chan struct{}
	exited    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{
		reader: bufio.NewReader(r),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

func (p *linePump) start() {
	p.startOnce.Do(func() {
		p.inputChan = make(chan inputResult)
		go p.pump()
	})
}

func (p *linePump) stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

func (p *linePump) pump() {
	defer close(p.exited)
	defer close(p.inputChan)
	for {
		text, err := p.reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			if !p.send(inputResult{text: strings.TrimRight(text, "\r\n")}) {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				p.send(inputResult{err: err})
			}
			return
		}
	}
}

// send hands res to the reader unless the pump was stopped.
func (p *linePump) send(res inputResult) bool {
	select {
	case p.inputChan <- res:
		return true
	case <-p.done:
		return false
	}
}

// next returns the next line, io.EOF when the source is done, or ctx.Err().
func (p *linePump) next(ctx context.Context) (string, error) {
	p.start()
	select {
	case <-ctx.Done():
		p.stop()
		return "", ctx.Err()
	case res, ok := <-p.inputChan:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
