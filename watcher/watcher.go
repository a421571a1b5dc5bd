// Package watcher re-delivers a daycircle file's contents whenever it is
// written to.
package watcher

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"daycircle/logging"
)

// Receiver consumes the watched file's contents after each write.
type Receiver interface {
	Receive(path string, content []byte) error
}

type Subscriber struct {
	filePath string
	lastRead time.Time
	mu       sync.Mutex
	receiver Receiver
}

func NewSubscriber(filePath string) (*Subscriber, error) {
	if filePath == "" {
		return nil, fmt.Errorf("no file path given")
	}
	return &Subscriber{filePath: filePath}, nil
}

// Subscribe watches the file and blocks, delivering contents to receiver on
// every write. Receiver errors are logged and the watch continues.
func (s *Subscriber) Subscribe(receiver Receiver) error {
	s.receiver = receiver

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	go s.watchResponder(watcher)

	err = watcher.Add(s.filePath)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	// Block main goroutine forever.
	// TODO: implement proper shutdown handling
	<-make(chan struct{})
	return nil
}

func (s *Subscriber) watchResponder(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				logging.Warn("watcher.Events is not okay")
				return
			}
			if event.Has(fsnotify.Write) {
				err := s.reactToFileWrite(event.Name)
				if err != nil {
					logging.Error("reactToFileWrite", err, "file", event.Name)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				logging.Warn("watcher.Errors is not okay")
				return
			}
			logging.Error("watcher.Errors", err)
		}
	}
}

func (s *Subscriber) reactToFileWrite(filepath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timeElapsed := time.Since(s.lastRead)
	if timeElapsed < time.Second { // react at most once per second
		return nil
	}
	s.lastRead = time.Now()

	b, err := readLoop(filepath)
	if err != nil {
		return fmt.Errorf("readLoop: %w", err)
	}

	err = s.receiver.Receive(filepath, b)
	if err != nil {
		return fmt.Errorf("error from receiver: %w", err)
	}

	return nil
}

// readLoop tries to read the file a lot
func readLoop(filepath string) ([]byte, error) {
	for i := 0; i < 100; i++ {
		f, err := os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("os.Open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll: %w", err)
		}

		if len(b) == 0 {
			// sometimes we get an empty file, probably because the file is being written to
			time.Sleep(time.Millisecond * 100)
			continue
		}

		return b, nil
	}

	return nil, fmt.Errorf("readLoop: too many retries")
}
