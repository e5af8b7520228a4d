package main

import (
	"os"
	"time"

	"github.com/arnebach/coreedit/internal/log"
	"github.com/arnebach/coreedit/pkg/buffer"
	"github.com/arnebach/coreedit/pkg/changefeed"
)

// backupSaver implements §2.3's supplemented backup-file lifecycle: an
// external collaborator (not the core) that mirrors the buffer to a
// sibling ".bak" file once the document has sat unedited for
// cfg.BackupIdleTimeoutSeconds. It subscribes to the buffer's changefeed
// the way the teacher's background memory-compaction goroutines subscribe
// to the session event bus (internal/memory/memory.go) — debouncing on
// every Change, firing only after the idle gap elapses.
type backupSaver struct {
	path        string
	idleTimeout time.Duration

	reset chan struct{}
	done  chan struct{}
}

func startBackupSaver(buf *buffer.Buffer, path string, idleTimeout time.Duration) func() {
	if path == "" || idleTimeout <= 0 {
		return func() {}
	}
	s := &backupSaver{
		path:        path,
		idleTimeout: idleTimeout,
		reset:       make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	unsubscribe := buf.Subscribe(func(changefeed.Versioned[buffer.Change]) {
		select {
		case s.reset <- struct{}{}:
		default:
		}
	})

	go s.run(buf)

	return func() {
		unsubscribe()
		close(s.done)
	}
}

func (s *backupSaver) run(buf *buffer.Buffer) {
	timer := time.NewTimer(s.idleTimeout)
	defer timer.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-s.reset:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(s.idleTimeout)
		case <-timer.C:
			s.write(buf)
			timer.Reset(s.idleTimeout)
		}
	}
}

func (s *backupSaver) write(buf *buffer.Buffer) {
	f, err := os.Create(s.path + ".bak")
	if err != nil {
		log.Warn("coreedit: backup %s: %v", s.path, err)
		return
	}
	defer f.Close()
	if _, err := buf.Rope().WriteTo(f); err != nil {
		log.Warn("coreedit: writing backup %s: %v", s.path, err)
	}
}
