// Package auditlog keeps an append-only local log of key-share
// lifecycle events. The log is evidence, not state: entries are never
// rewritten and survive deletion of the key shares they describe.
package auditlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/juju/fslock"
)

type EventKind string

const (
	EventKeyShareCreated  EventKind = "key_share_created"
	EventKeyShareDeleted  EventKind = "key_share_deleted"
	EventAccountDeleted   EventKind = "account_deleted"
	EventMessageProof     EventKind = "message_proof_recorded"
	EventTransactionNoted EventKind = "transaction_receipt_recorded"
)

type Event struct {
	ID        string          `json:"id"`
	Kind      EventKind       `json:"kind"`
	Address   string          `json:"address,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Offset    uint64          `json:"offset"`
	Timestamp int64           `json:"timestamp"`
}

type AuditLog interface {
	Append(events ...Event) error
	GetEvents(offset uint64) ([]Event, error)
	Close() error
}

var _ AuditLog = (*FileAuditLog)(nil)

type FileAuditLog struct {
	lockFile *fslock.Lock
	dataFile *os.File
}

const defaultLockFile = "/tmp/tkeyring_audit_lock"

// NewFileAuditLog opens an append-only audit log. It takes the path to
// the data file and, optionally, the path to a lock file.
func NewFileAuditLog(filename string, lockFilename ...string) (*FileAuditLog, error) {
	var (
		l   FileAuditLog
		err error
	)
	if len(lockFilename) > 0 {
		l.lockFile = fslock.New(lockFilename[0])
	} else {
		l.lockFile = fslock.New(defaultLockFile)
	}

	if l.dataFile, err = os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644); err != nil {
		return nil, fmt.Errorf("failed to open audit log data file: %v", err)
	}
	return &l, nil
}

func countLines(r io.Reader) uint64 {
	var count uint64
	fileScanner := bufio.NewScanner(r)

	for fileScanner.Scan() {
		count++
	}
	return count
}

func (l *FileAuditLog) append(e Event) (Event, error) {
	var (
		data []byte
		err  error
	)
	if err = l.lockFile.Lock(); err != nil {
		return e, fmt.Errorf("failed to lock audit log: %v", err)
	}
	defer l.lockFile.Unlock()

	e.ID = uuid.New().String()
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}

	if _, err = l.dataFile.Seek(0, 0); err != nil { // otherwise countLines will return zero
		return e, fmt.Errorf("failed to seek to the start of the audit log: %v", err)
	}
	e.Offset = countLines(l.dataFile)

	if data, err = json.Marshal(e); err != nil {
		return e, fmt.Errorf("failed to marshal audit event %v: %v", e, err)
	}

	if _, err = fmt.Fprintln(l.dataFile, string(data)); err != nil {
		return e, fmt.Errorf("failed to write audit event: %v", err)
	}
	return e, nil
}

func (l *FileAuditLog) Append(events ...Event) error {
	var err error
	for i, e := range events {
		events[i], err = l.append(e)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetEvents returns all events with an offset at or after the given one.
func (l *FileAuditLog) GetEvents(offset uint64) ([]Event, error) {
	var events []Event

	if _, err := l.dataFile.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to seek to the start of the audit log: %v", err)
	}

	scanner := bufio.NewScanner(l.dataFile)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit event: %v", err)
		}
		if e.Offset >= offset {
			events = append(events, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan audit log: %v", err)
	}
	return events, nil
}

func (l *FileAuditLog) Close() error {
	if l.dataFile == nil {
		return nil
	}
	return l.dataFile.Close()
}
