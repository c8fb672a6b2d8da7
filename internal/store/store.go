package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"simulator/internal/entities"
	"simulator/pkg/logger"
)

// Снапшот старше этого окна отбрасывается при восстановлении.
const StalenessTTL = 4 * time.Hour

var ErrPersist = errors.New("persist session state")

// Store хранит состояние сессии в памяти и зеркалирует его в JSON-файл.
// Каждая мутация пишет полный снапшот атомарно (temp-файл + rename),
// никогда по отдельным полям.
type Store struct {
	log  handlerLogger
	path string

	mu         sync.Mutex
	session    entities.Session
	deviceID   string
	gpsGranted bool
}

func New(path string, log handlerLogger) *Store {
	return &Store{
		log:      log.With(logger.NewField("component", "session_store")),
		path:     path,
		deviceID: uuid.NewString(),
	}
}

// Restore загружает снапшот с диска. Возвращает true, если состояние
// восстановлено. Протухший или битый снапшот отбрасывается целиком,
// частичный ремонт не делается.
func (s *Store) Restore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read session state", logger.NewField("error", err))
		}
		return false
	}

	var snapshot entities.SessionSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		s.log.Warn("corrupt session state, starting fresh", logger.NewField("error", err))
		return false
	}

	if time.Since(snapshot.LastSaved) > StalenessTTL {
		s.log.Info("session state stale, starting fresh",
			logger.NewField("last_saved", snapshot.LastSaved),
		)
		return false
	}

	s.session = entities.Session{
		UserID:       snapshot.UserID,
		OnShift:      snapshot.IsOnShift,
		Searching:    snapshot.IsSearching,
		CurrentOrder: snapshot.CurrentOrder,
	}
	if snapshot.DeviceID != "" {
		s.deviceID = snapshot.DeviceID
	}
	s.gpsGranted = snapshot.GPSGranted
	return true
}

func (s *Store) Session() entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.UserID
}

func (s *Store) OnShift() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.OnShift
}

func (s *Store) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Searching
}

func (s *Store) CurrentOrder() *entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.CurrentOrder
}

func (s *Store) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceID
}

func (s *Store) GPSGranted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gpsGranted
}

func (s *Store) SetUserID(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.UserID = userID
	return s.persistLocked()
}

func (s *Store) SetOnShift(onShift bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.OnShift = onShift
	return s.persistLocked()
}

func (s *Store) SetSearching(searching bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Searching = searching
	return s.persistLocked()
}

func (s *Store) SetCurrentOrder(order *entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CurrentOrder = order
	return s.persistLocked()
}

func (s *Store) SetBalance(balance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Balance = balance
	return s.persistLocked()
}

func (s *Store) SetGPSGranted(granted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gpsGranted = granted
	return s.persistLocked()
}

// ClearShift сбрасывает все флаги смены одной записью на диск.
func (s *Store) ClearShift() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.OnShift = false
	s.session.Searching = false
	s.session.CurrentOrder = nil
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	snapshot := entities.SessionSnapshot{
		IsOnShift:    s.session.OnShift,
		IsSearching:  s.session.Searching,
		UserID:       s.session.UserID,
		CurrentOrder: s.session.CurrentOrder,
		DeviceID:     s.deviceID,
		GPSGranted:   s.gpsGranted,
		LastSaved:    time.Now().UTC(),
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", ErrPersist, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "session-*.json.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", ErrPersist, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write temp: %w", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp: %w", ErrPersist, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename: %w", ErrPersist, err)
	}
	return nil
}
