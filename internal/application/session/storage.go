package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// MemoryStorage sesión solo en memoria: nada sobrevive al proceso. Es la
// variante por defecto (el backend es la fuente de verdad del usuario).
type MemoryStorage struct {
	mu    sync.RWMutex
	token string
	user  *entity.User
}

// NewMemoryStorage construye el almacenamiento en memoria.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStorage) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	return nil
}

func (s *MemoryStorage) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *MemoryStorage) SetUser(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return nil
	}
	cp := *u
	s.user = &cp
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

// fileState formato en disco. User va como raw para poder tolerar entradas
// legacy: ausencia, "null" o "undefined" cuentan como usuario ausente.
type fileState struct {
	Token string          `json:"token,omitempty"`
	User  json.RawMessage `json:"user,omitempty"`
}

// FileStorage persiste la credencial en un archivo JSON (el equivalente del
// localStorage del navegador para un proceso CLI).
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage construye el almacenamiento en archivo.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().Token
}

func (s *FileStorage) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.read()
	st.Token = tok
	return s.write(st)
}

func (s *FileStorage) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw := s.read().User
	if userAbsent(raw) {
		return nil
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// Entrada corrupta: equivale a usuario ausente.
		return nil
	}
	return &u
}

func (s *FileStorage) SetUser(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.read()
	if u == nil {
		st.User = nil
	} else {
		raw, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("serializar usuario: %w", err)
		}
		st.User = raw
	}
	return s.write(st)
}

// Clear elimina credencial y usuario a la vez, borrando el archivo.
func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}

func (s *FileStorage) read() fileState {
	var st fileState
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	_ = json.Unmarshal(raw, &st)
	return st
}

func (s *FileStorage) write(st fileState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// userAbsent valores que cuentan como "sin usuario guardado": ausencia y los
// centinelas literales "undefined"/"null" que dejaban versiones anteriores.
func userAbsent(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", `"null"`, `"undefined"`:
		return true
	}
	return false
}
