package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ProgressPathKey   = "progress.path"
	progressFileMode  = 0o600
	progressDirMode   = 0o700
	progressConfigDir = ".omp"
	progressFileName  = "progress.toml"
	tempFilePattern   = ".progress-*.toml.tmp"
)

// Store persists the completed workshop ids as a versioned TOML document.
type Store struct {
	path string
	now  func() time.Time
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProgressStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(ProgressPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, progressConfigDir, progressFileName)
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, now: time.Now, mu: lockForPath(path)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) ([]domain.WorkshopID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	ids := make([]domain.WorkshopID, 0, len(file.CompletedWorkshops))
	for _, raw := range file.CompletedWorkshops {
		ids = append(ids, domain.WorkshopID(raw))
	}

	return ids, nil
}

func (s *Store) Save(ctx context.Context, ids []domain.WorkshopID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := fileSchema{
		CompletedWorkshops: make([]string, 0, len(ids)),
		UpdatedAt:          s.now().UTC().Format(time.RFC3339),
	}
	file.applyDefaults()
	for _, id := range ids {
		file.CompletedWorkshops = append(file.CompletedWorkshops, string(id))
	}

	return writeTOMLFile(s.path, file)
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read progress file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode progress file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("progress path is empty")
	}

	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve progress path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if lock, ok := pathLockMap[path]; ok {
		return lock
	}

	lock := &sync.RWMutex{}
	pathLockMap[path] = lock
	return lock
}

func writeTOMLFile(path string, file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(path), progressDirMode); err != nil {
		return fmt.Errorf("create progress directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode progress file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp progress file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp progress file: %w", err)
	}
	if err := tempFile.Chmod(progressFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp progress file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp progress file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace progress file: %w", err)
	}
	cleanup = false

	return nil
}
