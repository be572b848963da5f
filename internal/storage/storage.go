package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage owns the two persisted mappings: the guild registry and the
// per-user registration lists. All other components read and mutate
// through it; nothing else touches the snapshot files.
type Storage interface {
	EnsureGuild(guildID, name string) (bool, error)
	Guilds() map[string]Guild
	AddCharacter(userID string, ch Character) error
	RemoveCharacter(userID, key string) (bool, error)
	ListCharacters(userID string) []Character
	AllCharacters() map[string][]Character
}

// JSONStore persists both mappings as whole-file JSON snapshots. Every
// mutation rewrites the affected snapshot through a temp file and rename,
// so a crash mid-write never leaves a truncated file behind.
type JSONStore struct {
	mu             sync.RWMutex
	guildsPath     string
	charactersPath string
	guilds         map[string]Guild
	characters     map[string][]Character
}

// NewJSONStore loads both snapshots from disk. Missing files are treated
// as empty mappings, not errors.
func NewJSONStore(guildsPath, charactersPath string) (*JSONStore, error) {
	s := &JSONStore{
		guildsPath:     guildsPath,
		charactersPath: charactersPath,
		guilds:         make(map[string]Guild),
		characters:     make(map[string][]Character),
	}

	if err := loadSnapshot(guildsPath, &s.guilds); err != nil {
		return nil, fmt.Errorf("load guilds snapshot: %w", err)
	}
	if err := loadSnapshot(charactersPath, &s.characters); err != nil {
		return nil, fmt.Errorf("load characters snapshot: %w", err)
	}

	return s, nil
}

func (s *JSONStore) EnsureGuild(guildID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.guilds[guildID]; ok {
		return false, nil
	}
	s.guilds[guildID] = Guild{GuildName: name}
	return true, writeSnapshot(s.guildsPath, s.guilds)
}

func (s *JSONStore) Guilds() map[string]Guild {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Guild, len(s.guilds))
	for id, g := range s.guilds {
		out[id] = g
	}
	return out
}

func (s *JSONStore) AddCharacter(userID string, ch Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.characters[userID] = append(s.characters[userID], ch)
	return writeSnapshot(s.charactersPath, s.characters)
}

// RemoveCharacter deletes the first registration matching key
// ("Name-Server") from the user's list. Keys match case-insensitively so
// rows from older snapshots that are not title-cased stay reachable. It
// reports whether anything was removed; a miss is not an error.
func (s *JSONStore) RemoveCharacter(userID, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.characters[userID]
	for i, ch := range list {
		if strings.EqualFold(ch.Key(), key) {
			s.characters[userID] = append(list[:i:i], list[i+1:]...)
			return true, writeSnapshot(s.charactersPath, s.characters)
		}
	}
	return false, nil
}

func (s *JSONStore) ListCharacters(userID string) []Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Character(nil), s.characters[userID]...)
}

func (s *JSONStore) AllCharacters() map[string][]Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]Character, len(s.characters))
	for userID, list := range s.characters {
		out[userID] = append([]Character(nil), list...)
	}
	return out
}

func loadSnapshot(path string, dest any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func writeSnapshot(path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
