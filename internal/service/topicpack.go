package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TopicCategory is the packs sharing a category, oldest first
type TopicCategory struct {
	Name  string
	Packs []domain.TopicPack
}

// TopicPackService manages generated topic packs and the titles of their groups
type TopicPackService struct {
	store  repository.KeyValueStore
	ai     TopicGateway
	logger *zap.Logger
	newID  func() string

	titleFlight singleflight.Group

	mu     sync.Mutex
	packs  []domain.TopicPack
	titles map[string]string
}

// NewTopicPackService creates a topic pack service
func NewTopicPackService(store repository.KeyValueStore, gw TopicGateway, logger *zap.Logger) *TopicPackService {
	return &TopicPackService{
		store:  store,
		ai:     gw,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
		titles: make(map[string]string),
	}
}

// Load reads packs and cached group titles. Unreadable values start empty.
func (s *TopicPackService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.packs = nil
	s.titles = make(map[string]string)

	if err := s.loadJSON(repository.KeyTopicPacks, &s.packs); err != nil {
		return err
	}
	if err := s.loadJSON(repository.KeyGroupTitles, &s.titles); err != nil {
		return err
	}
	// a stored null decodes to a nil map
	if s.titles == nil {
		s.titles = make(map[string]string)
	}
	return nil
}

func (s *TopicPackService) loadJSON(key string, v any) error {
	raw, found, err := s.store.Get(key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Error("Stored value is unreadable", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *TopicPackService) saveLocked(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode value", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		s.logger.Error("Failed to save value", zap.String("key", key), zap.Error(err))
	}
}

// List returns every pack in creation order
func (s *TopicPackService) List() []domain.TopicPack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TopicPack(nil), s.packs...)
}

func (s *TopicPackService) Get(id string) (domain.TopicPack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.packs {
		if p.ID == id {
			return p, true
		}
	}
	return domain.TopicPack{}, false
}

// Add stores pack under a new id
func (s *TopicPackService) Add(pack domain.TopicPack) domain.TopicPack {
	s.mu.Lock()
	defer s.mu.Unlock()

	pack.ID = s.newID()
	s.packs = append(s.packs, pack)
	s.saveLocked(repository.KeyTopicPacks, s.packs)
	return pack
}

func (s *TopicPackService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.packs {
		if p.ID == id {
			s.packs = append(s.packs[:i], s.packs[i+1:]...)
			s.saveLocked(repository.KeyTopicPacks, s.packs)
			return true
		}
	}
	return false
}

// Generate creates a pack for topic, avoiding titles already used
func (s *TopicPackService) Generate(ctx context.Context, topic string) (domain.TopicPack, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.TopicPack{}, fmt.Errorf("topic cannot be empty")
	}

	packs := s.List()
	titles := make([]string, 0, len(packs))
	for _, p := range packs {
		titles = append(titles, p.Title)
	}

	pack, err := s.ai.TopicPack(ctx, topic, titles)
	if err != nil {
		return domain.TopicPack{}, err
	}
	pack.Category = topic

	pack = s.Add(pack)
	s.logger.Info("Generated topic pack",
		zap.String("pack_id", pack.ID),
		zap.String("category", topic),
	)
	return pack, nil
}

// Categories groups packs by category in order of first appearance
func (s *TopicPackService) Categories() []TopicCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []TopicCategory
	index := make(map[string]int)
	for _, p := range s.packs {
		name := p.CategoryOrDefault()
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, TopicCategory{Name: name})
		}
		out[i].Packs = append(out[i].Packs, p)
	}
	return out
}

// GroupTitle returns the display title of category. Categories with more
// than one pack get an AI summary title, generated once and cached.
func (s *TopicPackService) GroupTitle(ctx context.Context, category string) (string, error) {
	s.mu.Lock()
	cached, ok := s.titles[category]
	var chineseTitles []string
	for _, p := range s.packs {
		if p.CategoryOrDefault() == category {
			chineseTitles = append(chineseTitles, p.ChineseTitle)
		}
	}
	s.mu.Unlock()

	if ok {
		return cached, nil
	}
	if len(chineseTitles) <= 1 {
		return domain.CategoryDisplayName(category), nil
	}

	v, err, _ := s.titleFlight.Do(category, func() (any, error) {
		title, err := s.ai.GroupTitle(ctx, chineseTitles)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.titles[category] = title
		s.saveLocked(repository.KeyGroupTitles, s.titles)
		return title, nil
	})
	if err != nil {
		s.logger.Warn("Failed to generate group title", zap.String("category", category), zap.Error(err))
		return domain.CategoryDisplayName(category), err
	}
	return v.(string), nil
}
