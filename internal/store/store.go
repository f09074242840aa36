// Package store persists generated candidates as aliases of their title
// so a nickname can be resolved back to the titles it may refer to.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"yuragi/internal/ingest"
	"yuragi/internal/model"
)

// ErrEmptyAlias is returned when looking up a blank alias.
var ErrEmptyAlias = errors.New("empty alias")

const memoryPath = ":memory:"

// Alias is one candidate of one title.
type Alias struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	TitleID   string    `gorm:"size:36;index" json:"title_id"`
	Title     string    `gorm:"index;not null" json:"title"`
	Alias     string    `gorm:"index;not null" json:"alias"`
	Group     string    `gorm:"column:candidate_group;size:32" json:"group"`
	CreatedAt time.Time `json:"created_at"`
}

// Match is a title an alias resolves to.
type Match struct {
	TitleID string `json:"title_id"`
	Title   string `json:"title"`
	Group   string `json:"group"`
}

// Store is the alias index.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite database at path and
// migrates the schema. ":memory:" gives a private in-memory index.
func Open(path string) (*Store, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	// sqlite allows one writer, and every :memory: connection is a new database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	s, err := New(db)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open gorm handle and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Alias{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save replaces the aliases of title with the candidates of set. A word
// present in several groups is stored once, under its first group.
func (s *Store) Save(ctx context.Context, title ingest.Title, set model.CandidateSet) (int, error) {
	rows := make([]Alias, 0)
	seen := make(map[string]bool)
	for _, g := range set.Groups {
		for _, w := range g.Words {
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			rows = append(rows, Alias{
				TitleID:   title.ID,
				Title:     title.Text,
				Alias:     w,
				Group:     g.Name,
				CreatedAt: title.CreatedAt,
			})
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title = ?", title.Text).Delete(&Alias{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		return 0, fmt.Errorf("save aliases of %q: %w", title.Text, err)
	}
	return len(rows), nil
}

// Lookup returns the titles alias belongs to, ordered by title.
func (s *Store) Lookup(ctx context.Context, alias string) ([]Match, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, ErrEmptyAlias
	}
	var rows []Alias
	err := s.db.WithContext(ctx).
		Where("alias = ?", alias).
		Order("title").Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", alias, err)
	}
	out := make([]Match, 0, len(rows))
	for _, r := range rows {
		out = append(out, Match{TitleID: r.TitleID, Title: r.Title, Group: r.Group})
	}
	return out, nil
}

// Aliases returns the stored aliases of title in insertion order.
func (s *Store) Aliases(ctx context.Context, title string) ([]string, error) {
	var words []string
	err := s.db.WithContext(ctx).Model(&Alias{}).
		Where("title = ?", strings.TrimSpace(title)).
		Order("id").
		Pluck("alias", &words).Error
	if err != nil {
		return nil, fmt.Errorf("aliases of %q: %w", title, err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// Count returns the number of stored aliases.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Alias{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count aliases: %w", err)
	}
	return n, nil
}
