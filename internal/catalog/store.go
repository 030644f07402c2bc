package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
)

// careerRow is the persisted shape of a career record. The full record lives
// in the doc column; the flat columns exist for searching and ordering.
type careerRow struct {
	ID             string `gorm:"primaryKey;column:id"`
	Position       int    `gorm:"index"`
	Title          string
	Category       string
	Description    string
	RequiredSkills string
	Doc            []byte `gorm:"type:jsonb"`
}

func (careerRow) TableName() string { return "careers" }

// Store mirrors the seed catalog into postgres. Every read degrades to the
// in-memory seed on a store error; the error is logged, never returned.
type Store struct {
	db     *gorm.DB
	mem    *Memory
	logger *zap.Logger
}

// NewStore connects to postgres and prepares the careers table. The seed set
// stays around as the fallback source for every read.
func NewStore(dsn string, seed []career.Record, logger *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	if err := db.AutoMigrate(&careerRow{}); err != nil {
		return nil, fmt.Errorf("migrate careers table: %w", err)
	}

	return newStore(db, seed, logger), nil
}

// newStore wraps an already-open handle. The seed set stays around as the
// fallback source for every read.
func newStore(db *gorm.DB, seed []career.Record, logger *zap.Logger) *Store {
	return &Store{db: db, mem: NewMemory(seed), logger: logger}
}

// Seed inserts the seed set when the table is empty. The pre-check makes
// seeding idempotent; concurrent starters racing past it are harmless since
// conflicting rows are skipped.
func (s *Store) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&careerRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count careers: %w", err)
	}

	if count > 0 {
		s.logger.Info("career catalog already seeded", zap.Int64("count", count))
		return nil
	}

	rows := make([]careerRow, 0, len(s.mem.records))
	for i, record := range s.mem.records {
		row, err := encodeRow(i, record)
		if err != nil {
			return fmt.Errorf("encode career %s: %w", record.ID, err)
		}
		rows = append(rows, row)
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert seed careers: %w", err)
	}

	s.logger.Info("seeded career catalog", zap.Int("count", len(rows)))
	return nil
}

func (s *Store) All(ctx context.Context) []career.Record {
	var rows []careerRow
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		s.logger.Warn("store read failed, serving seed catalog", zap.Error(err))
		return s.mem.All(ctx)
	}

	if len(rows) == 0 {
		return s.mem.All(ctx)
	}

	records := s.decodeRows(rows)
	if len(records) == 0 {
		return s.mem.All(ctx)
	}
	return records
}

func (s *Store) Get(ctx context.Context, id string) (career.Record, bool) {
	var row careerRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("store lookup failed, serving seed catalog", zap.String("id", id), zap.Error(err))
		}
		return s.mem.Get(ctx, id)
	}

	record, err := decodeRecord(row.Doc)
	if err != nil {
		s.logger.Warn("stored career is unreadable, serving seed catalog", zap.String("id", id), zap.Error(err))
		return s.mem.Get(ctx, id)
	}
	return record, true
}

func (s *Store) Search(ctx context.Context, query string) []career.Record {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.All(ctx)
	}

	pattern := "%" + q + "%"
	var rows []careerRow
	err := s.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ? OR required_skills ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("position").
		Find(&rows).Error
	if err != nil {
		s.logger.Warn("store search failed, serving seed catalog", zap.String("query", q), zap.Error(err))
		return s.mem.Search(ctx, query)
	}

	return s.decodeRows(rows)
}

// decodeRows converts rows back to records, dropping any unreadable stored
// document.
func (s *Store) decodeRows(rows []careerRow) []career.Record {
	records := make([]career.Record, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRecord(row.Doc)
		if err != nil {
			s.logger.Warn("skipping unreadable stored career", zap.String("id", row.ID), zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	return records
}

func encodeRow(position int, record career.Record) (careerRow, error) {
	doc, err := json.Marshal(record)
	if err != nil {
		return careerRow{}, err
	}

	return careerRow{
		ID:             record.ID,
		Position:       position,
		Title:          record.Title,
		Category:       record.Category,
		Description:    record.Description,
		RequiredSkills: strings.Join(record.RequiredSkills, ", "),
		Doc:            doc,
	}, nil
}

func decodeRecord(doc []byte) (career.Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return career.Record{}, err
	}

	var record career.Record
	cfg := &mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &record,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return career.Record{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return career.Record{}, err
	}

	return record, nil
}
