package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
	mock_service "github.com/mkazymov/vocab-practice-bot/internal/service/mock"
)

func newEnrichmentServiceMock(
	t *testing.T,
	ctrl *gomock.Controller,
	setupMock func(*mock_service.MockDictionary, *mock_service.MockTranslator),
) *EnrichmentService {
	t.Helper()

	dict := mock_service.NewMockDictionary(ctrl)
	translator := mock_service.NewMockTranslator(ctrl)
	if setupMock != nil {
		setupMock(dict, translator)
	}

	return NewEnrichmentService(dict, translator, "ru", time.Second, zap.NewNop())
}

func TestEnrichmentService_FillMeanings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		table      entities.Table
		f          func(*mock_service.MockDictionary, *mock_service.MockTranslator)
		wantTable  entities.Table
		wantFilled int
	}{
		{
			name: "dictionary fills missing meaning",
			table: entities.Table{
				{Word: "cat"},
				{Word: "dog", Meaning: "a domesticated canine"},
			},
			f: func(d *mock_service.MockDictionary, tr *mock_service.MockTranslator) {
				d.EXPECT().Lookup(gomock.Any(), "cat").Return("a small domesticated feline", nil)
			},
			wantTable: entities.Table{
				{Word: "cat", Meaning: "a small domesticated feline"},
				{Word: "dog", Meaning: "a domesticated canine"},
			},
			wantFilled: 1,
		},
		{
			name:  "translation fallback when dictionary is empty",
			table: entities.Table{{Word: "cat"}},
			f: func(d *mock_service.MockDictionary, tr *mock_service.MockTranslator) {
				d.EXPECT().Lookup(gomock.Any(), "cat").Return("", nil)
				tr.EXPECT().Translate(gomock.Any(), "cat", "ru").Return("кошка", nil)
			},
			wantTable:  entities.Table{{Word: "cat", Meaning: "кошка"}},
			wantFilled: 1,
		},
		{
			name:  "translation fallback when dictionary fails",
			table: entities.Table{{Word: "cat"}},
			f: func(d *mock_service.MockDictionary, tr *mock_service.MockTranslator) {
				d.EXPECT().Lookup(gomock.Any(), "cat").Return("", errors.New("service unavailable"))
				tr.EXPECT().Translate(gomock.Any(), "cat", "ru").Return("кошка", nil)
			},
			wantTable:  entities.Table{{Word: "cat", Meaning: "кошка"}},
			wantFilled: 1,
		},
		{
			name:  "both services fail: meaning stays empty, no error",
			table: entities.Table{{Word: "cat"}},
			f: func(d *mock_service.MockDictionary, tr *mock_service.MockTranslator) {
				d.EXPECT().Lookup(gomock.Any(), "cat").Return("", errors.New("timeout"))
				tr.EXPECT().Translate(gomock.Any(), "cat", "ru").Return("", errors.New("timeout"))
			},
			wantTable:  entities.Table{{Word: "cat"}},
			wantFilled: 0,
		},
		{
			name: "entries with meanings are never looked up",
			table: entities.Table{
				{Word: "cat", Meaning: "a small domesticated feline"},
			},
			f: nil,
			wantTable: entities.Table{
				{Word: "cat", Meaning: "a small domesticated feline"},
			},
			wantFilled: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newEnrichmentServiceMock(t, ctrl, tt.f)

			got, filled := s.FillMeanings(context.Background(), tt.table)
			assert.Equal(t, tt.wantTable, got)
			assert.Equal(t, tt.wantFilled, filled)
		})
	}
}

func TestEnrichmentService_FillMeanings_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newEnrichmentServiceMock(t, ctrl, func(d *mock_service.MockDictionary, tr *mock_service.MockTranslator) {
		d.EXPECT().Lookup(gomock.Any(), "cat").Return("a small domesticated feline", nil)
	})

	table := entities.Table{{Word: "cat"}}
	got, filled := s.FillMeanings(context.Background(), table)

	require.Equal(t, 1, filled)
	assert.Equal(t, "a small domesticated feline", got[0].Meaning)
	assert.Empty(t, table[0].Meaning, "input table must stay untouched")
}
