package domain_test

import (
	"testing"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSelectActiveVersion(t *testing.T) {
	asOf := day(2024, 6, 1)

	tests := []struct {
		name     string
		versions []domain.RuleVersion[string]
		wantID   string
		wantOK   bool
	}{
		{
			name:   "no versions",
			wantOK: false,
		},
		{
			name: "latest valid from wins",
			versions: []domain.RuleVersion[string]{
				{ID: "a", ValidFrom: day(2024, 1, 1), IsActive: true},
				{ID: "b", ValidFrom: day(2024, 5, 1), IsActive: true},
				{ID: "c", ValidFrom: day(2024, 3, 1), IsActive: true},
			},
			wantID: "b",
			wantOK: true,
		},
		{
			name: "inactive record is never selected even when newest",
			versions: []domain.RuleVersion[string]{
				{ID: "a", ValidFrom: day(2024, 1, 1), IsActive: true},
				{ID: "b", ValidFrom: day(2024, 5, 31), IsActive: false},
			},
			wantID: "a",
			wantOK: true,
		},
		{
			name: "future record is ignored",
			versions: []domain.RuleVersion[string]{
				{ID: "a", ValidFrom: day(2024, 1, 1), IsActive: true},
				{ID: "b", ValidFrom: day(2024, 7, 1), IsActive: true},
			},
			wantID: "a",
			wantOK: true,
		},
		{
			name: "record valid exactly at asOf is selected",
			versions: []domain.RuleVersion[string]{
				{ID: "a", ValidFrom: day(2024, 1, 1), IsActive: true},
				{ID: "b", ValidFrom: asOf, IsActive: true},
			},
			wantID: "b",
			wantOK: true,
		},
		{
			name: "only inactive records",
			versions: []domain.RuleVersion[string]{
				{ID: "a", ValidFrom: day(2024, 1, 1), IsActive: false},
			},
			wantOK: false,
		},
		{
			name: "equal valid from prefers later insert",
			versions: []domain.RuleVersion[string]{
				{ID: "z", ValidFrom: day(2024, 2, 1), IsActive: true, CreatedAt: day(2024, 1, 10)},
				{ID: "a", ValidFrom: day(2024, 2, 1), IsActive: true, CreatedAt: day(2024, 1, 20)},
			},
			wantID: "a",
			wantOK: true,
		},
		{
			name: "full tie falls back to greater id",
			versions: []domain.RuleVersion[string]{
				{ID: "a", ValidFrom: day(2024, 2, 1), IsActive: true},
				{ID: "b", ValidFrom: day(2024, 2, 1), IsActive: true},
			},
			wantID: "b",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.SelectActiveVersion(tt.versions, asOf)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestSelectActiveVersion_OrderIndependent(t *testing.T) {
	versions := []domain.RuleVersion[int]{
		{ID: "1", ValidFrom: day(2024, 2, 1), IsActive: true, CreatedAt: day(2024, 1, 1), Value: 1},
		{ID: "2", ValidFrom: day(2024, 2, 1), IsActive: true, CreatedAt: day(2024, 1, 5), Value: 2},
		{ID: "3", ValidFrom: day(2024, 1, 1), IsActive: true, Value: 3},
	}
	reversed := []domain.RuleVersion[int]{versions[2], versions[1], versions[0]}

	a, _ := domain.SelectActiveVersion(versions, day(2024, 3, 1))
	b, _ := domain.SelectActiveVersion(reversed, day(2024, 3, 1))
	assert.Equal(t, 2, a.Value)
	assert.Equal(t, a, b)
}
