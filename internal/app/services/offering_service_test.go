package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
)

func TestNextSectionLabel(t *testing.T) {
	tests := []struct {
		name  string
		taken []string
		want  string
	}{
		{"first section is A", nil, "A"},
		{"next after A is B", []string{"A"}, "B"},
		{"fills the gap left by a deleted section", []string{"A", "C"}, "B"},
		{"order of taken labels is irrelevant", []string{"C", "A", "B"}, "D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextSectionLabel(tt.taken)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextSectionLabelDeterministic(t *testing.T) {
	taken := []string{"A", "B"}
	first, err := nextSectionLabel(taken)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := nextSectionLabel(taken)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNextSectionLabelExhausted(t *testing.T) {
	var taken []string
	for c := 'A'; c <= 'Z'; c++ {
		taken = append(taken, string(c))
	}

	_, err := nextSectionLabel(taken)

	assert.ErrorIs(t, err, apperrors.ErrSectionsExhausted)
}

func TestValidateOffering(t *testing.T) {
	service := NewOfferingService(nil, nil)
	course := &models.Course{ID: 1, Credits: 3, HasLab: false}
	labCourse := &models.Course{ID: 2, Credits: 1.5, HasLab: true}

	valid := func() *models.CourseOffering {
		return &models.CourseOffering{
			CourseID: 1,
			Year:     2026,
			Term:     models.TermFall,
			DaySlot:  "MW",
			TimeSlot: "08:30 - 10:00",
			Room:     "A-101",
			Capacity: 30,
		}
	}

	t.Run("catalog-conforming offering passes", func(t *testing.T) {
		assert.NoError(t, service.validateOffering(valid(), course))
	})

	t.Run("zero capacity rejected", func(t *testing.T) {
		offering := valid()
		offering.Capacity = 0
		assert.ErrorIs(t, service.validateOffering(offering, course), ErrOfferingValidation)
	})

	t.Run("unknown term rejected", func(t *testing.T) {
		offering := valid()
		offering.Term = "WINTER"
		assert.ErrorIs(t, service.validateOffering(offering, course), ErrOfferingValidation)
	})

	t.Run("unknown day token rejected", func(t *testing.T) {
		offering := valid()
		offering.DaySlot = "XY"
		assert.ErrorIs(t, service.validateOffering(offering, course), ErrOfferingValidation)
	})

	t.Run("off-catalog time slot rejected", func(t *testing.T) {
		offering := valid()
		offering.TimeSlot = "08:00 - 09:30"
		assert.ErrorIs(t, service.validateOffering(offering, course), ErrOfferingValidation)
	})

	t.Run("unknown room rejected", func(t *testing.T) {
		offering := valid()
		offering.Room = "Z-999"
		assert.ErrorIs(t, service.validateOffering(offering, course), ErrOfferingValidation)
	})

	t.Run("lab window accepted only for lab courses", func(t *testing.T) {
		offering := valid()
		offering.CourseID = 2
		offering.TimeSlot = "08:30 - 11:30" // 3-hour window for 1.5-credit labs

		assert.NoError(t, service.validateOffering(offering, labCourse))
		assert.NoError(t, service.validateOffering(valid(), labCourse),
			"lecture slots stay valid for lab courses")
		assert.ErrorIs(t, service.validateOffering(offering, course), ErrOfferingValidation,
			"lab window rejected for a lecture-only course")
	})
}
