package repository

import (
	"testing"

	"github.com/MarcelaRV/seguimientos_end/models"

	"github.com/stretchr/testify/assert"
)

func TestMaxSequence(t *testing.T) {
	assert.Equal(t, 0, MaxSequence(nil))
	assert.Equal(t, 0, MaxSequence([]models.Followup{}))

	followups := []models.Followup{
		{SequenceNumber: 2},
		{SequenceNumber: 5},
		{SequenceNumber: 1},
	}
	assert.Equal(t, 5, MaxSequence(followups))
}

func TestMaxSequenceNoDependeDelOrden(t *testing.T) {
	a := []models.Followup{{SequenceNumber: 3}, {SequenceNumber: 1}}
	b := []models.Followup{{SequenceNumber: 1}, {SequenceNumber: 3}}

	assert.Equal(t, MaxSequence(a), MaxSequence(b))
}
