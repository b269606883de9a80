package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to Status
		delivery DeliveryType
		want     error
	}{
		{"next step", StatusPendente, StatusConfirmado, DeliveryEntrega, nil},
		{"skip steps", StatusPendente, StatusPronto, DeliveryEntrega, nil},
		{"out for delivery", StatusPronto, StatusEmEntrega, DeliveryEntrega, nil},
		{"delivered", StatusEmEntrega, StatusEntregue, DeliveryEntrega, nil},
		{"pickup handed over", StatusPronto, StatusEntregue, DeliveryRetirada, nil},
		{"cancel early", StatusPendente, StatusCancelado, DeliveryEntrega, nil},
		{"cancel in transit", StatusEmEntrega, StatusCancelado, DeliveryEntrega, nil},
		{"backwards", StatusPronto, StatusEmPreparo, DeliveryEntrega, ErrInvalidTransition},
		{"same state", StatusConfirmado, StatusConfirmado, DeliveryEntrega, ErrInvalidTransition},
		{"from delivered", StatusEntregue, StatusCancelado, DeliveryEntrega, ErrInvalidTransition},
		{"from cancelled", StatusCancelado, StatusPendente, DeliveryEntrega, ErrInvalidTransition},
		{"pickup never in transit", StatusPronto, StatusEmEntrega, DeliveryRetirada, ErrInvalidTransition},
		{"unknown target", StatusPendente, Status("enviado"), DeliveryEntrega, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.delivery)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t,
		[]Status{StatusEmEntrega, StatusEntregue, StatusCancelado},
		NextStatuses(StatusPronto, DeliveryEntrega))
	assert.Equal(t,
		[]Status{StatusEntregue, StatusCancelado},
		NextStatuses(StatusPronto, DeliveryRetirada))
	assert.Empty(t, NextStatuses(StatusEntregue, DeliveryEntrega))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusCancelado.Valid())
	assert.True(t, StatusEmPreparo.Valid())
	assert.False(t, Status("").Valid())
	assert.True(t, StatusEntregue.IsTerminal())
	assert.False(t, StatusPronto.IsTerminal())
}
