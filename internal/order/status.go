package order

type Status string

const (
	StatusPendente   Status = "pendente"
	StatusConfirmado Status = "confirmado"
	StatusEmPreparo  Status = "em_preparo"
	StatusPronto     Status = "pronto"
	StatusEmEntrega  Status = "em_entrega"
	StatusEntregue   Status = "entregue"
	StatusCancelado  Status = "cancelado"
)

var progression = []Status{
	StatusPendente,
	StatusConfirmado,
	StatusEmPreparo,
	StatusPronto,
	StatusEmEntrega,
	StatusEntregue,
}

func (s Status) Valid() bool {
	return s == StatusCancelado || s.rank() >= 0
}

func (s Status) IsTerminal() bool {
	return s == StatusEntregue || s == StatusCancelado
}

func (s Status) rank() int {
	for i, p := range progression {
		if p == s {
			return i
		}
	}
	return -1
}

// CanTransition checks a status change. Orders only move forward, may skip
// steps, and may be cancelled until they reach a terminal state. Pickup
// orders never go out for delivery.
func CanTransition(from, to Status, delivery DeliveryType) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if from.IsTerminal() || from == to {
		return ErrInvalidTransition
	}
	if to == StatusCancelado {
		return nil
	}
	if to == StatusEmEntrega && delivery == DeliveryRetirada {
		return ErrInvalidTransition
	}
	if to.rank() <= from.rank() {
		return ErrInvalidTransition
	}
	return nil
}

// NextStatuses lists every status the order may move to from its current one.
func NextStatuses(from Status, delivery DeliveryType) []Status {
	out := []Status{}
	for _, s := range append(append([]Status{}, progression...), StatusCancelado) {
		if CanTransition(from, s, delivery) == nil {
			out = append(out, s)
		}
	}
	return out
}
