package order

// Kind is the explicit order-kind discriminator carried through the whole
// payment flow. Payloads are never classified by which subject fields happen
// to be present.
type Kind string

const (
	KindPerformance   Kind = "performance"
	KindAccommodation Kind = "accommodation"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPerformance, KindAccommodation:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// Status values keep the wire literals of the existing stored data.
type Status string

const (
	StatusPending   Status = "결제대기"
	StatusPaid      Status = "결제완료"
	StatusCancelled Status = "취소"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentKakaoPay PaymentMethod = "kakaopay"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentKakaoPay:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
