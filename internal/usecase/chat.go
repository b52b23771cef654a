package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"curtaincall/internal/domain/order"
	"curtaincall/internal/pkg/clock"
)

type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// ChatReply carries the rendered message plus the raw orders so the client
// can link each entry.
type ChatReply struct {
	Message string
	Orders  []*order.Order
}

type ChatUseCase interface {
	Handle(ctx context.Context, userID, message string) (*ChatReply, error)
}

type chatUseCaseImpl struct {
	llm       Completer
	orderRepo OrderRepository
	clock     clock.Clock
}

func NewChatUseCase(llm Completer, orderRepo OrderRepository, clk clock.Clock) ChatUseCase {
	return &chatUseCaseImpl{
		llm:       llm,
		orderRepo: orderRepo,
		clock:     clk,
	}
}

// Intent function names the model is instructed to emit.
const (
	funcAllOrders    = "getThemeOrdersByUserId"
	funcRecentOrders = "getRecentOrders"
	funcOrdersByDate = "getOrdersByDate"
)

// classification is what the model returns for a booking-lookup request. Any
// other request comes back as plain text.
type classification struct {
	Func string `json:"func"`
	Type string `json:"type"`
	Date string `json:"date"`
}

const systemPromptTemplate = `당신은 숙박 공연 예약 시스템의 AI 도우미입니다.
사용자의 예약 조회 요청에 따라 다음과 같은 JSON 형식으로 응답해야 합니다:

1. 전체 예약 조회 (공연 + 숙소):
{"func": "getThemeOrdersByUserId"}

2. 공연 예약만 조회:
{"func": "getThemeOrdersByUserId", "type": "performance"}

3. 숙소 예약만 조회:
{"func": "getThemeOrdersByUserId", "type": "accommodation"}

4. 최근 예약 조회 (3개월 이내):
{"func": "getRecentOrders"}

5. 특정 날짜 예약 조회:
{"func": "getOrdersByDate", "date": "%[1]d-MM-DD"}

날짜 파싱 규칙:
- 모든 날짜는 항상 "%[1]d-MM-DD" 형식으로 반환
- 월과 일은 항상 2자리 숫자로 표시 (예: 04, 05)
- 연도가 없으면 항상 %[1]d년으로 설정
- 월만 지정된 경우 해당 월의 1일로 설정 (예: "4월" -> "%[1]d-04-01")

예시:
사용자: "내 예약 좀 볼 수 있을까?"
응답: {"func": "getThemeOrdersByUserId"}

사용자: "공연 예약 보여줘"
응답: {"func": "getThemeOrdersByUserId", "type": "performance"}

사용자: "숙소 예약 보여줘"
응답: {"func": "getThemeOrdersByUserId", "type": "accommodation"}

사용자: "최근 예약 보여줘"
응답: {"func": "getRecentOrders"}

사용자: "3월 15일 예약 보여줘"
응답: {"func": "getOrdersByDate", "date": "%[1]d-03-15"}

사용자: "4월에 예약한 내역 보여줘"
응답: {"func": "getOrdersByDate", "date": "%[1]d-04-01"}

그 외의 모든 일반 문의(예: 관광지 추천, 날씨, 기타 문의)는 일반 텍스트로 친절하게 응답해주세요.`

func (c *chatUseCaseImpl) systemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, c.clock.Now().Year())
}

// Handle classifies the message, and for booking lookups loads and renders
// the caller's orders. Anything the model answers outside the JSON protocol
// is passed through verbatim.
func (c *chatUseCaseImpl) Handle(ctx context.Context, userID, message string) (*ChatReply, error) {
	response, err := c.llm.Complete(ctx, c.systemPrompt(), message)
	if err != nil {
		return nil, err
	}

	var intent classification
	if err := json.Unmarshal([]byte(response), &intent); err != nil {
		return &ChatReply{Message: response}, nil
	}

	switch intent.Func {
	case funcAllOrders, funcRecentOrders, funcOrdersByDate:
	default:
		return &ChatReply{Message: response}, nil
	}

	orders, err := c.loadOrders(ctx, userID, intent.Type)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return &ChatReply{Message: emptyMessageForType(intent.Type), Orders: []*order.Order{}}, nil
	}

	switch intent.Func {
	case funcOrdersByDate:
		target, err := time.Parse("2006-01-02", intent.Date)
		if err != nil {
			return &ChatReply{Message: response}, nil
		}
		// Day 01 doubles as the whole-month wildcard.
		monthOnly := strings.HasSuffix(intent.Date, "-01")
		orders = filterByDate(orders, target, monthOnly)
		if len(orders) == 0 {
			msg := formatKoreanShortDate(target) + "의 예약 내역이 없습니다."
			return &ChatReply{Message: msg, Orders: []*order.Order{}}, nil
		}
		return c.digest(fmt.Sprintf("🎭 %s 예약 내역입니다 🎭", formatKoreanShortDate(target)), orders), nil

	case funcRecentOrders:
		cutoff := c.clock.Now().AddDate(0, -3, 0)
		orders = filterSince(orders, cutoff)
		if len(orders) == 0 {
			return &ChatReply{Message: "최근 3개월 이내 예약 내역이 없습니다.", Orders: []*order.Order{}}, nil
		}
		return c.digest("🎭 최근 예약 내역입니다 🎭", orders), nil

	default:
		return c.digest(headerForType(intent.Type), orders), nil
	}
}

func (c *chatUseCaseImpl) loadOrders(ctx context.Context, userID, orderType string) ([]*order.Order, error) {
	var orders []*order.Order

	if orderType != "accommodation" {
		performances, err := c.orderRepo.ListPerformanceByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, performances...)
	}
	if orderType != "performance" {
		accommodations, err := c.orderRepo.ListAccommodationByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, accommodations...)
	}
	return orders, nil
}

func filterByDate(orders []*order.Order, target time.Time, monthOnly bool) []*order.Order {
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		d := o.EventDate()
		if monthOnly {
			if d.Year() == target.Year() && d.Month() == target.Month() {
				filtered = append(filtered, o)
			}
			continue
		}
		if d.Year() == target.Year() && d.Month() == target.Month() && d.Day() == target.Day() {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func filterSince(orders []*order.Order, cutoff time.Time) []*order.Order {
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if !o.EventDate().Before(cutoff) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func emptyMessageForType(orderType string) string {
	switch orderType {
	case "performance":
		return "공연 예약 내역이 없습니다."
	case "accommodation":
		return "숙소 예약 내역이 없습니다."
	default:
		return "예약 내역이 없습니다."
	}
}

func headerForType(orderType string) string {
	switch orderType {
	case "performance":
		return "🎭 공연 예약 내역입니다 🎭"
	case "accommodation":
		return "🏨 숙소 예약 내역입니다 🏨"
	default:
		return "🎭 전체 예약 내역입니다 🎭"
	}
}

const maxDigestOrders = 5

// digest renders up to five entries; beyond that the reader is pointed at the
// my-page listing instead of flooding the chat window.
func (c *chatUseCaseImpl) digest(header string, orders []*order.Order) *ChatReply {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n\n")

	shown := orders
	if len(shown) > maxDigestOrders {
		shown = shown[:maxDigestOrders]
	}

	for i, o := range shown {
		fmt.Fprintf(&b, "📌 예약 %d\n", i+1)
		b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n")

		if o.Kind == order.KindAccommodation {
			fmt.Fprintf(&b, "🏨 숙소: %s\n", o.Name)
			fmt.Fprintf(&b, "📅 체크인: %s\n", formatKoreanLongDate(o.CheckIn))
			fmt.Fprintf(&b, "📅 체크아웃: %s\n", formatKoreanLongDate(o.CheckOut))
			fmt.Fprintf(&b, "📍 주소: %s\n", o.Address)
		} else {
			fmt.Fprintf(&b, "🎪 공연: %s\n", o.Title)
			fmt.Fprintf(&b, "📅 날짜: %s\n", formatKoreanLongDate(o.Date))
			fmt.Fprintf(&b, "📍 장소: %s\n", o.Venue)
			fmt.Fprintf(&b, "💺 좌석: %s\n", formatSeats(o.Seats))
		}
		fmt.Fprintf(&b, "💰 총 금액: %s원\n", formatThousands(o.TotalPrice))
		b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	}

	if len(orders) > maxDigestOrders {
		b.WriteString("\n📝 더 많은 예약 내역은 마이페이지에서 확인해주세요.\n")
		b.WriteString("👉 마이페이지 > 예약 내역\n\n")
	}

	return &ChatReply{Message: b.String(), Orders: orders}
}

func formatSeats(seats []order.Seat) string {
	labels := make([]string, len(seats))
	for i, s := range seats {
		labels[i] = fmt.Sprintf("%s(%s)", s.SeatGrade, s.SeatID)
	}
	return strings.Join(labels, ", ")
}

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// formatKoreanLongDate renders "2025년 4월 26일 토요일".
func formatKoreanLongDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 %s", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// formatKoreanShortDate renders "2025. 4. 26.".
func formatKoreanShortDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

// formatThousands groups digits with commas, e.g. 130000 -> "130,000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
