package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/pkg/logger"
)

// Fixed answers returned instead of errors.
const (
	MissingKeyText     = "ไม่พบ API Key (กรุณาตั้งค่า GEMINI_API_KEY)"
	EmptyAnswerText    = "ขออภัย ไม่สามารถสร้างคำแนะนำได้ในขณะนี้"
	ConnectionFailText = "เกิดข้อผิดพลาดในการเชื่อมต่อกับ AI"
	NotEnoughReviews   = "ไม่มีข้อมูลรีวิวเพียงพอสำหรับวิเคราะห์"
	SummaryFailText    = "ไม่สามารถวิเคราะห์รีวิวได้ในขณะนี้"
)

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	gen Generator

	mu         sync.Mutex
	generation uint64
	latest     *domain.Recommendation
}

// NewRecommendService returns a service that answers every request with a
// fallback text when gen is nil.
func NewRecommendService(gen Generator) *Service {
	return &Service{gen: gen}
}

func (s *Service) Enabled() bool {
	return s.gen != nil
}

func (s *Service) Recommend(ctx context.Context, places []domain.Place, query string) string {
	if s.gen == nil {
		return MissingKeyText
	}

	text, err := s.gen.Generate(ctx, recommendPrompt(places, query))
	if err != nil {
		logger.Errorf(ctx, "recommend: generate: %s", err.Error())
		return ConnectionFailText
	}
	if strings.TrimSpace(text) == "" {
		return EmptyAnswerText
	}

	return text
}

func (s *Service) SummarizeReviews(ctx context.Context, name string, comments []string) string {
	if s.gen == nil || len(comments) == 0 {
		return NotEnoughReviews
	}

	text, err := s.gen.Generate(ctx, summaryPrompt(name, comments))
	if err != nil {
		logger.Errorf(ctx, "recommend: summarize %q: %s", name, err.Error())
		return SummaryFailText
	}
	if strings.TrimSpace(text) == "" {
		return SummaryFailText
	}

	return text
}

// Ask runs Recommend and keeps the answer as Latest unless a newer Ask was
// started in the meantime or the caller went away. The second result is
// false for such a discarded answer.
func (s *Service) Ask(ctx context.Context, places []domain.Place, query string) (domain.Recommendation, bool) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	answer := domain.Recommendation{Query: query, Text: s.Recommend(ctx, places, query)}
	if err := ctx.Err(); err != nil {
		logger.Debugf(ctx, "recommend: discarding answer for %q: %s", query, err.Error())
		return answer, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logger.Debugf(ctx, "recommend: discarding stale answer for %q", query)
		return answer, false
	}
	s.latest = &answer

	return answer, true
}

func (s *Service) Latest() (domain.Recommendation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return domain.Recommendation{}, false
	}
	return *s.latest, true
}

func recommendPrompt(places []domain.Place, query string) string {
	lines := make([]string, 0, len(places))
	for _, p := range places {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s, เรตติ้ง %g", p.Name, p.Category, p.Description, p.Rating))
	}

	return fmt.Sprintf(`คุณคือผู้เชี่ยวชาญด้านการท่องเที่ยวและวัฒนธรรมท้องถิ่น (Local Guide AI)

นี่คือรายชื่อสถานที่ในชุมชนของเรา:
%s

คำถามจากผู้ใช้: "%s"

กรุณาแนะนำสถานที่ที่เหมาะสมจากรายการข้างต้น พร้อมเหตุผลประกอบสั้นๆ และแนะนำเส้นทางการเที่ยวถ้าเป็นไปได้ ตอบเป็นภาษาไทย น้ำเสียงเป็นมิตรและเป็นทางการเล็กน้อย`,
		strings.Join(lines, "\n"), query)
}

func summaryPrompt(name string, comments []string) string {
	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		lines = append(lines, fmt.Sprintf("- \"%s\"", c))
	}

	return fmt.Sprintf(`วิเคราะห์รีวิวของสถานที่ "%s" ต่อไปนี้:
%s

สรุปจุดเด่นและจุดที่ควรปรับปรุงสั้นๆ 1 ย่อหน้า`, name, strings.Join(lines, "\n"))
}
