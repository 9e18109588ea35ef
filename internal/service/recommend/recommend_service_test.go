package recommend

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ougirez/lwc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	answer  func(prompt string) (string, error)
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	answer := f.answer
	f.mu.Unlock()

	return answer(prompt)
}

func constant(text string, err error) func(string) (string, error) {
	return func(string) (string, error) { return text, err }
}

var testPlaces = []domain.Place{
	{ID: "1", Name: "ห้องสมุดริมน้ำ", Category: domain.CategoryLibrary, Description: "อ่านหนังสือริมแม่น้ำ", Rating: 4.5},
	{ID: "2", Name: "ไร่ลุงชม", Category: domain.CategoryWisdom, Description: "เรียนรู้เกษตรอินทรีย์", Rating: 5},
}

func TestService_WithoutGenerator(t *testing.T) {
	ctx := context.Background()
	s := NewRecommendService(nil)

	assert.False(t, s.Enabled())
	assert.Equal(t, MissingKeyText, s.Recommend(ctx, testPlaces, "เที่ยวเสาร์อาทิตย์"))
	assert.Equal(t, NotEnoughReviews, s.SummarizeReviews(ctx, "ไร่ลุงชม", []string{"ดีมาก"}))
}

func TestService_Recommend(t *testing.T) {
	ctx := context.Background()

	t.Run("answer", func(t *testing.T) {
		gen := &fakeGenerator{answer: constant("ลองไปห้องสมุดริมน้ำ", nil)}
		s := NewRecommendService(gen)

		assert.Equal(t, "ลองไปห้องสมุดริมน้ำ", s.Recommend(ctx, testPlaces, "ที่เงียบๆ"))
		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "- ห้องสมุดริมน้ำ (ห้องสมุดประชาชน): อ่านหนังสือริมแม่น้ำ, เรตติ้ง 4.5")
		assert.Contains(t, gen.prompts[0], `คำถามจากผู้ใช้: "ที่เงียบๆ"`)
	})

	t.Run("empty answer", func(t *testing.T) {
		s := NewRecommendService(&fakeGenerator{answer: constant("  ", nil)})
		assert.Equal(t, EmptyAnswerText, s.Recommend(ctx, testPlaces, "x"))
	})

	t.Run("error", func(t *testing.T) {
		s := NewRecommendService(&fakeGenerator{answer: constant("", errors.New("503"))})
		assert.Equal(t, ConnectionFailText, s.Recommend(ctx, testPlaces, "x"))
	})
}

func TestService_SummarizeReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("no reviews skips the call", func(t *testing.T) {
		gen := &fakeGenerator{answer: constant("unused", nil)}
		s := NewRecommendService(gen)

		assert.Equal(t, NotEnoughReviews, s.SummarizeReviews(ctx, "ไร่ลุงชม", nil))
		assert.Zero(t, gen.calls)
	})

	t.Run("answer", func(t *testing.T) {
		gen := &fakeGenerator{answer: constant("จุดเด่นคือบรรยากาศ", nil)}
		s := NewRecommendService(gen)

		got := s.SummarizeReviews(ctx, "ไร่ลุงชม", []string{"วิวสวย", "ที่จอดรถน้อย"})
		assert.Equal(t, "จุดเด่นคือบรรยากาศ", got)
		require.Len(t, gen.prompts, 1)
		assert.True(t, strings.HasPrefix(gen.prompts[0], `วิเคราะห์รีวิวของสถานที่ "ไร่ลุงชม"`))
		assert.Contains(t, gen.prompts[0], "- \"วิวสวย\"\n- \"ที่จอดรถน้อย\"")
	})

	t.Run("error", func(t *testing.T) {
		s := NewRecommendService(&fakeGenerator{answer: constant("", errors.New("timeout"))})
		assert.Equal(t, SummaryFailText, s.SummarizeReviews(ctx, "ไร่ลุงชม", []string{"ok"}))
	})
}

func TestService_AskDiscardsStaleAnswer(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	gen := &fakeGenerator{answer: func(prompt string) (string, error) {
		if strings.Contains(prompt, "slow") {
			close(started)
			<-release
			return "old answer", nil
		}
		return "new answer", nil
	}}
	s := NewRecommendService(gen)

	type result struct {
		rec   domain.Recommendation
		fresh bool
	}
	slow := make(chan result)
	go func() {
		rec, fresh := s.Ask(ctx, testPlaces, "slow")
		slow <- result{rec, fresh}
	}()
	<-started

	rec, fresh := s.Ask(ctx, testPlaces, "fast")
	require.True(t, fresh)
	assert.Equal(t, "new answer", rec.Text)

	close(release)
	late := <-slow
	assert.False(t, late.fresh)
	assert.Equal(t, "old answer", late.rec.Text)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, domain.Recommendation{Query: "fast", Text: "new answer"}, latest)
}

func TestService_AskIgnoresAbandonedRequest(t *testing.T) {
	gen := &fakeGenerator{answer: func(prompt string) (string, error) {
		if strings.Contains(prompt, "abandoned") {
			return "", context.Canceled
		}
		return "good answer", nil
	}}
	s := NewRecommendService(gen)

	first, fresh := s.Ask(context.Background(), testPlaces, "first")
	require.True(t, fresh)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec, fresh := s.Ask(ctx, testPlaces, "abandoned")
	assert.False(t, fresh)
	assert.Equal(t, ConnectionFailText, rec.Text)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, first, latest)
}

func TestService_LatestBeforeAsk(t *testing.T) {
	_, ok := NewRecommendService(nil).Latest()
	assert.False(t, ok)
}
